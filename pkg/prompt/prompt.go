package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	DefaultPrompt       = "输入一个值: "
	DefaultErrorMessage = "错误的输入"
)

var ErrUnreadable = errors.New("input stream is unreadable")

// Reader построчно читает целые числа из потока, выводя приглашение перед каждой строкой.
// Пустая строка завершает ввод. Неразборчивая непустая строка не завершает ввод:
// печатается сообщение об ошибке, и приглашение повторяется.
type Reader struct {
	r            *bufio.Reader
	w            io.Writer
	prompt       string
	errorMessage string
}

// New создаёт читателя поверх потоков ввода и вывода.
func New(r io.Reader, w io.Writer, options ...Option) *Reader {
	reader := &Reader{
		r:            bufio.NewReader(r),
		w:            w,
		prompt:       DefaultPrompt,
		errorMessage: DefaultErrorMessage,
	}
	for _, v := range options {
		v(reader)
	}
	return reader
}

// Next возвращает очередное число. Флаг ok равен false, когда ввод завершён пустой строкой
// или концом потока. Ошибка означает, что поток прочитать невозможно.
func (slf *Reader) Next() (value int, ok bool, err error) {
	for {
		if _, err := io.WriteString(slf.w, slf.prompt); err != nil {
			return 0, false, fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := slf.readLine()
		if err != nil {
			return 0, false, err
		}

		text := strings.TrimSpace(line)
		if text == "" {
			return 0, false, nil
		}

		// Разрядность как у 32-битного целого: более длинные числа считаются ошибкой ввода.
		parsed, err := strconv.ParseInt(text, 10, 32)
		if err == nil {
			return int(parsed), true, nil
		}

		if _, err := fmt.Fprintln(slf.w, slf.errorMessage); err != nil {
			return 0, false, fmt.Errorf("failed to write error message: %w", err)
		}
	}
}

// Collect вычитывает все числа до конца ввода и передаёт их в fn.
func (slf *Reader) Collect(fn func(int)) error {
	for {
		value, ok, err := slf.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		fn(value)
	}
}

// readLine читает строку целиком. Конец потока без данных даёт пустую строку.
func (slf *Reader) readLine() (string, error) {
	line, err := slf.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	if !utf8.ValidString(line) {
		return "", fmt.Errorf("%w: invalid UTF-8 in line", ErrUnreadable)
	}
	return line, nil
}
