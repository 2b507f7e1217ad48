package tag

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Tag есть журнал с префиксом из тегов в квадратных скобках: "[numstat][run-id] ".
type Tag struct {
	logger *log.Logger
	tag    string
	exit   func(int)
}

// New создаёт журнал, пишущий в w.
func New(w io.Writer, tags ...string) *Tag {
	prefix := "[" + strings.Join(tags, "][") + "] "
	return &Tag{
		logger: log.New(w, prefix, log.LstdFlags|log.Lmsgprefix),
		tag:    prefix,
		exit:   os.Exit,
	}
}

// NewRun создаёт журнал, в котором за именем следует уникальный идентификатор запуска.
func NewRun(w io.Writer, name string) *Tag { return New(w, name, uuid.NewString()) }

func (slf *Tag) T(input string) string { return fmt.Sprint(slf.tag, input) }

func (slf *Tag) Log(template string, args ...any) { slf.logger.Printf(template, args...) }

func (slf *Tag) Errorf(template string, args ...any) error {
	return fmt.Errorf(slf.T(template), args...)
}

func (slf *Tag) Error(err error) error { return fmt.Errorf("%v%w", slf.tag, err) }

// Fatal пишет ошибку в журнал и завершает процесс с кодом 1.
func (slf *Tag) Fatal(err error) {
	slf.logger.Print(err)
	slf.exit(1)
}
