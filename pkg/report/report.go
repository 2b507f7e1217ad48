package report

import (
	"fmt"
	"io"
	"numstat/pkg/meanval"
)

const (
	labelMedian = "中位数"
	labelMean   = "平均数"
	labelMode   = "众数"
	labelCount  = "数量"
)

// Write печатает отчёт по выборке. Отчёт отделяется от диалога ввода двумя пустыми строками.
func Write(w io.Writer, s meanval.Summary) error {
	_, err := fmt.Fprintf(
		w,
		"\n\n%v: %v\n%v: %v\n%v: %v %v: %v\n",
		labelMedian, s.Median,
		labelMean, s.Mean,
		labelMode, s.Mode, labelCount, s.ModeCount,
	)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
