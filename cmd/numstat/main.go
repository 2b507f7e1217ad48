package main

import (
	"io"
	"numstat/pkg/meanval"
	"numstat/pkg/prompt"
	"numstat/pkg/report"
	"numstat/pkg/tag"
	"os"
)

func main() {
	t := tag.NewRun(os.Stderr, "numstat")
	if err := run(os.Stdin, os.Stdout); err != nil {
		t.Fatal(err)
	}
}

// run читает значения из r до пустой строки и печатает отчёт в w, если было введено хоть одно значение.
func run(r io.Reader, w io.Writer) error {
	sample := meanval.NewSample()
	if err := prompt.New(r, w).Collect(sample.Add); err != nil {
		return err
	}

	if sample.Empty() {
		return nil
	}
	summary, err := sample.Summarize()
	if err != nil {
		return err
	}
	return report.Write(w, summary)
}
