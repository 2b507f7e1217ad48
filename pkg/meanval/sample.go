package meanval

import "errors"

var ErrEmpty = errors.New("no values collected")

// Summary есть итоговый отчёт по выборке.
type Summary struct {
	Median    int
	Mean      int
	Mode      int
	ModeCount int
}

// Sample накапливает принятые значения: список в порядке поступления, таблицу частот,
// сумму и текущую моду. Медиана и среднее считаются по числу различных значений.
type Sample struct {
	average Resolver
	median  Resolver
	mode    *mode
	n       int
}

func NewSample() *Sample {
	return &Sample{average: NewAverage(), median: NewMedian(), mode: newMode()}
}

// Add принимает очередное значение.
func (slf *Sample) Add(value int) {
	slf.mode.Resolve(value)
	slf.median.Resolve(value)
	slf.average.Resolve(value)
	slf.n++
}

func (slf *Sample) Len() int      { return slf.n }
func (slf *Sample) Distinct() int { return slf.mode.distinct() }
func (slf *Sample) Empty() bool   { return slf.Distinct() == 0 }

func (slf *Sample) Median() int { return slf.median.Result(slf.Distinct()) }
func (slf *Sample) Mean() int   { return slf.average.Result(slf.Distinct()) }

// Mode возвращает моду и её частоту.
func (slf *Sample) Mode() (value, count int) {
	return slf.mode.Result(slf.Distinct()), slf.mode.count()
}

// Summarize собирает отчёт. Для пустой выборки возвращает ErrEmpty.
func (slf *Sample) Summarize() (Summary, error) {
	if slf.Empty() {
		return Summary{}, ErrEmpty
	}
	value, count := slf.Mode()
	return Summary{Median: slf.Median(), Mean: slf.Mean(), Mode: value, ModeCount: count}, nil
}
