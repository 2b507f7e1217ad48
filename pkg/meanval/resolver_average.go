package meanval

type average struct{ sum int }

func (slf *average) Resolve(value int) { slf.sum += value }

// Result делит сумму на число различных значений, а не на размер выборки.
func (slf *average) Result(distinct int) int {
	if distinct == 0 {
		return 0
	}
	return slf.sum / distinct
}

// NewAverage создаёт расчётчик среднего.
func NewAverage() Resolver { return &average{} }
