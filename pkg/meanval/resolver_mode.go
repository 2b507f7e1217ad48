package meanval

type mode struct {
	counter    map[int]int
	value, max int
}

// Resolve обновляет лидера только при строгом превышении: при равенстве частот
// побеждает значение, первым достигшее максимума.
func (slf *mode) Resolve(value int) {
	slf.counter[value]++
	if n := slf.counter[value]; n > slf.max {
		slf.value, slf.max = value, n
	}
}

func (slf *mode) Result(int) int { return slf.value }

func (slf *mode) count() int { return slf.max }

func (slf *mode) distinct() int { return len(slf.counter) }

// NewMode создаёт расчётчик моды.
func NewMode() Resolver { return newMode() }

func newMode() *mode { return &mode{counter: map[int]int{}} }
