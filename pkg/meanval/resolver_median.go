package meanval

import "slices"

type median struct{ list []int }

func (slf *median) Resolve(value int) { slf.list = append(slf.list, value) }

// Result сортирует копию списка и берёт элемент с индексом distinct/2.
func (slf *median) Result(distinct int) int {
	if len(slf.list) == 0 {
		return 0
	}
	sorted := slices.Clone(slf.list)
	slices.Sort(sorted)
	return sorted[min(distinct/2, len(sorted)-1)]
}

// NewMedian создаёт расчётчик медианы.
func NewMedian() Resolver { return &median{[]int{}} }
