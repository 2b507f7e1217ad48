package meanval

// Resolver есть расчётная единица: получает значения по одному и по запросу выдаёт итог.
// Итог зависит от числа различных значений выборки, которое передаётся извне.
type Resolver interface {
	Resolve(value int)
	Result(distinct int) int
}
