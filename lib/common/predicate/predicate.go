package predicate

type Predicate[T any] func(T) bool

func And[T any](predicates ...Predicate[T]) Predicate[T] {
	return func(t T) bool {
		for _, pred := range predicates {
			if !pred(t) {
				return false
			}
		}
		return true
	}
}

func Or[T any](fs ...Predicate[T]) Predicate[T] {
	return func(t T) bool {
		for _, f := range fs {
			if f(t) {
				return true
			}
		}
		return false
	}
}

func Not[T any](f Predicate[T]) Predicate[T] {
	return func(t T) bool {
		return !f(t)
	}
}

func True[T any](_ T) bool {
	return true
}

func False[T any](_ T) bool {
	return false
}

// Keep returns the elements of ts for which pred holds, in input order.
// The input slice is never modified.
func Keep[T any](ts []T, pred Predicate[T]) []T {
	res := make([]T, 0, len(ts))
	for _, t := range ts {
		if pred(t) {
			res = append(res, t)
		}
	}
	return res
}
