package tx

// Option configures a guard at Begin.
type Option[T any] func(*config[T])

type config[T any] struct {
	clone       CloneFunc[T]
	borrowCheck bool
}

// WithCloneFunc sets the duplication strategy for the guard, taking precedence
// over a Cloner implementation on T and the default deep copy.
//
// Example:
//
//	guard := tx.Begin(&state, tx.WithCloneFunc(copyState))
func WithCloneFunc[T any](fn CloneFunc[T]) Option[T] {
	return func(cfg *config[T]) {
		cfg.clone = fn
	}
}

// WithBorrowCheck enables runtime enforcement of the single-writer contract:
// while the guard is active, a second checked Begin on the same pointer panics
// with ErrAlreadyBorrowed. The check is off by default and costs nothing when
// unused; the contract itself holds either way.
func WithBorrowCheck[T any]() Option[T] {
	return func(cfg *config[T]) {
		cfg.borrowCheck = true
	}
}
