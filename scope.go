package tx

// Do runs fn against a working copy of the value at target and commits only
// when fn returns nil. On a non-nil error the value is reverted and the error
// returned unwrapped. The write-back is deferred, so a panic inside fn also
// reverts the value before unwinding continues.
//
// Example:
//
//	err := tx.Do(&order, func(o *Order) error {
//	    o.Lines = append(o.Lines, line)
//	    return o.Validate()
//	})
func Do[T any](target *T, fn func(*T) error, opts ...Option[T]) error {
	guard := Begin(target, opts...)
	defer guard.End()

	if err := fn(guard.Value()); err != nil {
		return err
	}

	guard.Commit()

	return nil
}
