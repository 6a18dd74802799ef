package tx

// Guard wraps a borrowed value for the duration of a speculative edit.
//
// All reads and writes go through the working copy returned by Value. The
// borrowed value itself is read once at Begin and written exactly once at End:
// with the last committed snapshot when Commit is not in effect, or with the
// live working value when it is. Until End runs, the borrowed value is
// unchanged no matter what happens to the working copy.
//
// A Guard is confined to the goroutine that created it and must be finished
// with End, normally via defer.
type Guard[T any] struct {
	target    *T
	scratch   T
	baseline  T
	committed bool
	ended     bool
	clone     CloneFunc[T]
	borrowed  bool
}

// Begin opens a guard over the value at target.
//
// The current value is duplicated into both the working copy and the baseline
// snapshot, so the caller's value stays untouched until End. The duplication
// strategy is resolved once here and reused for every later snapshot: an
// explicit WithCloneFunc option wins, then a Cloner implementation on T, then
// a reflection deep copy.
//
// Begin panics with ErrNilTarget when target is nil, and with
// ErrAlreadyBorrowed when WithBorrowCheck is enabled and another checked
// guard is already active over the same pointer. Both are precondition
// violations, not recoverable errors.
//
// Example:
//
//	guard := tx.Begin(&items)
//	defer guard.End()
func Begin[T any](target *T, opts ...Option[T]) *Guard[T] {
	if target == nil {
		panic(ErrNilTarget)
	}

	var cfg config[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	dup := cfg.clone
	if dup == nil {
		dup = resolveClone[T]()
	}

	if cfg.borrowCheck {
		acquireBorrow(target)
	}

	return &Guard[T]{
		target:   target,
		scratch:  dup(*target),
		baseline: dup(*target),
		clone:    dup,
		borrowed: cfg.borrowCheck,
	}
}

// Value returns a pointer to the working copy. Every read, field access, and
// mutation the guard mediates goes through this pointer; the borrowed value
// and the baseline snapshot are never exposed.
//
// The pointer is only valid while the guard is active. Value panics after End.
func (guard *Guard[T]) Value() *T {
	guard.mustBeActive("Value")
	return &guard.scratch
}

// Get returns the current working value. This is a plain value read for
// inspection; for types with reference fields the returned value still shares
// backing storage with the working copy, so mutate through Value instead.
func (guard *Guard[T]) Get() T {
	guard.mustBeActive("Get")
	return guard.scratch
}

// Set replaces the working copy wholesale. Equivalent to assigning through
// Value; the baseline and the borrowed value are unaffected.
func (guard *Guard[T]) Set(value T) {
	guard.mustBeActive("Set")
	guard.scratch = value
}

// Commit freezes the current working value as the new baseline and marks the
// guard committed. After Commit, an End with no intervening Rollback writes
// the live working value back, so edits applied after the commit are kept.
//
// Example:
//
//	guard.Value().Items = append(guard.Value().Items, next)
//	guard.Commit()
func (guard *Guard[T]) Commit() {
	guard.mustBeActive("Commit")
	guard.baseline = guard.clone(guard.scratch)
	guard.committed = true
}

// Rollback discards every edit made since the last Commit, or since Begin when
// nothing was committed, by restoring the working copy from the baseline. It
// also clears the committed mark, so it behaves like opening a fresh
// subtransaction rooted at the baseline: subsequent edits are speculative
// again and will be reverted by End unless committed.
//
// Calling Rollback immediately after Commit is a no-op on the observed value.
func (guard *Guard[T]) Rollback() {
	guard.mustBeActive("Rollback")
	guard.scratch = guard.clone(guard.baseline)
	guard.committed = false
}

// Committed reports whether the guard is in the committed state, i.e. whether
// an End right now would keep the working value rather than revert.
func (guard *Guard[T]) Committed() bool {
	return guard.committed
}

// Active reports whether the guard has not yet ended.
func (guard *Guard[T]) Active() bool {
	return !guard.ended
}

// End finishes the guard and performs the single write-back to the borrowed
// value: the live working value when committed, the baseline snapshot
// otherwise. End is idempotent; calls after the first are no-ops, so a
// deferred End composes safely with an explicit early End.
//
// Example:
//
//	guard := tx.Begin(&cfg)
//	defer guard.End()
func (guard *Guard[T]) End() {
	if guard.ended {
		return
	}

	guard.ended = true

	if guard.committed {
		*guard.target = guard.scratch
	} else {
		*guard.target = guard.baseline
	}

	if guard.borrowed {
		releaseBorrow(guard.target)
	}
}

// Nest opens an inner guard over this guard's working copy. The inner guard's
// commit or revert resolves against the outer working value, and the outer
// guard still arbitrates what reaches the borrowed value, so nesting composes
// to arbitrary depth. The inner guard inherits the outer duplication strategy
// unless overridden by options.
//
// The outer guard must stay active until the inner guard has ended.
func (guard *Guard[T]) Nest(opts ...Option[T]) *Guard[T] {
	guard.mustBeActive("Nest")
	return Begin(&guard.scratch, append([]Option[T]{WithCloneFunc(guard.clone)}, opts...)...)
}

func (guard *Guard[T]) mustBeActive(op string) {
	if guard.ended {
		panic("tx: " + op + " called on ended guard")
	}
}
