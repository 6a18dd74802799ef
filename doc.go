// Package tx provides a scoped transactional guard around a single mutable value.
//
// A Guard borrows exclusive access to a caller-owned value, hands out a live
// working copy for speculative edits, and writes back on End: the last
// committed snapshot when no commit is in effect, the live working value
// otherwise. Pairing Begin with a deferred End makes the write-back run on
// every exit path, including early returns and panics.
//
// Typical usage:
//
//	guard := tx.Begin(&account)
//	defer guard.End()
//
//	guard.Value().Apply(posting)
//	if err := validate(guard.Value()); err != nil {
//	    return err // End reverts account to its pre-guard state
//	}
//
//	guard.Commit()
//
// For closure-shaped call sites, Do runs a function against the working copy
// and commits only when it returns nil:
//
//	err := tx.Do(&account, func(a *Account) error {
//	    return a.Apply(posting)
//	})
//
// Duplication defaults to a reflection deep copy; values with their own copy
// semantics implement Cloner or pass WithCloneFunc. The guard is confined to a
// single goroutine and assumes no other code path touches the borrowed value
// while it is active; WithBorrowCheck adds an opt-in runtime check for that
// contract.
package tx
