package tx

import (
	"errors"
	"sync"
)

// ErrNilTarget is the panic value of Begin when target is nil.
var ErrNilTarget = errors.New("tx: nil target")

// ErrAlreadyBorrowed is the panic value of a checked Begin when another
// checked guard is already active over the same pointer.
var ErrAlreadyBorrowed = errors.New("tx: value already borrowed by an active guard")

// borrows tracks target pointers held by guards opened with WithBorrowCheck.
// Keys are the *T pointers themselves; pointer identity is what the
// single-writer contract is about.
var borrows sync.Map

func acquireBorrow(key any) {
	if _, loaded := borrows.LoadOrStore(key, struct{}{}); loaded {
		panic(ErrAlreadyBorrowed)
	}
}

func releaseBorrow(key any) {
	borrows.Delete(key)
}
