package tx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoCommitsOnNilError(t *testing.T) {
	t.Parallel()

	items := []int{1}

	err := Do(&items, func(working *[]int) error {
		*working = append(*working, 2)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, items)
}

func TestDoRevertsOnError(t *testing.T) {
	t.Parallel()

	errRejected := errors.New("rejected")
	items := []int{1}

	err := Do(&items, func(working *[]int) error {
		*working = append(*working, 2)
		return errRejected
	})

	require.ErrorIs(t, err, errRejected)
	assert.Equal(t, []int{1}, items)
}

func TestDoRevertsOnPanic(t *testing.T) {
	t.Parallel()

	items := []int{1}

	func() {
		defer func() {
			recovered := recover()
			require.Equal(t, "boom", recovered, "the panic must keep unwinding after the revert")
		}()

		_ = Do(&items, func(working *[]int) error {
			*working = append(*working, 2)
			panic("boom")
		})
	}()

	assert.Equal(t, []int{1}, items)
}

func TestDoForwardsOptions(t *testing.T) {
	t.Parallel()

	calls := 0
	counting := func(value []int) []int {
		calls++
		return append([]int(nil), value...)
	}

	items := []int{1}

	err := Do(&items, func(working *[]int) error {
		return nil
	}, WithCloneFunc(counting))

	require.NoError(t, err)
	assert.Equal(t, 3, calls, "two snapshots at Begin plus one at Commit")
}
