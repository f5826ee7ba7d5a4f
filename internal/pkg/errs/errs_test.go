//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"car-rental-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("sentinel")

	t.Run("nil cause yields the sentinel itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("mark is visible to Is but not to the stdlib", func(t *testing.T) {
		cause := errs.New("underlying failure")
		err := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(err, sentinel))
		// The mark lives outside the Unwrap chain, which is why sentinel
		// checks throughout the codebase use errs.Is.
		assert.False(t, errors.Is(err, sentinel))
	})

	t.Run("Is still follows plain wrap chains", func(t *testing.T) {
		cause := errs.New("root")
		wrapped := errs.Wrap(cause, "context")

		assert.True(t, errs.Is(wrapped, cause))
		assert.False(t, errs.Is(wrapped, errs.New("other")))
	})
}
