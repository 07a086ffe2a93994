package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	t.Parallel()

	ok := Ok[string, error]("yes")
	v, e, isOk := ok.Get()
	require.True(t, isOk)
	require.True(t, ok.IsOk())
	require.False(t, ok.IsErr())
	require.Equal(t, "yes", v)
	require.Nil(t, e)

	failure := errors.New("no")
	err := Err[string](failure)
	v, e, isOk = err.Get()
	require.False(t, isOk)
	require.True(t, err.IsErr())
	require.Equal(t, "", v)
	require.ErrorIs(t, e, failure)

	// Failure values are not limited to error.
	code := Err[struct{}](404)
	require.Equal(t, 404, code.Failure())
}
