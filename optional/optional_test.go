package optional

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	t.Parallel()

	some := Some(7)
	v, ok := some.Get()
	require.True(t, ok)
	require.True(t, some.IsPresent())
	require.Equal(t, 7, v)
	require.Equal(t, 7, some.OrElse(3))
	require.Equal(t, 7, some.Expect("present"))

	none := None[int]()
	v, ok = none.Get()
	require.False(t, ok)
	require.False(t, none.IsPresent())
	require.Equal(t, 0, v)
	require.Equal(t, 0, none.Value())
	require.Equal(t, 3, none.OrElse(3))
	require.PanicsWithError(t, "needs", func() { none.Expect("needs") })

	var zero Optional[string]
	require.Equal(t, None[string](), zero)
}
