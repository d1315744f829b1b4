package roundstat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromGrid(t *testing.T) {
	values := [][]any{
		{FieldName, FieldPosition, FieldRound, FieldPoints, ""},
		{"Kim", "FW", float64(1), float64(5), "note"},
		{"", "", ""},
		{"Lee", "GK"},
	}

	got := FromGrid(values)
	require.Len(t, got, 2)

	require.Equal(t, "Kim", got[0][FieldName])
	require.Equal(t, float64(5), got[0][FieldPoints])
	require.NotContains(t, got[0], "")

	require.Equal(t, "Lee", got[1][FieldName])
	require.Equal(t, "", got[1][FieldRound])
	require.Equal(t, 0, ToInt(got[1][FieldPoints]))
}

func TestFromGrid_HeaderOnly(t *testing.T) {
	got := FromGrid([][]any{{FieldName}})
	require.NotNil(t, got)
	require.Empty(t, got)

	require.Empty(t, FromGrid(nil))
}
