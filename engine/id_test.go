package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  ID
		expectErr bool
	}{
		{
			name:     "simple id",
			input:    "mymod:copper_ingot",
			expected: ID{Namespace: "mymod", Path: "copper_ingot"},
		},
		{
			name:     "path with directories",
			input:    "mymod:block/honey_still",
			expected: ID{Namespace: "mymod", Path: "block/honey_still"},
		},
		{
			name:      "missing separator",
			input:     "copper_ingot",
			expectErr: true,
		},
		{
			name:      "double separator",
			input:     "mymod:a:b",
			expectErr: true,
		},
		{
			name:      "empty namespace",
			input:     ":copper_ingot",
			expectErr: true,
		},
		{
			name:      "empty path",
			input:     "mymod:",
			expectErr: true,
		},
		{
			name:      "uppercase rejected",
			input:     "mymod:CopperIngot",
			expectErr: true,
		},
		{
			name:      "slash in namespace rejected",
			input:     "my/mod:copper_ingot",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := ParseID(tc.input)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestID_RoundTrip(t *testing.T) {
	for _, s := range []string{"mymod:gear", "mymod:block/honey_flow", "a-b.c:x_1"} {
		t.Run(s, func(t *testing.T) {
			id, err := ParseID(s)
			require.NoError(t, err)
			assert.Equal(t, s, id.String())
		})
	}
}

func TestMustID_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustID("My Mod", "thing") })
}
