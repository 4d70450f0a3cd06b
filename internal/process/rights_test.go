package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessRights_String(t *testing.T) {
	assert.Equal(t, "all", AllAccess.String())
	assert.Equal(t, "none", AccessRights(0).String())
	assert.Equal(t, "terminate|query-limited", (Terminate | QueryLimitedInformation).String())
	assert.Equal(t, "query|0x2", (QueryInformation | 0x2).String())
}

func TestParseAccessRights(t *testing.T) {
	tests := []struct {
		in   string
		want AccessRights
	}{
		{"terminate", Terminate},
		{"query-limited|terminate", QueryLimitedInformation | Terminate},
		{"query, synchronize", QueryInformation | Synchronize},
		{"ALL", AllAccess},
		{"0x1001", QueryLimitedInformation | Terminate},
		{"4096", QueryLimitedInformation},
	}
	for _, tt := range tests {
		got, err := ParseAccessRights(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseAccessRights("")
	require.Error(t, err)
	_, err = ParseAccessRights("query|fly")
	require.ErrorContains(t, err, `"fly"`)
}

func TestAccessRights_Has(t *testing.T) {
	r := Terminate | QueryLimitedInformation
	assert.True(t, r.Has(Terminate))
	assert.True(t, r.Has(Terminate|QueryLimitedInformation))
	assert.False(t, r.Has(VMRead))
	assert.True(t, AllAccess.Has(Synchronize))
}
