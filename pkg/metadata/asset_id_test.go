package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAssetID(t *testing.T) {
	tests := []struct {
		name     string
		seq      int
		expected string
	}{
		{
			name:     "first record",
			seq:      1,
			expected: "ASSET_00001",
		},
		{
			name:     "zero padded",
			seq:      42,
			expected: "ASSET_00042",
		},
		{
			name:     "five digits filled",
			seq:      12345,
			expected: "ASSET_12345",
		},
		{
			name:     "overflow keeps all digits",
			seq:      123456,
			expected: "ASSET_123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assetID := NewAssetID(tt.seq)
			assert.Equal(t, tt.expected, assetID.Generate())
		})
	}
}

func TestNewStatus(t *testing.T) {
	status, err := NewStatus("FOR REPAIR")
	assert.NoError(t, err)
	assert.Equal(t, StatusForRepair, status)

	_, err = NewStatus("BROKEN")
	assert.Error(t, err)
}
