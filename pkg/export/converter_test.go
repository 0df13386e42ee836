package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverterUnavailableWithoutBinary(t *testing.T) {
	conv := NewConverter("", time.Second)
	assert.False(t, conv.Available())

	_, err := conv.Convert(context.Background(), "/tmp/report.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestConverterUnavailableForMissingBinary(t *testing.T) {
	conv := NewConverter("definitely-not-a-real-office-binary", time.Second)
	assert.False(t, conv.Available())
}
