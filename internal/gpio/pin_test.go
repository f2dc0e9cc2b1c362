package gpio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopPin(t *testing.T) {
	var p NopPin
	require.NoError(t, p.Write(true))
	high, err := p.Read()
	require.NoError(t, err)
	assert.True(t, high)
	assert.Equal(t, 1, p.Writes())

	_, _, err = p.WaitEdge(0)
	require.ErrorIs(t, err, ErrTimeout)
}
