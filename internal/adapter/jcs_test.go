package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalHash(t *testing.T) {
	j := NewJCS()

	a, err := CanonicalHash(j, []byte(`{"b":2,"a":1}`))
	require.NoError(t, err)
	b, err := CanonicalHash(j, []byte(`{ "a": 1, "b": 2 }`))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	_, err = CanonicalHash(j, []byte(`{not json`))
	assert.Error(t, err)
}
