package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		require.NoError(t, err)

		// 32 bytes base64url without padding
		assert.Len(t, id, 43)
		assert.False(t, seen[id], "ids must not repeat")
		seen[id] = true
	}
}
