package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/pfid/pkg/pfid"
)

func deterministicGenerator(ms int64, entropy []byte) *pfid.Generator {
	return pfid.NewGenerator(pfid.GeneratorConfig{
		Now:     func() int64 { return ms },
		Entropy: bytes.NewReader(entropy),
	})
}

func TestGenerateIDs(t *testing.T) {
	t.Run("fixed partition", func(t *testing.T) {
		g := deterministicGenerator(1234567890000, bytes.Repeat([]byte{0x00}, 20))

		texts, err := generateIDs(g, newRequest{partition: 123456789, count: 2})
		require.NoError(t, err)
		require.Len(t, texts, 2)

		assert.Equal(t, "04fq3yr4a03nqk8n0000000000000000", texts[0])
		assert.Equal(t, "04fq3yr4a03nqk8n0000000000000000", texts[1])
	})

	t.Run("root draws a random partition", func(t *testing.T) {
		// 4 partition bytes, then 10 randomness bytes.
		entropy := append([]byte{0xff, 0xff, 0xff, 0xff}, bytes.Repeat([]byte{0x00}, 10)...)
		g := deterministicGenerator(0, entropy)

		texts, err := generateIDs(g, newRequest{root: true, count: 1})
		require.NoError(t, err)
		require.Len(t, texts, 1)

		partition, err := pfid.ExtractPartition(texts[0])
		require.NoError(t, err)
		assert.Equal(t, pfid.MaxPartition, partition)
	})

	t.Run("related reuses the partition", func(t *testing.T) {
		g := deterministicGenerator(1700000000000, bytes.Repeat([]byte{0x5a}, 10))

		texts, err := generateIDs(g, newRequest{related: "04fq3yr4a03nqk8n008j4ct4ank7f24s", count: 1})
		require.NoError(t, err)

		partition, err := pfid.ExtractPartition(texts[0])
		require.NoError(t, err)
		assert.Equal(t, uint32(123456789), partition)
	})

	t.Run("related rejects malformed ids", func(t *testing.T) {
		g := deterministicGenerator(0, bytes.Repeat([]byte{0x00}, 10))

		_, err := generateIDs(g, newRequest{related: "nope", count: 1})
		assert.ErrorIs(t, err, pfid.ErrInvalidTextInput)
	})

	t.Run("example uses the fixed fields", func(t *testing.T) {
		g := deterministicGenerator(0, bytes.Repeat([]byte{0x00}, 10))

		texts, err := generateIDs(g, newRequest{example: true, count: 1})
		require.NoError(t, err)
		assert.Equal(t, "04fq3yr4a03nqk8n0000000000000000", texts[0])
	})

	t.Run("count must be positive", func(t *testing.T) {
		g := deterministicGenerator(0, nil)

		_, err := generateIDs(g, newRequest{count: 0})
		assert.Error(t, err)
	})
}
