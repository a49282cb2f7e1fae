package history

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstdCompressor(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)

	original := bytes.Repeat([]byte(`{"op":"difference","result":"3 years, 2 months, 5 days"}`), 100)

	compressed, err := compressor.Compress(original)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(original))

	decompressed, err := compressor.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, decompressed)
}

func TestZstdCompressor_EmptyInput(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)

	compressed, err := compressor.Compress(nil)
	require.NoError(t, err)

	decompressed, err := compressor.Decompress(compressed)
	require.NoError(t, err)
	assert.Empty(t, decompressed)
}

func TestZstdCompressor_GarbageInput(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)

	_, err = compressor.Decompress([]byte("not zstd data"))
	assert.Error(t, err)
}
