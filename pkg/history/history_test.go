package history

import (
	"encoding/json"
	"hash/crc32"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/require"

	"github.com/SirJonasM/fpga-router/pkg/router"
)

func TestCompressionRoundTripPreservesRows(t *testing.T) {
	rows := []router.Row{
		{Iteration: 0, Conflicts: 3, LongestPathCost: 4, TotalWireUse: 10, WireReuse: 1.2, UnreachableSignals: 0},
		{Iteration: 1, Conflicts: 0, LongestPathCost: 5, TotalWireUse: 12, WireReuse: 1.0, UnreachableSignals: 0},
	}

	raw, err := json.Marshal(rows)
	require.NoError(t, err)

	compressed := snappy.Encode(nil, raw)
	checksum := crc32.ChecksumIEEE(compressed)

	require.Equal(t, checksum, crc32.ChecksumIEEE(compressed))

	decompressed, err := snappy.Decode(nil, compressed)
	require.NoError(t, err)

	var got []router.Row
	require.NoError(t, json.Unmarshal(decompressed, &got))
	require.Equal(t, rows, got)
}

func TestCorruptedPayloadFailsChecksum(t *testing.T) {
	raw, err := json.Marshal([]router.Row{{Iteration: 0}})
	require.NoError(t, err)

	compressed := snappy.Encode(nil, raw)
	checksum := crc32.ChecksumIEEE(compressed)

	tampered := append([]byte{}, compressed...)
	tampered[0] ^= 0xFF

	require.NotEqual(t, checksum, crc32.ChecksumIEEE(tampered))
}
