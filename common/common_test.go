package common

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestUintConversions(t *testing.T) {
	t.Parallel()

	require.Equal(t, []byte{0x01, 0x02}, Uint16ToBytes(0x0102))
	require.Equal(t, []byte{0, 0}, Uint16ToBytes(0))
}

func TestAddressToHash(t *testing.T) {
	t.Parallel()

	addr := common.HexToAddress("0x000000000000000000000000000000000000800a")
	h := AddressToHash(addr)
	require.Equal(t, common.HexToHash("0x800a"), h)
	require.Equal(t, addr, common.BytesToAddress(h.Bytes()))
}

func TestCountZeroBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []byte
		expected uint64
	}{
		{name: "nil", input: nil, expected: 0},
		{name: "all zero", input: make([]byte, 5), expected: 5},
		{name: "mixed", input: []byte{0, 1, 0, 2, 3}, expected: 2},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, CountZeroBytes(tt.input))
		})
	}
}
