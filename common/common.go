package common

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
)

// Uint16ToBytes converts a uint16 to a byte slice in big-endian order
func Uint16ToBytes(num uint16) []byte {
	const uint16ByteSize = 2

	key := make([]byte, uint16ByteSize)
	binary.BigEndian.PutUint16(key, num)

	return key
}

// AddressToHash left-pads an address to 32 bytes, the way system contracts
// store an address in a log key.
func AddressToHash(addr common.Address) common.Hash {
	return common.BytesToHash(addr.Bytes())
}

// CountZeroBytes returns how many bytes of data are zero
func CountZeroBytes(data []byte) uint64 {
	var zeroes uint64
	for _, b := range data {
		if b == 0 {
			zeroes++
		}
	}
	return zeroes
}
