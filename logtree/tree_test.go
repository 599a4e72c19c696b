package logtree

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"github.com/test091/zksync-era/types"
)

func newTestLog(i int) types.L2ToL1Log {
	return types.L2ToL1Log{
		ShardID:         0,
		IsService:       i%2 == 0,
		TxNumberInBlock: uint16(i),
		Sender:          types.L1MessengerAddress,
		Key:             common.BigToHash(new(big.Int).Lsh(big.NewInt(1), uint(i%200))),
		Value:           crypto.Keccak256Hash([]byte(fmt.Sprintf("message %d", i))),
	}
}

func newTestLogs(n int) []types.L2ToL1Log {
	logs := make([]types.L2ToL1Log, n)
	for i := range logs {
		logs[i] = newTestLog(i)
	}
	return logs
}

func TestZeroHashes(t *testing.T) {
	zeroHashes := generateZeroHashes(DefaultHeight)
	require.Len(t, zeroHashes, int(DefaultHeight)+1)
	require.Equal(t, crypto.Keccak256Hash(make([]byte, types.L2ToL1LogSerializedSize)), zeroHashes[0])
	for h := 1; h <= int(DefaultHeight); h++ {
		require.Equal(t, crypto.Keccak256Hash(zeroHashes[h-1][:], zeroHashes[h-1][:]), zeroHashes[h])
	}
}

func TestProofRoundTrip(t *testing.T) {
	b := NewBuilder(5)
	for n := 1; n <= int(b.Capacity()); n++ {
		logs := newTestLogs(n)
		root, err := b.Root(logs)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			proof, err := b.Proof(logs, uint32(i))
			require.NoError(t, err)
			require.Len(t, proof.Proof, 5)
			require.Equal(t, root, proof.Root)
			require.Equal(t, uint32(i), proof.ID)
			require.True(t, Verify(logs[i].Hash(), proof.Proof, uint32(i), root), "n=%d i=%d", n, i)
		}
	}
}

func TestDefaultHeightProof(t *testing.T) {
	b := NewBuilder(DefaultHeight)
	logs := newTestLogs(7)
	tree, err := b.Build(logs)
	require.NoError(t, err)
	proof, err := tree.Proof(6)
	require.NoError(t, err)
	require.Len(t, proof.Proof, int(DefaultHeight))
	require.Equal(t, ProofVersion, proof.Version)
	require.True(t, Verify(logs[6].Hash(), proof.Proof, 6, tree.Root()))
	// wrong index or wrong leaf must not verify
	require.False(t, Verify(logs[6].Hash(), proof.Proof, 5, tree.Root()))
	require.False(t, Verify(logs[5].Hash(), proof.Proof, 6, tree.Root()))
	require.False(t, Verify(logs[6].Hash(), proof.Proof, 1<<DefaultHeight, tree.Root()))
}

func TestThreeLogsDepthThree(t *testing.T) {
	b := NewBuilder(3)
	a, bb, c := newTestLog(10), newTestLog(11), newTestLog(12)
	zero := b.zeroHashes[0]

	// manual computation of the padded tree [A, B, C, zero, zero, zero, zero, zero]
	n01 := crypto.Keccak256Hash(a.Hash().Bytes(), bb.Hash().Bytes())
	n23 := crypto.Keccak256Hash(c.Hash().Bytes(), zero.Bytes())
	n45 := crypto.Keccak256Hash(zero.Bytes(), zero.Bytes())
	n0123 := crypto.Keccak256Hash(n01.Bytes(), n23.Bytes())
	n4567 := crypto.Keccak256Hash(n45.Bytes(), n45.Bytes())
	expectedRoot := crypto.Keccak256Hash(n0123.Bytes(), n4567.Bytes())

	root, err := b.Root([]types.L2ToL1Log{a, bb, c})
	require.NoError(t, err)
	require.Equal(t, expectedRoot, root)

	// padding with an explicit zero log produces the same root
	rootPadded, err := b.Root([]types.L2ToL1Log{a, bb, c, {}})
	require.NoError(t, err)
	require.Equal(t, expectedRoot, rootPadded)

	proof, err := b.Proof([]types.L2ToL1Log{a, bb, c}, 1)
	require.NoError(t, err)
	require.Equal(t, []common.Hash{a.Hash(), n23, n4567}, proof.Proof)
	require.True(t, Verify(bb.Hash(), proof.Proof, 1, expectedRoot))
}

func TestOrderSensitivity(t *testing.T) {
	b := NewBuilder(DefaultHeight)
	logs := newTestLogs(4)
	root, err := b.Root(logs)
	require.NoError(t, err)

	swapped := newTestLogs(4)
	swapped[1], swapped[2] = swapped[2], swapped[1]
	rootSwapped, err := b.Root(swapped)
	require.NoError(t, err)
	require.NotEqual(t, root, rootSwapped)

	// swapping children of a node changes the node
	l, r := logs[0].Hash(), logs[1].Hash()
	require.NotEqual(t, hashNode(l, r), hashNode(r, l))
}

func TestDeterminism(t *testing.T) {
	logs := newTestLogs(33)
	root1, err := NewBuilder(DefaultHeight).Root(logs)
	require.NoError(t, err)
	root2, err := NewBuilder(DefaultHeight).Root(newTestLogs(33))
	require.NoError(t, err)
	require.Equal(t, root1, root2)
	root3, err := NewBuilder(DefaultHeight).Root(logs)
	require.NoError(t, err)
	require.Equal(t, root1.Hex(), root3.Hex())
}

func TestEmptyTree(t *testing.T) {
	b := NewBuilder(4)
	root, err := b.Root(nil)
	require.NoError(t, err)
	require.Equal(t, b.zeroHashes[4], root)

	_, err = b.Proof(nil, 0)
	require.ErrorIs(t, err, types.ErrBatchEmpty)

	tree, err := b.Build(nil)
	require.NoError(t, err)
	_, err = tree.Proof(0)
	require.ErrorIs(t, err, types.ErrBatchEmpty)
}

func TestIndexOutOfRange(t *testing.T) {
	b := NewBuilder(4)
	logs := newTestLogs(3)
	_, err := b.Proof(logs, 3)
	require.ErrorIs(t, err, types.ErrIndexOutOfRange)

	tree, err := b.Build(logs)
	require.NoError(t, err)
	_, err = tree.Leaf(3)
	require.ErrorIs(t, err, types.ErrIndexOutOfRange)
	leaf, err := tree.Leaf(2)
	require.NoError(t, err)
	require.Equal(t, logs[2].Hash(), leaf)
	require.Equal(t, 3, tree.NumLeaves())
}

func TestTooManyLeaves(t *testing.T) {
	b := NewBuilder(2)
	_, err := b.Build(newTestLogs(5))
	require.ErrorIs(t, err, ErrTooManyLeaves)

	// a full tree is fine
	logs := newTestLogs(4)
	tree, err := b.Build(logs)
	require.NoError(t, err)
	for i := range logs {
		proof, err := tree.Proof(uint32(i))
		require.NoError(t, err)
		require.True(t, Verify(logs[i].Hash(), proof.Proof, uint32(i), tree.Root()))
	}
}

func TestInvalidHeight(t *testing.T) {
	require.Panics(t, func() { NewBuilder(0) })
	require.Panics(t, func() { NewBuilder(MaxHeight + 1) })
	require.Equal(t, uint64(512), NewBuilder(DefaultHeight).Capacity())
}
