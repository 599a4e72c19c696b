package logtree

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/test091/zksync-era/types"
	"golang.org/x/crypto/sha3"
)

const (
	// DefaultHeight of the log tree: 2^9 = 512 leaves, the max amount of L2->L1 logs per batch
	DefaultHeight uint8 = 9
	// MaxHeight is the max height supported, indexes are uint32
	MaxHeight uint8 = 32
	// ProofVersion is the version of the proof format returned to the verifiers
	ProofVersion uint8 = 1
)

var (
	ErrTooManyLeaves = errors.New("amount of leaves exceeds the tree capacity")
)

// Builder builds log trees of a fixed height. The zero hashes are computed once
// and shared by all the trees it builds
type Builder struct {
	height     uint8
	zeroHashes []common.Hash
}

// NewBuilder creates a Builder for trees of the given height
func NewBuilder(height uint8) *Builder {
	if height == 0 || height > MaxHeight {
		panic(fmt.Sprintf("invalid log tree height %d", height))
	}
	return &Builder{
		height:     height,
		zeroHashes: generateZeroHashes(height),
	}
}

// Height of the trees built
func (b *Builder) Height() uint8 {
	return b.height
}

// Capacity is the max amount of leaves of the trees built
func (b *Builder) Capacity() uint64 {
	return uint64(1) << b.height
}

// Build hashes the logs in emission order and builds every level of the tree
func (b *Builder) Build(logs []types.L2ToL1Log) (*Tree, error) {
	if uint64(len(logs)) > b.Capacity() {
		return nil, fmt.Errorf("%w: %d leaves, capacity %d", ErrTooManyLeaves, len(logs), b.Capacity())
	}
	leaves := make([]common.Hash, len(logs))
	for i, l := range logs {
		leaves[i] = l.Hash()
	}
	return b.buildFromLeaves(leaves), nil
}

// Root returns the root of the tree of the given logs
func (b *Builder) Root(logs []types.L2ToL1Log) (common.Hash, error) {
	t, err := b.Build(logs)
	if err != nil {
		return common.Hash{}, err
	}
	return t.Root(), nil
}

// Proof builds the tree of the given logs and returns the proof of the log at index
func (b *Builder) Proof(logs []types.L2ToL1Log, index uint32) (types.LogProof, error) {
	if len(logs) == 0 {
		return types.LogProof{}, types.ErrBatchEmpty
	}
	t, err := b.Build(logs)
	if err != nil {
		return types.LogProof{}, err
	}
	return t.Proof(index)
}

func (b *Builder) buildFromLeaves(leaves []common.Hash) *Tree {
	levels := make([][]common.Hash, b.height+1)
	levels[0] = leaves
	for h := uint8(0); h < b.height; h++ {
		current := levels[h]
		next := make([]common.Hash, (len(current)+1)/2) //nolint:mnd
		for i := range next {
			left := current[2*i]
			right := b.zeroHashes[h]
			if 2*i+1 < len(current) {
				right = current[2*i+1]
			}
			next[i] = hashNode(left, right)
		}
		levels[h+1] = next
	}
	return &Tree{
		height:     b.height,
		levels:     levels,
		zeroHashes: b.zeroHashes,
	}
}

// Tree is an immutable log tree. Only the non empty part of each level is stored,
// the rest of the nodes are zero hashes
type Tree struct {
	height     uint8
	levels     [][]common.Hash
	zeroHashes []common.Hash
}

// Root of the tree
func (t *Tree) Root() common.Hash {
	top := t.levels[t.height]
	if len(top) == 0 {
		return t.zeroHashes[t.height]
	}
	return top[0]
}

// NumLeaves returns the amount of non empty leaves
func (t *Tree) NumLeaves() int {
	return len(t.levels[0])
}

// Leaf returns the hash of the leaf at index
func (t *Tree) Leaf(index uint32) (common.Hash, error) {
	if int(index) >= len(t.levels[0]) {
		return common.Hash{}, types.ErrIndexOutOfRange
	}
	return t.levels[0][index], nil
}

// Proof returns the siblings of the leaf at index, ordered from the leaf to the root
func (t *Tree) Proof(index uint32) (types.LogProof, error) {
	if len(t.levels[0]) == 0 {
		return types.LogProof{}, types.ErrBatchEmpty
	}
	if int(index) >= len(t.levels[0]) {
		return types.LogProof{}, fmt.Errorf("%w: index %d, leaves %d", types.ErrIndexOutOfRange, index, len(t.levels[0]))
	}
	if len(t.levels) != int(t.height)+1 {
		panic(fmt.Sprintf("log tree has %d levels, expected %d", len(t.levels), t.height+1))
	}
	siblings := make([]common.Hash, t.height)
	current := index
	for h := uint8(0); h < t.height; h++ {
		// the sibling of a left node (even) is on its right and vice versa
		sibling := current ^ 1
		if int(sibling) < len(t.levels[h]) {
			siblings[h] = t.levels[h][sibling]
		} else {
			siblings[h] = t.zeroHashes[h]
		}
		current >>= 1
	}
	return types.LogProof{
		Proof:   siblings,
		Root:    t.Root(),
		ID:      index,
		Version: ProofVersion,
	}, nil
}

// ComputeRoot folds the proof over the leaf the same way the L1 verifier does
func ComputeRoot(leaf common.Hash, proof []common.Hash, index uint32) common.Hash {
	current := leaf
	for h, sibling := range proof {
		if index&(1<<h) > 0 {
			current = hashNode(sibling, current)
		} else {
			current = hashNode(current, sibling)
		}
	}
	return current
}

// Verify checks that leaf is at index of the tree with the given root
func Verify(leaf common.Hash, proof []common.Hash, index uint32, root common.Hash) bool {
	if len(proof) < int(MaxHeight) && uint64(index) >= uint64(1)<<len(proof) {
		return false
	}
	return ComputeRoot(leaf, proof, index) == root
}

func hashNode(left, right common.Hash) common.Hash {
	var hash common.Hash
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(left[:])
	hasher.Write(right[:])
	copy(hash[:], hasher.Sum(nil))
	return hash
}

// generateZeroHashes returns the hash of an empty subtree for every height.
// The empty leaf is the hash of a log serialized as zeroes
func generateZeroHashes(height uint8) []common.Hash {
	emptyLeaf := types.L2ToL1Log{}.Hash()
	var zeroHashes = []common.Hash{
		emptyLeaf,
	}
	for i := 1; i <= int(height); i++ {
		zeroHashes = append(zeroHashes, hashNode(zeroHashes[i-1], zeroHashes[i-1]))
	}
	return zeroHashes
}
