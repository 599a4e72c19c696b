package logproof

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	configTypes "github.com/test091/zksync-era/config/types"
	"github.com/test091/zksync-era/db"
	"github.com/test091/zksync-era/log"
	"github.com/test091/zksync-era/logproof/mocks"
	"github.com/test091/zksync-era/logtree"
	"github.com/test091/zksync-era/types"
)

var (
	sender  = common.HexToAddress("0x1234")
	msgHash = common.HexToHash("0xabcd")
	txHash  = common.HexToHash("0xaa")
	otherTx = common.HexToHash("0xbb")
)

const (
	testBatch types.L1BatchNumber   = 7
	testBlock types.MiniblockNumber = 70
)

func testConfig() Config {
	return Config{
		TreeHeight:   logtree.DefaultHeight,
		CacheSize:    8,
		BuildTimeout: configTypes.NewDuration(time.Second),
	}
}

func newTestService(t *testing.T, index LogIndexer) *Service {
	t.Helper()
	s, err := New(log.GetDefaultLogger(), testConfig(), index)
	require.NoError(t, err)
	return s
}

func messageLog(idx uint32, block types.MiniblockNumber, tx common.Hash) types.LogEntry {
	return types.LogEntry{
		L2ToL1Log: types.L2ToL1Log{
			IsService:       true,
			TxNumberInBlock: uint16(idx),
			Sender:          types.L1MessengerAddress,
			Key:             common.BytesToHash(sender.Bytes()),
			Value:           msgHash,
		},
		L1BatchNumber:   testBatch,
		MiniblockNumber: block,
		TxHash:          tx,
		IndexInBatch:    idx,
	}
}

func systemLog(idx uint32, block types.MiniblockNumber, tx common.Hash) types.LogEntry {
	return types.LogEntry{
		L2ToL1Log: types.L2ToL1Log{
			TxNumberInBlock: uint16(idx),
			Sender:          common.HexToAddress("0x800a"),
			Key:             common.BigToHash(common.Big2),
			Value:           common.BytesToHash([]byte{byte(idx)}),
		},
		L1BatchNumber:   testBatch,
		MiniblockNumber: block,
		TxHash:          tx,
		IndexInBatch:    idx,
	}
}

// batchLogs: [system, message, system, message] with both messages sent on testBlock
func batchLogs() []types.LogEntry {
	return []types.LogEntry{
		systemLog(0, testBlock-1, otherTx),
		messageLog(1, testBlock, txHash),
		systemLog(2, testBlock, txHash),
		messageLog(3, testBlock, otherTx),
	}
}

func rawLogs(entries []types.LogEntry) []types.L2ToL1Log {
	res := make([]types.L2ToL1Log, len(entries))
	for i, e := range entries {
		res[i] = e.L2ToL1Log
	}
	return res
}

func blockLogs(entries []types.LogEntry, block types.MiniblockNumber) []types.LogEntry {
	var res []types.LogEntry
	for _, e := range entries {
		if e.MiniblockNumber == block {
			res = append(res, e)
		}
	}
	return res
}

func requireValidProof(t *testing.T, entries []types.LogEntry, proof *types.LogProof, index uint32) {
	t.Helper()
	require.NotNil(t, proof)
	root, err := logtree.NewBuilder(logtree.DefaultHeight).Root(rawLogs(entries))
	require.NoError(t, err)
	require.Equal(t, root, proof.Root)
	require.Equal(t, index, proof.ID)
	require.Equal(t, testBatch, proof.L1BatchNumber)
	require.Len(t, proof.Proof, int(logtree.DefaultHeight))
	require.True(t, logtree.Verify(entries[index].Hash(), proof.Proof, proof.ID, proof.Root))
}

func uintPtr(v uint) *uint {
	return &v
}

func TestMsgProof(t *testing.T) {
	ctx := context.Background()
	entries := batchLogs()
	index := mocks.NewLogIndexer(t)
	index.EXPECT().GetBatchContaining(mock.Anything, testBlock).Return(testBatch, nil)
	index.EXPECT().GetBlockLogs(mock.Anything, testBlock).Return(blockLogs(entries, testBlock), nil)
	index.EXPECT().GetLogsForBatch(mock.Anything, testBatch).Return(entries, nil).Once()
	index.EXPECT().GetBatchRoot(mock.Anything, testBatch).Return(common.Hash{}, nil)
	s := newTestService(t, index)

	// two identical messages on the block
	_, err := s.GetL2ToL1MsgProof(ctx, testBlock, sender, msgHash, nil)
	require.ErrorIs(t, err, types.ErrAmbiguousLog)

	first, err := s.GetL2ToL1MsgProof(ctx, testBlock, sender, msgHash, uintPtr(0))
	require.NoError(t, err)
	requireValidProof(t, entries, first, 1)

	second, err := s.GetL2ToL1MsgProof(ctx, testBlock, sender, msgHash, uintPtr(1))
	require.NoError(t, err)
	requireValidProof(t, entries, second, 3)
	require.NotEqual(t, first.Proof, second.Proof)

	none, err := s.GetL2ToL1MsgProof(ctx, testBlock, sender, msgHash, uintPtr(2))
	require.NoError(t, err)
	require.Nil(t, none)

	none, err = s.GetL2ToL1MsgProof(ctx, testBlock, sender, common.HexToHash("0x01"), nil)
	require.NoError(t, err)
	require.Nil(t, none)

	none, err = s.GetL2ToL1MsgProof(ctx, testBlock, common.HexToAddress("0x99"), msgHash, nil)
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestMsgProofSingleMatch(t *testing.T) {
	entries := batchLogs()[:3]
	index := mocks.NewLogIndexer(t)
	index.EXPECT().GetBatchContaining(mock.Anything, testBlock).Return(testBatch, nil)
	index.EXPECT().GetBlockLogs(mock.Anything, testBlock).Return(blockLogs(entries, testBlock), nil)
	index.EXPECT().GetLogsForBatch(mock.Anything, testBatch).Return(entries, nil)
	index.EXPECT().GetBatchRoot(mock.Anything, testBatch).Return(common.Hash{}, nil)
	s := newTestService(t, index)

	proof, err := s.GetL2ToL1MsgProof(context.Background(), testBlock, sender, msgHash, nil)
	require.NoError(t, err)
	requireValidProof(t, entries, proof, 1)
}

func TestMsgProofBlockNotSealed(t *testing.T) {
	index := mocks.NewLogIndexer(t)
	index.EXPECT().GetBatchContaining(mock.Anything, testBlock).Return(0, db.ErrNotFound)
	s := newTestService(t, index)

	proof, err := s.GetL2ToL1MsgProof(context.Background(), testBlock, sender, msgHash, nil)
	require.NoError(t, err)
	require.Nil(t, proof)
}

func TestLogProof(t *testing.T) {
	ctx := context.Background()
	entries := batchLogs()
	index := mocks.NewLogIndexer(t)
	index.EXPECT().GetLogsForTransaction(mock.Anything, txHash).Return([]types.LogEntry{entries[1], entries[2]}, nil)
	index.EXPECT().GetLogsForTransaction(mock.Anything, otherTx).Return([]types.LogEntry{entries[0], entries[3]}, nil)
	unknown := common.HexToHash("0xcc")
	index.EXPECT().GetLogsForTransaction(mock.Anything, unknown).Return(nil, nil)
	index.EXPECT().GetLogsForBatch(mock.Anything, testBatch).Return(entries, nil).Once()
	index.EXPECT().GetBatchRoot(mock.Anything, testBatch).Return(common.Hash{}, nil)
	s := newTestService(t, index)

	_, err := s.GetL2ToL1LogProof(ctx, txHash, nil)
	require.ErrorIs(t, err, types.ErrAmbiguousLog)

	proof, err := s.GetL2ToL1LogProof(ctx, txHash, uintPtr(1))
	require.NoError(t, err)
	requireValidProof(t, entries, proof, 2)

	proof, err = s.GetL2ToL1LogProof(ctx, otherTx, uintPtr(0))
	require.NoError(t, err)
	requireValidProof(t, entries, proof, 0)

	proof, err = s.GetL2ToL1LogProof(ctx, otherTx, uintPtr(5))
	require.NoError(t, err)
	require.Nil(t, proof)

	proof, err = s.GetL2ToL1LogProof(ctx, unknown, nil)
	require.NoError(t, err)
	require.Nil(t, proof)
}

func TestZeroConfigUsesDefaults(t *testing.T) {
	ctx := context.Background()
	entries := batchLogs()
	index := mocks.NewLogIndexer(t)
	index.EXPECT().GetLogsForTransaction(mock.Anything, otherTx).Return([]types.LogEntry{entries[0], entries[3]}, nil)
	index.EXPECT().GetLogsForBatch(mock.Anything, testBatch).Return(entries, nil).Once()
	index.EXPECT().GetBatchRoot(mock.Anything, testBatch).Return(common.Hash{}, nil)

	s, err := New(log.GetDefaultLogger(), Config{}, index)
	require.NoError(t, err)
	require.Equal(t, defaultBuildTimeout, s.cache.buildTimeout)

	proof, err := s.GetL2ToL1LogProof(ctx, otherTx, uintPtr(1))
	require.NoError(t, err)
	requireValidProof(t, entries, proof, 3)
}

func TestPublishedRoot(t *testing.T) {
	ctx := context.Background()
	entries := batchLogs()
	root, err := logtree.NewBuilder(logtree.DefaultHeight).Root(rawLogs(entries))
	require.NoError(t, err)

	index := mocks.NewLogIndexer(t)
	index.EXPECT().GetLogsForTransaction(mock.Anything, otherTx).Return([]types.LogEntry{entries[0]}, nil)
	index.EXPECT().GetLogsForBatch(mock.Anything, testBatch).Return(entries, nil)
	index.EXPECT().GetBatchRoot(mock.Anything, testBatch).Return(root, nil).Once()
	index.EXPECT().GetBatchRoot(mock.Anything, testBatch).Return(common.HexToHash("0xbad"), nil).Once()
	s := newTestService(t, index)

	proof, err := s.GetL2ToL1LogProof(ctx, otherTx, nil)
	require.NoError(t, err)
	requireValidProof(t, entries, proof, 0)

	_, err = s.GetL2ToL1LogProof(ctx, otherTx, nil)
	require.ErrorIs(t, err, ErrRootMismatch)
}

func TestIndexUnavailable(t *testing.T) {
	ctx := context.Background()
	index := mocks.NewLogIndexer(t)
	index.EXPECT().GetLogsForTransaction(mock.Anything, txHash).Return(nil, errors.New("disk on fire"))
	index.EXPECT().GetBatchContaining(mock.Anything, testBlock).Return(testBatch, nil)
	index.EXPECT().GetBlockLogs(mock.Anything, testBlock).Return(nil, errors.New("disk on fire"))
	s := newTestService(t, index)

	_, err := s.GetL2ToL1LogProof(ctx, txHash, nil)
	require.ErrorIs(t, err, types.ErrUnavailable)
	_, err = s.GetL2ToL1MsgProof(ctx, testBlock, sender, msgHash, nil)
	require.ErrorIs(t, err, types.ErrUnavailable)
}

func TestBuildFailureIsNotCached(t *testing.T) {
	ctx := context.Background()
	entries := batchLogs()
	index := mocks.NewLogIndexer(t)
	index.EXPECT().GetLogsForTransaction(mock.Anything, otherTx).Return([]types.LogEntry{entries[0]}, nil)
	index.EXPECT().GetLogsForBatch(mock.Anything, testBatch).Return(nil, errors.New("timeout")).Once()
	index.EXPECT().GetLogsForBatch(mock.Anything, testBatch).Return(entries, nil).Once()
	index.EXPECT().GetBatchRoot(mock.Anything, testBatch).Return(common.Hash{}, nil)
	s := newTestService(t, index)

	_, err := s.GetL2ToL1LogProof(ctx, otherTx, nil)
	require.ErrorIs(t, err, types.ErrUnavailable)
	require.Equal(t, 0, s.cache.len())

	proof, err := s.GetL2ToL1LogProof(ctx, otherTx, nil)
	require.NoError(t, err)
	requireValidProof(t, entries, proof, 0)
	require.Equal(t, 1, s.cache.len())
}

func TestConcurrentRequestsShareOneBuild(t *testing.T) {
	ctx := context.Background()
	entries := batchLogs()
	release := make(chan struct{})
	index := mocks.NewLogIndexer(t)
	index.EXPECT().GetLogsForTransaction(mock.Anything, txHash).Return([]types.LogEntry{entries[1], entries[2]}, nil)
	index.EXPECT().GetLogsForBatch(mock.Anything, testBatch).
		RunAndReturn(func(context.Context, types.L1BatchNumber) ([]types.LogEntry, error) {
			<-release
			return entries, nil
		}).Once()
	index.EXPECT().GetBatchRoot(mock.Anything, testBatch).Return(common.Hash{}, nil)
	s := newTestService(t, index)

	const requests = 16
	var wg sync.WaitGroup
	proofs := make([]*types.LogProof, requests)
	errs := make([]error, requests)
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			proofs[i], errs[i] = s.GetL2ToL1LogProof(ctx, txHash, uintPtr(uint(i%2)))
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < requests; i++ {
		require.NoError(t, errs[i])
		requireValidProof(t, entries, proofs[i], uint32(1+i%2))
	}
}

func TestCanceledWaiterDoesNotPoisonCache(t *testing.T) {
	entries := batchLogs()
	release := make(chan struct{})
	started := make(chan struct{})
	index := mocks.NewLogIndexer(t)
	index.EXPECT().GetLogsForTransaction(mock.Anything, otherTx).Return([]types.LogEntry{entries[0]}, nil)
	index.EXPECT().GetLogsForBatch(mock.Anything, testBatch).
		RunAndReturn(func(context.Context, types.L1BatchNumber) ([]types.LogEntry, error) {
			close(started)
			<-release
			return entries, nil
		}).Once()
	index.EXPECT().GetBatchRoot(mock.Anything, testBatch).Return(common.Hash{}, nil)
	s := newTestService(t, index)

	canceledCtx, cancel := context.WithCancel(context.Background())
	canceledErr := make(chan error, 1)
	go func() {
		_, err := s.GetL2ToL1LogProof(canceledCtx, otherTx, nil)
		canceledErr <- err
	}()
	<-started

	waiterProof := make(chan *types.LogProof, 1)
	waiterErr := make(chan error, 1)
	go func() {
		p, err := s.GetL2ToL1LogProof(context.Background(), otherTx, nil)
		waiterProof <- p
		waiterErr <- err
	}()

	cancel()
	require.ErrorIs(t, <-canceledErr, context.Canceled)

	close(release)
	require.NoError(t, <-waiterErr)
	requireValidProof(t, entries, <-waiterProof, 0)
	require.Equal(t, 1, s.cache.len())
}
