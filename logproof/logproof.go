package logproof

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/test091/zksync-era/db"
	"github.com/test091/zksync-era/log"
	"github.com/test091/zksync-era/logtree"
	"github.com/test091/zksync-era/types"
)

const (
	defaultCacheSize    = 128
	defaultBuildTimeout = 30 * time.Second
)

var (
	// ErrRootMismatch is returned when the tree rebuilt from the indexed logs doesn't match
	// the root published on L1, which means the index is corrupted
	ErrRootMismatch = errors.New("rebuilt log root doesn't match the published one")
)

// Service builds inclusion proofs for L2->L1 logs and messages
type Service struct {
	logger  *log.Logger
	index   LogIndexer
	builder *logtree.Builder
	cache   *treeCache
}

// New creates a proof Service on top of the given log index
func New(logger *log.Logger, cfg Config, index LogIndexer) (*Service, error) {
	height := cfg.TreeHeight
	if height == 0 {
		height = logtree.DefaultHeight
	}
	if height > logtree.MaxHeight {
		return nil, fmt.Errorf("invalid tree height %d, max %d", height, logtree.MaxHeight)
	}
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	buildTimeout := cfg.BuildTimeout.Duration
	if buildTimeout <= 0 {
		buildTimeout = defaultBuildTimeout
	}
	s := &Service{
		logger:  logger,
		index:   index,
		builder: logtree.NewBuilder(height),
	}
	cache, err := newTreeCache(cacheSize, buildTimeout, s.buildTree)
	if err != nil {
		return nil, err
	}
	s.cache = cache
	return s, nil
}

// GetL2ToL1MsgProof returns the proof of the message sent by sender on block. msg is the
// keccak256 of the message payload. position selects among several identical messages of the
// block and is required when there is more than one. A nil proof with no error means that
// the message isn't known or its batch isn't sealed yet
func (s *Service) GetL2ToL1MsgProof(
	ctx context.Context,
	block types.MiniblockNumber,
	sender common.Address,
	msg common.Hash,
	position *uint,
) (*types.LogProof, error) {
	batch, err := s.index.GetBatchContaining(ctx, block)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil
		}
		return nil, unavailable(err)
	}
	logs, err := s.index.GetBlockLogs(ctx, block)
	if err != nil {
		return nil, unavailable(err)
	}
	matches := make([]types.LogEntry, 0, 1)
	for _, l := range logs {
		if l.IsMessageFrom(sender, msg) {
			matches = append(matches, l)
		}
	}
	selected, err := selectLog(matches, position)
	if err != nil || selected == nil {
		return nil, err
	}
	return s.proveAt(ctx, batch, selected.IndexInBatch)
}

// GetL2ToL1LogProof returns the proof of a log emitted by the tx. index selects among the logs
// of the tx and is required when it emitted more than one. A nil proof with no error means that
// the tx or the log aren't known or the batch isn't sealed yet
func (s *Service) GetL2ToL1LogProof(
	ctx context.Context, txHash common.Hash, index *uint,
) (*types.LogProof, error) {
	logs, err := s.index.GetLogsForTransaction(ctx, txHash)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil
		}
		return nil, unavailable(err)
	}
	selected, err := selectLog(logs, index)
	if err != nil || selected == nil {
		return nil, err
	}
	return s.proveAt(ctx, selected.L1BatchNumber, selected.IndexInBatch)
}

// selectLog picks the requested candidate. Without a position there must be at most one candidate
func selectLog(candidates []types.LogEntry, position *uint) (*types.LogEntry, error) {
	if position == nil {
		switch len(candidates) {
		case 0:
			return nil, nil
		case 1:
			return &candidates[0], nil
		default:
			return nil, fmt.Errorf("%w: %d candidates", types.ErrAmbiguousLog, len(candidates))
		}
	}
	if *position >= uint(len(candidates)) {
		return nil, nil
	}
	return &candidates[*position], nil
}

func (s *Service) proveAt(ctx context.Context, batch types.L1BatchNumber, index uint32) (*types.LogProof, error) {
	tree, err := s.cache.get(ctx, batch)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := s.checkPublishedRoot(ctx, batch, tree.Root()); err != nil {
		return nil, err
	}
	proof, err := tree.Proof(index)
	if err != nil {
		return nil, fmt.Errorf("error building proof of log %d of %s: %w", index, batch, err)
	}
	proof.L1BatchNumber = batch
	return &proof, nil
}

func (s *Service) checkPublishedRoot(ctx context.Context, batch types.L1BatchNumber, rebuilt common.Hash) error {
	published, err := s.index.GetBatchRoot(ctx, batch)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil
		}
		return unavailable(err)
	}
	if published == (common.Hash{}) || published == rebuilt {
		return nil
	}
	s.logger.Errorf("log root of %s doesn't match: published %s, rebuilt %s", batch, published.Hex(), rebuilt.Hex())
	return fmt.Errorf("%w: %s", ErrRootMismatch, batch)
}

func (s *Service) buildTree(ctx context.Context, batch types.L1BatchNumber) (*logtree.Tree, error) {
	entries, err := s.index.GetLogsForBatch(ctx, batch)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, err
		}
		return nil, unavailable(err)
	}
	logs := make([]types.L2ToL1Log, len(entries))
	for i, e := range entries {
		if e.IndexInBatch != uint32(i) {
			return nil, fmt.Errorf("logs of %s are not contiguous: position %d has index %d", batch, i, e.IndexInBatch)
		}
		logs[i] = e.L2ToL1Log
	}
	tree, err := s.builder.Build(logs)
	if err != nil {
		return nil, fmt.Errorf("error building log tree of %s: %w", batch, err)
	}
	s.logger.Debugf("built log tree of %s with %d logs", batch, len(logs))
	return tree, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", types.ErrUnavailable, err)
}
