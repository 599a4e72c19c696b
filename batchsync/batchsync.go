package batchsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/test091/zksync-era/db"
	"github.com/test091/zksync-era/log"
	"github.com/test091/zksync-era/logindex"
	"github.com/test091/zksync-era/types"
)

var (
	ErrInvalidConf    = errors.New("invalid batch sync configuration")
	ErrBatchNotSealed = errors.New("batch reported as sealed but its block range is unknown")
)

// Source is the node the sealed batches are pulled from
type Source interface {
	LatestSealedBatch(ctx context.Context) (types.L1BatchNumber, error)
	GetBatch(ctx context.Context, num types.L1BatchNumber) (*logindex.SealedBatch, error)
	GetLogRoot(ctx context.Context, txHash common.Hash) (root common.Hash, found bool, err error)
}

// Storage is where the sealed batches are written
type Storage interface {
	LastSealedBatch(ctx context.Context) (types.L1BatchNumber, error)
	AddBatch(ctx context.Context, batch logindex.SealedBatch) error
	SetBatchRoot(ctx context.Context, batch types.L1BatchNumber, root common.Hash) error
}

// pendingRoot is a stored batch whose log root the node couldn't prove yet
type pendingRoot struct {
	batch  types.L1BatchNumber
	txHash common.Hash
}

// BatchSync follows the sealed batches of a node and copies them with their
// L2->L1 logs into the log index, in order and without gaps
type BatchSync struct {
	logger  *log.Logger
	cfg     Config
	source  Source
	storage Storage

	pending []pendingRoot
}

// New validates the config and creates the sync. Call Start to begin syncing
func New(logger *log.Logger, cfg Config, source Source, storage Storage) (*BatchSync, error) {
	if cfg.SyncInterval.Duration <= 0 {
		return nil, fmt.Errorf("%w: SyncInterval must be positive", ErrInvalidConf)
	}
	return &BatchSync{
		logger:  logger,
		cfg:     cfg,
		source:  source,
		storage: storage,
	}, nil
}

// Start syncs every SyncInterval until ctx is done
func (s *BatchSync) Start(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.SyncInterval.Duration)
	defer ticker.Stop()
	for {
		if err := s.sync(ctx); err != nil && ctx.Err() == nil {
			s.logger.Errorf("batch sync pass aborted: %v", err)
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			s.logger.Info("context cancelled")
			return
		}
	}
}

// sync stores every batch sealed by the node since the last stored one
func (s *BatchSync) sync(ctx context.Context) error {
	s.recordPendingRoots(ctx)

	next, err := s.nextBatch(ctx)
	if err != nil {
		return err
	}
	var latest types.L1BatchNumber
	if err := s.retry(ctx, "getting latest sealed batch", func() error {
		latest, err = s.source.LatestSealedBatch(ctx)
		return err
	}); err != nil {
		return err
	}
	if latest < next {
		s.logger.Debugf("no new batches, last sealed is %s", latest)
		return nil
	}
	s.logger.Infof("syncing from %s to %s", next, latest)
	for num := next; num <= latest; num++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.syncBatch(ctx, num); err != nil {
			return err
		}
	}
	return nil
}

func (s *BatchSync) nextBatch(ctx context.Context) (types.L1BatchNumber, error) {
	var last types.L1BatchNumber
	var err error
	err = s.retry(ctx, "getting last stored batch", func() error {
		last, err = s.storage.LastSealedBatch(ctx)
		if errors.Is(err, db.ErrNotFound) {
			return backoff.Permanent(err)
		}
		return err
	})
	if errors.Is(err, db.ErrNotFound) {
		return types.L1BatchNumber(s.cfg.InitialBatch), nil
	}
	if err != nil {
		return 0, err
	}
	return last + 1, nil
}

func (s *BatchSync) syncBatch(ctx context.Context, num types.L1BatchNumber) error {
	var batch *logindex.SealedBatch
	var err error
	if err := s.retry(ctx, fmt.Sprintf("downloading %s", num), func() error {
		batch, err = s.source.GetBatch(ctx, num)
		return err
	}); err != nil {
		return err
	}
	if batch == nil {
		return fmt.Errorf("%w: %s", ErrBatchNotSealed, num)
	}

	err = s.retry(ctx, fmt.Sprintf("storing %s", num), func() error {
		err := s.storage.AddBatch(ctx, *batch)
		if errors.Is(err, logindex.ErrInvalidBatch) || errors.Is(err, logindex.ErrBatchExists) {
			return backoff.Permanent(err)
		}
		return err
	})
	switch {
	case errors.Is(err, logindex.ErrBatchExists):
		s.logger.Warnf("%s was already stored", num)
	case err != nil:
		return err
	default:
		s.logger.Debugf("synced %s with %d logs", num, len(batch.Logs))
	}

	if s.cfg.RecordRoots && len(batch.Logs) > 0 {
		s.pending = append(s.pending, pendingRoot{batch: num, txHash: batch.Logs[0].TxHash})
		s.recordPendingRoots(ctx)
	}
	return nil
}

// recordPendingRoots stores the roots the node can prove by now, the rest are kept for the next pass
func (s *BatchSync) recordPendingRoots(ctx context.Context) {
	remaining := s.pending[:0]
	for _, p := range s.pending {
		root, found, err := s.source.GetLogRoot(ctx, p.txHash)
		if err == nil && found {
			err = s.storage.SetBatchRoot(ctx, p.batch, root)
		}
		if err != nil {
			s.logger.Warnf("error recording log root of %s: %v", p.batch, err)
		}
		if err != nil || !found {
			remaining = append(remaining, p)
		}
	}
	s.pending = remaining
}

func (s *BatchSync) retry(ctx context.Context, what string, fn func() error) error {
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(s.cfg.RetryInterval.Duration), s.cfg.MaxRetries),
		ctx,
	)
	return backoff.RetryNotify(fn, b, func(err error, next time.Duration) {
		s.logger.Warnf("error %s, retrying in %s: %v", what, next, err)
	})
}
