package logindex

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
	"github.com/test091/zksync-era/db"
	"github.com/test091/zksync-era/log"
	"github.com/test091/zksync-era/logindex/migrations"
	"github.com/test091/zksync-era/types"
)

var (
	ErrInvalidBatch = errors.New("invalid batch")
	ErrBatchExists  = errors.New("batch already stored")
)

type batchRow struct {
	Num      types.L1BatchNumber `meddler:"num"`
	LogRoot  common.Hash         `meddler:"log_root,hash"`
	SealedAt int64               `meddler:"sealed_at"`
}

type miniblockRow struct {
	Num        types.MiniblockNumber `meddler:"num"`
	L1BatchNum types.L1BatchNumber   `meddler:"l1_batch_num"`
}

type logRow struct {
	L1BatchNum      types.L1BatchNumber   `meddler:"l1_batch_num"`
	IndexInBatch    uint32                `meddler:"index_in_batch"`
	MiniblockNum    types.MiniblockNumber `meddler:"miniblock_num"`
	TxHash          common.Hash           `meddler:"tx_hash,hash"`
	ShardID         uint8                 `meddler:"shard_id"`
	IsService       bool                  `meddler:"is_service"`
	TxNumberInBlock uint16                `meddler:"tx_number_in_block"`
	Sender          common.Address        `meddler:"sender,address"`
	Key             common.Hash           `meddler:"log_key,hash"`
	Value           common.Hash           `meddler:"log_value,hash"`
}

func newLogRow(e types.LogEntry) *logRow {
	return &logRow{
		L1BatchNum:      e.L1BatchNumber,
		IndexInBatch:    e.IndexInBatch,
		MiniblockNum:    e.MiniblockNumber,
		TxHash:          e.TxHash,
		ShardID:         e.ShardID,
		IsService:       e.IsService,
		TxNumberInBlock: e.TxNumberInBlock,
		Sender:          e.Sender,
		Key:             e.Key,
		Value:           e.Value,
	}
}

func (r *logRow) toEntry() types.LogEntry {
	return types.LogEntry{
		L2ToL1Log: types.L2ToL1Log{
			ShardID:         r.ShardID,
			IsService:       r.IsService,
			TxNumberInBlock: r.TxNumberInBlock,
			Sender:          r.Sender,
			Key:             r.Key,
			Value:           r.Value,
		},
		L1BatchNumber:   r.L1BatchNum,
		MiniblockNumber: r.MiniblockNum,
		TxHash:          r.TxHash,
		IndexInBatch:    r.IndexInBatch,
	}
}

// SealedBatch is a batch whose content will not change anymore
type SealedBatch struct {
	Number types.L1BatchNumber
	// LogRoot is the root committed on L1, zero if still unknown
	LogRoot    common.Hash
	Miniblocks []types.MiniblockNumber
	// Logs in emission order, IndexInBatch must match the position in the slice
	Logs []types.LogEntry
}

func (b SealedBatch) validate() error {
	if len(b.Miniblocks) == 0 {
		return fmt.Errorf("%w: %s has no miniblocks", ErrInvalidBatch, b.Number)
	}
	blocks := make(map[types.MiniblockNumber]struct{}, len(b.Miniblocks))
	for _, m := range b.Miniblocks {
		blocks[m] = struct{}{}
	}
	for i, l := range b.Logs {
		if l.IndexInBatch != uint32(i) {
			return fmt.Errorf("%w: log at position %d has index %d", ErrInvalidBatch, i, l.IndexInBatch)
		}
		if l.L1BatchNumber != b.Number {
			return fmt.Errorf("%w: log %d belongs to %s", ErrInvalidBatch, i, l.L1BatchNumber)
		}
		if _, ok := blocks[l.MiniblockNumber]; !ok {
			return fmt.Errorf("%w: log %d emitted on %s which is not part of %s",
				ErrInvalidBatch, i, l.MiniblockNumber, b.Number)
		}
	}
	return nil
}

// LogIndexSQLStorage keeps the L2->L1 logs of the sealed batches on a sqlite DB
type LogIndexSQLStorage struct {
	logger *log.Logger
	db     *sql.DB
}

// NewLogIndexSQLStorage runs the migrations and opens the DB at dbPath
func NewLogIndexSQLStorage(logger *log.Logger, dbPath string) (*LogIndexSQLStorage, error) {
	database, err := db.NewSQLiteDB(dbPath)
	if err != nil {
		return nil, err
	}
	if err := migrations.RunMigrationsDB(logger, database); err != nil {
		return nil, err
	}

	return &LogIndexSQLStorage{
		logger: logger,
		db:     database,
	}, nil
}

// Close closes the underlying DB
func (s *LogIndexSQLStorage) Close() error {
	return s.db.Close()
}

// AddBatch stores a sealed batch with its miniblocks and logs
func (s *LogIndexSQLStorage) AddBatch(ctx context.Context, batch SealedBatch) error {
	if err := batch.validate(); err != nil {
		return err
	}
	return db.RunInTx(ctx, s.db, func(tx *db.Tx) error {
		tx.AddCommitCallback(func() {
			s.logger.Debugf("stored %s with %d miniblocks and %d logs",
				batch.Number, len(batch.Miniblocks), len(batch.Logs))
		})
		if err := meddler.Insert(tx, "l1_batch", &batchRow{
			Num:      batch.Number,
			LogRoot:  batch.LogRoot,
			SealedAt: time.Now().Unix(),
		}); err != nil {
			if db.IsUniqueViolation(err) {
				return fmt.Errorf("%w: %s", ErrBatchExists, batch.Number)
			}
			return fmt.Errorf("error inserting %s: %w", batch.Number, err)
		}
		for _, m := range batch.Miniblocks {
			if err := meddler.Insert(tx, "miniblock", &miniblockRow{Num: m, L1BatchNum: batch.Number}); err != nil {
				return fmt.Errorf("error inserting %s: %w", m, err)
			}
		}
		for _, l := range batch.Logs {
			if err := meddler.Insert(tx, "l2_to_l1_log", newLogRow(l)); err != nil {
				return fmt.Errorf("error inserting log %d of %s: %w", l.IndexInBatch, batch.Number, err)
			}
		}
		return nil
	})
}

// SetBatchRoot records the log root published on L1 for a batch
func (s *LogIndexSQLStorage) SetBatchRoot(ctx context.Context, batch types.L1BatchNumber, root common.Hash) error {
	res, err := s.db.ExecContext(ctx, `UPDATE l1_batch SET log_root = $1 WHERE num = $2;`, root.Hex(), batch)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return db.ErrNotFound
	}
	return nil
}

// GetLogsForBatch returns the logs of the batch in emission order
func (s *LogIndexSQLStorage) GetLogsForBatch(ctx context.Context, batch types.L1BatchNumber) ([]types.LogEntry, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := getBatch(tx, batch); err != nil {
		return nil, err
	}
	return queryLogs(tx, `SELECT * FROM l2_to_l1_log WHERE l1_batch_num = $1 ORDER BY index_in_batch ASC;`, batch)
}

// GetLogsForTransaction returns the logs emitted by the tx, ordered as they were emitted.
// An empty result means that the tx is unknown or not part of a sealed batch yet
func (s *LogIndexSQLStorage) GetLogsForTransaction(ctx context.Context, txHash common.Hash) ([]types.LogEntry, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() //nolint:errcheck

	return queryLogs(tx, `SELECT * FROM l2_to_l1_log WHERE tx_hash = $1 ORDER BY l1_batch_num ASC, index_in_batch ASC;`,
		txHash.Hex())
}

// GetBlockLogs returns the logs emitted on a miniblock, ordered as they were emitted
func (s *LogIndexSQLStorage) GetBlockLogs(ctx context.Context, block types.MiniblockNumber) ([]types.LogEntry, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() //nolint:errcheck

	return queryLogs(tx, `SELECT * FROM l2_to_l1_log WHERE miniblock_num = $1 ORDER BY index_in_batch ASC;`, block)
}

// GetBatchContaining returns the sealed batch that includes the miniblock, db.ErrNotFound if there is none
func (s *LogIndexSQLStorage) GetBatchContaining(
	ctx context.Context, block types.MiniblockNumber,
) (types.L1BatchNumber, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	row := &miniblockRow{}
	if err := meddler.QueryRow(tx, row, `SELECT * FROM miniblock WHERE num = $1;`, block); err != nil {
		return 0, db.ReturnErrNotFound(err)
	}
	return row.L1BatchNum, nil
}

// GetBatchRoot returns the log root published on L1 for the batch, zero hash if it's not known yet
func (s *LogIndexSQLStorage) GetBatchRoot(ctx context.Context, batch types.L1BatchNumber) (common.Hash, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return common.Hash{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	row, err := getBatch(tx, batch)
	if err != nil {
		return common.Hash{}, err
	}
	return row.LogRoot, nil
}

// LastSealedBatch returns the highest sealed batch number
func (s *LogIndexSQLStorage) LastSealedBatch(ctx context.Context) (types.L1BatchNumber, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	row := &batchRow{}
	if err := meddler.QueryRow(tx, row, `SELECT * FROM l1_batch ORDER BY num DESC LIMIT 1;`); err != nil {
		return 0, db.ReturnErrNotFound(err)
	}
	return row.Num, nil
}

// GetBlockRange returns the first and last miniblock of the batch
func (s *LogIndexSQLStorage) GetBlockRange(
	ctx context.Context, batch types.L1BatchNumber,
) (types.MiniblockNumber, types.MiniblockNumber, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback() //nolint:errcheck

	var first, last sql.NullInt64
	err = tx.QueryRow(`SELECT MIN(num), MAX(num) FROM miniblock WHERE l1_batch_num = $1;`, batch).Scan(&first, &last)
	if err != nil {
		return 0, 0, err
	}
	if !first.Valid || !last.Valid {
		return 0, 0, db.ErrNotFound
	}
	return types.MiniblockNumber(first.Int64), types.MiniblockNumber(last.Int64), nil
}

func getBatch(tx meddler.DB, batch types.L1BatchNumber) (*batchRow, error) {
	row := &batchRow{}
	if err := meddler.QueryRow(tx, row, `SELECT * FROM l1_batch WHERE num = $1;`, batch); err != nil {
		return nil, db.ReturnErrNotFound(err)
	}
	return row, nil
}

func queryLogs(tx meddler.DB, query string, args ...interface{}) ([]types.LogEntry, error) {
	var rows []*logRow
	if err := meddler.QueryAll(tx, &rows, query, args...); err != nil {
		return nil, err
	}
	entries := make([]types.LogEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.toEntry())
	}
	return entries, nil
}
