package logproof

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/test091/zksync-era/types"
)

// LogIndexer is the read side of the log index needed to build proofs.
// Absence is reported with db.ErrNotFound
type LogIndexer interface {
	GetLogsForBatch(ctx context.Context, batch types.L1BatchNumber) ([]types.LogEntry, error)
	GetBatchContaining(ctx context.Context, block types.MiniblockNumber) (types.L1BatchNumber, error)
	GetLogsForTransaction(ctx context.Context, txHash common.Hash) ([]types.LogEntry, error)
	GetBlockLogs(ctx context.Context, block types.MiniblockNumber) ([]types.LogEntry, error)
	GetBatchRoot(ctx context.Context, batch types.L1BatchNumber) (common.Hash, error)
}
