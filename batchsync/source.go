package batchsync

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/test091/zksync-era/logindex"
	"github.com/test091/zksync-era/rpc"
	"github.com/test091/zksync-era/types"
)

// zksClienter is the part of the zks client used to follow the node
type zksClienter interface {
	L1BatchNumber() (types.L1BatchNumber, error)
	GetL1BatchBlockRange(batch types.L1BatchNumber) (*rpc.BlockRange, error)
	GetL2ToL1LogProof(txHash common.Hash, index *uint) (*types.LogProof, error)
}

// receiptsCaller fetches the receipts of several miniblocks on a single request
type receiptsCaller interface {
	BatchCallContext(ctx context.Context, b []gethrpc.BatchElem) error
}

type l2ToL1LogJSON struct {
	BlockNumber      hexutil.Uint64 `json:"blockNumber"`
	TransactionHash  common.Hash    `json:"transactionHash"`
	ShardID          hexutil.Uint64 `json:"shardId"`
	IsService        bool           `json:"isService"`
	TxIndexInL1Batch hexutil.Uint64 `json:"txIndexInL1Batch"`
	Sender           common.Address `json:"sender"`
	Key              common.Hash    `json:"key"`
	Value            common.Hash    `json:"value"`
}

type receiptJSON struct {
	TransactionHash common.Hash     `json:"transactionHash"`
	L2ToL1Logs      []l2ToL1LogJSON `json:"l2ToL1Logs"`
}

// RPCSource reads sealed batches from a zks node
type RPCSource struct {
	zks      zksClienter
	receipts receiptsCaller
}

// NewRPCSource dials the node at url
func NewRPCSource(ctx context.Context, url string) (*RPCSource, error) {
	c, err := gethrpc.DialContext(ctx, url)
	if err != nil {
		return nil, err
	}
	return &RPCSource{zks: rpc.NewClient(url), receipts: c}, nil
}

// LatestSealedBatch returns the last batch sealed by the node
func (s *RPCSource) LatestSealedBatch(_ context.Context) (types.L1BatchNumber, error) {
	return s.zks.L1BatchNumber()
}

// GetBatch returns the miniblocks and the L2->L1 logs of the batch, nil if the node hasn't sealed it
func (s *RPCSource) GetBatch(ctx context.Context, num types.L1BatchNumber) (*logindex.SealedBatch, error) {
	blockRange, err := s.zks.GetL1BatchBlockRange(num)
	if err != nil || blockRange == nil {
		return nil, err
	}
	from, to := uint64(blockRange[0]), uint64(blockRange[1])
	if to < from {
		return nil, fmt.Errorf("node returned an inverted block range [%d, %d] for %s", from, to, num)
	}

	blocks := make([][]receiptJSON, to-from+1)
	elems := make([]gethrpc.BatchElem, 0, len(blocks))
	for i := range blocks {
		elems = append(elems, gethrpc.BatchElem{
			Method: "eth_getBlockReceipts",
			Args:   []interface{}{hexutil.Uint64(from + uint64(i))},
			Result: &blocks[i],
		})
	}
	if err := s.receipts.BatchCallContext(ctx, elems); err != nil {
		return nil, err
	}

	batch := &logindex.SealedBatch{
		Number:     num,
		Miniblocks: make([]types.MiniblockNumber, 0, len(blocks)),
	}
	for i, receipts := range blocks {
		if elems[i].Error != nil {
			return nil, fmt.Errorf("error getting receipts of miniblock %d: %w", from+uint64(i), elems[i].Error)
		}
		block := types.MiniblockNumber(from + uint64(i))
		batch.Miniblocks = append(batch.Miniblocks, block)
		for _, r := range receipts {
			for _, l := range r.L2ToL1Logs {
				batch.Logs = append(batch.Logs, types.LogEntry{
					L2ToL1Log: types.L2ToL1Log{
						ShardID:         uint8(l.ShardID),
						IsService:       l.IsService,
						TxNumberInBlock: uint16(l.TxIndexInL1Batch),
						Sender:          l.Sender,
						Key:             l.Key,
						Value:           l.Value,
					},
					L1BatchNumber:   num,
					MiniblockNumber: block,
					TxHash:          r.TransactionHash,
					IndexInBatch:    uint32(len(batch.Logs)),
				})
			}
		}
	}
	return batch, nil
}

// GetLogRoot returns the log root the node proves the first log of the tx against,
// found is false while the node has no proof for it
func (s *RPCSource) GetLogRoot(_ context.Context, txHash common.Hash) (root common.Hash, found bool, err error) {
	first := uint(0)
	proof, err := s.zks.GetL2ToL1LogProof(txHash, &first)
	if err != nil || proof == nil {
		return common.Hash{}, false, err
	}
	return proof.Root, true, nil
}
