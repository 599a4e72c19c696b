package rpc

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/test091/zksync-era/types"
)

type LogProver interface {
	GetL2ToL1MsgProof(
		ctx context.Context, block types.MiniblockNumber, sender common.Address, msg common.Hash, position *uint,
	) (*types.LogProof, error)
	GetL2ToL1LogProof(ctx context.Context, txHash common.Hash, index *uint) (*types.LogProof, error)
}

type FeeEstimator interface {
	EstimateFee(ctx context.Context, req types.CallRequest) (types.Fee, error)
	EstimateGasL1ToL2(ctx context.Context, req types.CallRequest) (uint64, error)
}

type BatchInfoer interface {
	LastSealedBatch(ctx context.Context) (types.L1BatchNumber, error)
	GetBlockRange(ctx context.Context, batch types.L1BatchNumber) (types.MiniblockNumber, types.MiniblockNumber, error)
}

type GasPricer interface {
	CurrentBasePrice(ctx context.Context) (*uint256.Int, error)
}
