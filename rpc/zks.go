package rpc

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	zkcommon "github.com/test091/zksync-era/common"
	"github.com/test091/zksync-era/db"
	"github.com/test091/zksync-era/fee"
	"github.com/test091/zksync-era/log"
	"github.com/test091/zksync-era/logproof"
	"github.com/test091/zksync-era/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	// ZKS is the namespace of the zks service
	ZKS       = "zks"
	meterName = "github.com/test091/zksync-era/rpc"

	invalidParamsErrorCode = -32602
	revertedErrorCode      = 3
)

// ZKSEndpoints contains implementations for the "zks" RPC endpoints
type ZKSEndpoints struct {
	logger          *log.Logger
	meter           metric.Meter
	readTimeout     time.Duration
	estimateTimeout time.Duration
	chain           zkcommon.Config
	prover          LogProver
	estimator       FeeEstimator
	batches         BatchInfoer
	gasPricer       GasPricer
}

// NewZKSEndpoints returns ZKSEndpoints
func NewZKSEndpoints(
	logger *log.Logger,
	readTimeout time.Duration,
	estimateTimeout time.Duration,
	chain zkcommon.Config,
	prover LogProver,
	estimator FeeEstimator,
	batches BatchInfoer,
	gasPricer GasPricer,
) *ZKSEndpoints {
	meter := otel.Meter(meterName)
	return &ZKSEndpoints{
		logger:          logger,
		meter:           meter,
		readTimeout:     readTimeout,
		estimateTimeout: estimateTimeout,
		chain:           chain,
		prover:          prover,
		estimator:       estimator,
		batches:         batches,
		gasPricer:       gasPricer,
	}
}

// BlockRange is the first and last miniblock of a batch
type BlockRange [2]hexutil.Uint64

func (z *ZKSEndpoints) count(ctx context.Context, name string) {
	c, merr := z.meter.Int64Counter(name)
	if merr != nil {
		z.logger.Warnf("failed to create %s counter: %s", name, merr)
	} else {
		c.Add(ctx, 1)
	}
}

// EstimateFee returns the gas limit and prices needed to execute the tx, including the cost of its pubdata
// curl -X POST http://localhost:3050/ -H "Content-Type: application/json" \
// -d '{"method":"zks_estimateFee", "params":[{"from":"0x...","to":"0x...","data":"0x"}], "id":1}'
func (z *ZKSEndpoints) EstimateFee(req types.CallRequest) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), z.estimateTimeout)
	defer cancel()
	z.count(ctx, "estimate_fee")

	f, err := z.estimator.EstimateFee(ctx, req)
	if err != nil {
		return nil, z.toRPCError("failed to estimate fee", err)
	}
	return f.ToRPC(), nil
}

// EstimateGasL1ToL2 returns the gas limit of a priority tx requested on L1
func (z *ZKSEndpoints) EstimateGasL1ToL2(req types.CallRequest) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), z.estimateTimeout)
	defer cancel()
	z.count(ctx, "estimate_gas_l1_to_l2")

	gas, err := z.estimator.EstimateGasL1ToL2(ctx, req)
	if err != nil {
		return nil, z.toRPCError("failed to estimate gas", err)
	}
	return (*hexutil.Big)(new(big.Int).SetUint64(gas)), nil
}

// GetL2ToL1MsgProof returns the proof of a message sent to L1 with the L1 messenger. msg is the hash of the
// message. The result is null if the message is unknown or its batch is not sealed yet
func (z *ZKSEndpoints) GetL2ToL1MsgProof(
	block types.MiniblockNumber, sender common.Address, msg common.Hash, position *uint,
) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), z.readTimeout)
	defer cancel()
	z.count(ctx, "get_l2_to_l1_msg_proof")

	proof, err := z.prover.GetL2ToL1MsgProof(ctx, block, sender, msg, position)
	if err != nil {
		return nil, z.toRPCError("failed to get message proof", err)
	}
	if proof == nil {
		return nil, nil
	}
	return proof, nil
}

// GetL2ToL1LogProof returns the proof of an L2->L1 log emitted by the tx.
// The result is null if the tx is unknown or its batch is not sealed yet
func (z *ZKSEndpoints) GetL2ToL1LogProof(txHash common.Hash, index *uint) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), z.readTimeout)
	defer cancel()
	z.count(ctx, "get_l2_to_l1_log_proof")

	proof, err := z.prover.GetL2ToL1LogProof(ctx, txHash, index)
	if err != nil {
		return nil, z.toRPCError("failed to get log proof", err)
	}
	if proof == nil {
		return nil, nil
	}
	return proof, nil
}

// L1BatchNumber returns the last sealed batch
func (z *ZKSEndpoints) L1BatchNumber() (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), z.readTimeout)
	defer cancel()
	z.count(ctx, "l1_batch_number")

	batch, err := z.batches.LastSealedBatch(ctx)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return hexutil.Uint64(0), nil
		}
		return nil, z.toRPCError("failed to get last sealed batch", err)
	}
	return hexutil.Uint64(batch), nil
}

// GetL1BatchBlockRange returns the first and last miniblock of the batch, null if it is not sealed
func (z *ZKSEndpoints) GetL1BatchBlockRange(batch types.L1BatchNumber) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), z.readTimeout)
	defer cancel()
	z.count(ctx, "get_l1_batch_block_range")

	first, last, err := z.batches.GetBlockRange(ctx, batch)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil
		}
		return nil, z.toRPCError("failed to get block range", err)
	}
	return BlockRange{hexutil.Uint64(first), hexutil.Uint64(last)}, nil
}

// GetL1GasPrice returns the L1 gas price used to compute the pubdata cost
func (z *ZKSEndpoints) GetL1GasPrice() (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), z.readTimeout)
	defer cancel()
	z.count(ctx, "get_l1_gas_price")

	price, err := z.gasPricer.CurrentBasePrice(ctx)
	if err != nil {
		return nil, z.toRPCError("failed to get L1 gas price", err)
	}
	return (*hexutil.Big)(price.ToBig()), nil
}

// L1ChainId returns the chain id of the base layer
func (z *ZKSEndpoints) L1ChainId() (interface{}, rpc.Error) { //nolint:stylecheck
	return hexutil.Uint64(z.chain.L1ChainID), nil
}

// GetMainContract returns the address of the rollup contract on L1
func (z *ZKSEndpoints) GetMainContract() (interface{}, rpc.Error) {
	return z.chain.MainContract, nil
}

// GetBridgeContracts returns the addresses of the default bridges
func (z *ZKSEndpoints) GetBridgeContracts() (interface{}, rpc.Error) {
	return z.chain.Bridges, nil
}

// GetTestnetPaymaster returns the address of the testnet paymaster, null if there is none
func (z *ZKSEndpoints) GetTestnetPaymaster() (interface{}, rpc.Error) {
	if z.chain.TestnetPaymaster == (common.Address{}) {
		return nil, nil
	}
	return z.chain.TestnetPaymaster, nil
}

func (z *ZKSEndpoints) toRPCError(msg string, err error) rpc.Error {
	var reverted *types.ExecutionRevertedError
	switch {
	case errors.As(err, &reverted):
		return rpc.NewRPCError(revertedErrorCode, reverted.Error())
	case errors.Is(err, types.ErrAmbiguousLog),
		errors.Is(err, types.ErrIndexOutOfRange),
		errors.Is(err, types.ErrBatchEmpty),
		errors.Is(err, fee.ErrIntrinsicGasTooHigh):
		return rpc.NewRPCError(invalidParamsErrorCode, fmt.Sprintf("%s: %s", msg, err))
	case errors.Is(err, logproof.ErrRootMismatch), errors.Is(err, types.ErrGasOverflow):
		z.logger.Errorf("%s: %v", msg, err)
		return rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("%s: internal error", msg))
	case errors.Is(err, types.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("%s: %s, try again later", msg, types.ErrUnavailable))
	default:
		return rpc.NewRPCError(rpc.DefaultErrorCode, fmt.Sprintf("%s, error: %s", msg, err))
	}
}
