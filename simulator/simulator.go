package simulator

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/holiman/uint256"
	"github.com/test091/zksync-era/log"
	"github.com/test091/zksync-era/types"
)

// Mode selects how the simulated tx enters the chain
type Mode uint8

const (
	// ModeL2Tx is a tx sent directly to the L2
	ModeL2Tx Mode = iota
	// ModeL1ToL2 is a priority tx requested on L1, executed with the aliased sender
	ModeL1ToL2
)

func (m Mode) String() string {
	switch m {
	case ModeL2Tx:
		return "l2-tx"
	case ModeL1ToL2:
		return "l1-to-l2"
	default:
		return fmt.Sprintf("unknown mode %d", uint8(m))
	}
}

const (
	// bytes published per written storage slot: key and value
	stateDiffBytesPerSlot = 64
	// JSON-RPC code of a reverted eth_call
	revertedErrorCode = 3
)

// messages of node errors that mean the tx itself failed at the simulated gas limit
var executionFailureMessages = []string{
	"execution reverted",
	"out of gas",
	"gas required exceeds allowance",
	"intrinsic gas too low",
	"invalid opcode",
	"stack underflow",
	"stack overflow",
	"invalid jump destination",
}

var (
	// l1ToL2AliasOffset is added to the L1 sender of a priority tx to get its L2 address
	l1ToL2AliasOffset = uint256.MustFromHex("0x1111000000000000000000000000000000001111")
	addressMask       = new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), common.AddressLength*8), uint256.NewInt(1)) //nolint:mnd
)

// Result of simulating a tx with a given gas limit
type Result struct {
	Success bool
	// GasUsed is an upper bound of the gas consumed
	GasUsed uint64
	// PubdataBytes is the size of the state diffs the tx produces
	PubdataBytes uint64
	// RevertReason is the decoded reason when the tx reverted
	RevertReason string
}

// Simulator runs a tx against the latest sealed state without committing it.
// A returned error means that the simulation couldn't be run, not that the tx failed
type Simulator interface {
	Simulate(ctx context.Context, req types.CallRequest, gasLimit uint64, mode Mode) (Result, error)
}

// EthCaller is the subset of the eth client used to run the calls
type EthCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// RawCaller runs arbitrary JSON-RPC methods
type RawCaller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

// RPCSimulator simulates txs through eth_call on a sandbox node
type RPCSimulator struct {
	logger          *log.Logger
	eth             EthCaller
	raw             RawCaller
	traceStateDiffs bool
}

// NewRPCSimulator dials the sandbox node
func NewRPCSimulator(ctx context.Context, logger *log.Logger, cfg Config) (*RPCSimulator, error) {
	client, err := rpc.DialContext(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("error dialing simulator at %s: %w", cfg.URL, err)
	}
	return NewRPCSimulatorWithClients(logger, ethclient.NewClient(client), client, cfg.TraceStateDiffs), nil
}

// NewRPCSimulatorWithClients builds a simulator on top of already connected clients
func NewRPCSimulatorWithClients(logger *log.Logger, eth EthCaller, raw RawCaller, traceStateDiffs bool) *RPCSimulator {
	return &RPCSimulator{
		logger:          logger,
		eth:             eth,
		raw:             raw,
		traceStateDiffs: traceStateDiffs,
	}
}

// Simulate runs the request with gasLimit. Reverts and out of gas are reported as unsuccessful results
func (s *RPCSimulator) Simulate(
	ctx context.Context, req types.CallRequest, gasLimit uint64, mode Mode,
) (Result, error) {
	msg := toCallMsg(req, gasLimit, mode)
	_, err := s.eth.CallContract(ctx, msg, nil)
	if err != nil {
		if !isExecutionFailure(err) {
			return Result{}, fmt.Errorf("error simulating tx from %s: %w", msg.From.Hex(), err)
		}
		return Result{
			Success:      false,
			GasUsed:      gasLimit,
			RevertReason: revertReason(err),
		}, nil
	}

	res := Result{
		Success: true,
		GasUsed: gasLimit,
	}
	if s.traceStateDiffs {
		slots, err := s.writtenSlots(ctx, msg)
		if err != nil {
			return Result{}, err
		}
		res.PubdataBytes = slots * stateDiffBytesPerSlot
	}
	return res, nil
}

type prestateAccount struct {
	Storage map[common.Hash]common.Hash `json:"storage"`
}

type prestateDiff struct {
	Post map[common.Address]prestateAccount `json:"post"`
}

// writtenSlots counts the storage slots modified by the call
func (s *RPCSimulator) writtenSlots(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	var diff prestateDiff
	tracerCfg := map[string]interface{}{
		"tracer":       "prestateTracer",
		"tracerConfig": map[string]interface{}{"diffMode": true},
	}
	if err := s.raw.CallContext(ctx, &diff, "debug_traceCall", callArg(msg), "latest", tracerCfg); err != nil {
		return 0, fmt.Errorf("error tracing state diffs: %w", err)
	}
	var slots uint64
	for _, acc := range diff.Post {
		slots += uint64(len(acc.Storage))
	}
	s.logger.Debugf("tx from %s writes %d storage slots", msg.From.Hex(), slots)
	return slots, nil
}

func toCallMsg(req types.CallRequest, gasLimit uint64, mode Mode) ethereum.CallMsg {
	from := req.From
	if mode == ModeL1ToL2 {
		from = ApplyL1ToL2Alias(from)
	}
	msg := ethereum.CallMsg{
		From: from,
		To:   req.To,
		Gas:  gasLimit,
		Data: req.Data,
	}
	if req.Value != nil {
		msg.Value = req.Value.ToInt()
	}
	if req.GasPrice != nil {
		msg.GasPrice = req.GasPrice.ToInt()
	}
	if req.MaxFeePerGas != nil {
		msg.GasFeeCap = req.MaxFeePerGas.ToInt()
	}
	if req.MaxPriorityFeePerGas != nil {
		msg.GasTipCap = req.MaxPriorityFeePerGas.ToInt()
	}
	return msg
}

// callArg encodes the msg the same way ethclient does for eth_call
func callArg(msg ethereum.CallMsg) interface{} {
	arg := map[string]interface{}{
		"from": msg.From,
		"to":   msg.To,
	}
	if len(msg.Data) > 0 {
		arg["input"] = hexutil.Bytes(msg.Data)
	}
	if msg.Value != nil {
		arg["value"] = (*hexutil.Big)(msg.Value)
	}
	if msg.Gas != 0 {
		arg["gas"] = hexutil.Uint64(msg.Gas)
	}
	if msg.GasPrice != nil {
		arg["gasPrice"] = (*hexutil.Big)(msg.GasPrice)
	}
	if msg.GasFeeCap != nil {
		arg["maxFeePerGas"] = (*hexutil.Big)(msg.GasFeeCap)
	}
	if msg.GasTipCap != nil {
		arg["maxPriorityFeePerGas"] = (*hexutil.Big)(msg.GasTipCap)
	}
	return arg
}

// isExecutionFailure tells a failed execution apart from a node that couldn't run the call
// (locked db, rate limit, internal error), which must not be read as a failed simulation
func isExecutionFailure(err error) bool {
	var rpcErr rpc.Error
	if !errors.As(err, &rpcErr) {
		return false
	}
	if rpcErr.ErrorCode() == revertedErrorCode {
		return true
	}
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) && dataErr.ErrorData() != nil {
		return true
	}
	msg := strings.ToLower(rpcErr.Error())
	for _, m := range executionFailureMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// revertReason decodes the Error(string) payload of a revert, falling back to the error message
func revertReason(err error) string {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if data, ok := dataErr.ErrorData().(string); ok {
			if raw, decErr := hexutil.Decode(data); decErr == nil {
				if reason, unpackErr := abi.UnpackRevert(raw); unpackErr == nil {
					return reason
				}
			}
		}
	}
	return err.Error()
}

// ApplyL1ToL2Alias returns the L2 address of an L1 contract that sends a priority tx
func ApplyL1ToL2Alias(addr common.Address) common.Address {
	aliased := new(uint256.Int).SetBytes(addr.Bytes())
	aliased.Add(aliased, l1ToL2AliasOffset)
	aliased.And(aliased, addressMask)
	return common.Address(aliased.Bytes20())
}

// UndoL1ToL2Alias returns the L1 address from its aliased L2 address
func UndoL1ToL2Alias(addr common.Address) common.Address {
	original := new(uint256.Int).SetBytes(addr.Bytes())
	original.Sub(original, l1ToL2AliasOffset)
	original.And(original, addressMask)
	return common.Address(original.Bytes20())
}
