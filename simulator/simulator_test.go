package simulator

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
	"github.com/test091/zksync-era/log"
	"github.com/test091/zksync-era/types"
)

const gasThreshold = 50_000

var (
	reverter = common.HexToAddress("0xdead")
	busy     = common.HexToAddress("0xb05e")
)

type revertError struct {
	data string
}

func (e *revertError) Error() string          { return "execution reverted" }
func (e *revertError) ErrorCode() int         { return 3 } //nolint:mnd
func (e *revertError) ErrorData() interface{} { return e.data }

func encodeRevert(t *testing.T, reason string) string {
	t.Helper()
	stringTy, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	packed, err := abi.Arguments{{Type: stringTy}}.Pack(reason)
	require.NoError(t, err)
	selector := crypto.Keccak256([]byte("Error(string)"))[:4]
	return hexutil.Encode(append(selector, packed...))
}

// ethService fakes a sandbox node: txs succeed with at least gasThreshold gas
// and calls to reverter always revert
type ethService struct {
	revertData string
	lastFrom   string
}

func (s *ethService) Call(_ context.Context, args map[string]interface{}, _ string) (hexutil.Bytes, error) {
	s.lastFrom, _ = args["from"].(string)
	if to, ok := args["to"].(string); ok && common.HexToAddress(to) == reverter {
		return nil, &revertError{data: s.revertData}
	}
	if to, ok := args["to"].(string); ok && common.HexToAddress(to) == busy {
		return nil, errors.New("database is locked, try again later")
	}
	gasHex, _ := args["gas"].(string)
	gas, err := hexutil.DecodeUint64(gasHex)
	if err != nil {
		return nil, err
	}
	if gas < gasThreshold {
		return nil, errors.New("out of gas")
	}
	return hexutil.Bytes{}, nil
}

type debugService struct{}

func (s *debugService) TraceCall(
	_ context.Context, _ map[string]interface{}, _ string, _ map[string]interface{},
) (interface{}, error) {
	return map[string]interface{}{
		"pre": map[string]interface{}{},
		"post": map[string]interface{}{
			"0x0000000000000000000000000000000000000001": map[string]interface{}{
				"storage": map[string]string{
					common.BigToHash(big.NewInt(1)).Hex(): common.BigToHash(big.NewInt(2)).Hex(),
					common.BigToHash(big.NewInt(3)).Hex(): common.BigToHash(big.NewInt(4)).Hex(),
				},
			},
			"0x0000000000000000000000000000000000000002": map[string]interface{}{
				"balance": "0x10",
			},
		},
	}, nil
}

func newTestSimulator(t *testing.T, trace bool) (*RPCSimulator, *ethService, *rpc.Client) {
	t.Helper()
	eth := &ethService{revertData: encodeRevert(t, "not allowed")}
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("eth", eth))
	require.NoError(t, server.RegisterName("debug", &debugService{}))
	t.Cleanup(server.Stop)
	client := rpc.DialInProc(server)
	sim := NewRPCSimulatorWithClients(log.GetDefaultLogger(), ethclient.NewClient(client), client, trace)
	return sim, eth, client
}

func TestSimulateThreshold(t *testing.T) {
	ctx := context.Background()
	sim, _, _ := newTestSimulator(t, false)
	to := common.HexToAddress("0x01")
	req := types.CallRequest{From: common.HexToAddress("0x02"), To: &to}

	res, err := sim.Simulate(ctx, req, gasThreshold-1, ModeL2Tx)
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Contains(t, res.RevertReason, "out of gas")

	res, err = sim.Simulate(ctx, req, gasThreshold, ModeL2Tx)
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, uint64(gasThreshold), res.GasUsed)
	require.Zero(t, res.PubdataBytes)
}

func TestSimulateRevertReason(t *testing.T) {
	sim, _, _ := newTestSimulator(t, false)
	req := types.CallRequest{From: common.HexToAddress("0x02"), To: &reverter}

	res, err := sim.Simulate(context.Background(), req, 1_000_000, ModeL2Tx)
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Equal(t, "not allowed", res.RevertReason)
}

func TestSimulatePubdata(t *testing.T) {
	sim, _, _ := newTestSimulator(t, true)
	to := common.HexToAddress("0x01")
	req := types.CallRequest{From: common.HexToAddress("0x02"), To: &to}

	res, err := sim.Simulate(context.Background(), req, gasThreshold, ModeL2Tx)
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, uint64(2*stateDiffBytesPerSlot), res.PubdataBytes)
}

func TestSimulateL1ToL2UsesAlias(t *testing.T) {
	sim, eth, _ := newTestSimulator(t, false)
	to := common.HexToAddress("0x01")
	from := common.HexToAddress("0x02")
	req := types.CallRequest{From: from, To: &to}

	_, err := sim.Simulate(context.Background(), req, gasThreshold, ModeL1ToL2)
	require.NoError(t, err)
	require.Equal(t, ApplyL1ToL2Alias(from), common.HexToAddress(eth.lastFrom))

	_, err = sim.Simulate(context.Background(), req, gasThreshold, ModeL2Tx)
	require.NoError(t, err)
	require.Equal(t, from, common.HexToAddress(eth.lastFrom))
}

func TestSimulateTransportError(t *testing.T) {
	sim, _, client := newTestSimulator(t, false)
	client.Close()
	to := common.HexToAddress("0x01")
	req := types.CallRequest{From: common.HexToAddress("0x02"), To: &to}

	_, err := sim.Simulate(context.Background(), req, gasThreshold, ModeL2Tx)
	require.Error(t, err)
}

func TestSimulateNodeErrorIsNotAFailedExecution(t *testing.T) {
	sim, _, _ := newTestSimulator(t, false)
	req := types.CallRequest{From: common.HexToAddress("0x02"), To: &busy}

	res, err := sim.Simulate(context.Background(), req, 1_000_000, ModeL2Tx)
	require.ErrorContains(t, err, "database is locked")
	require.Equal(t, Result{}, res)
}

func TestIsExecutionFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "revert code", err: &revertError{}, expected: true},
		{name: "revert payload", err: &codeError{code: -32000, msg: "boom", data: "0x"}, expected: true},
		{name: "out of gas", err: &codeError{code: -32000, msg: "out of gas"}, expected: true},
		{name: "allowance", err: &codeError{code: -32000, msg: "gas required exceeds allowance (21000)"}, expected: true},
		{name: "locked", err: &codeError{code: -32000, msg: "database is locked"}, expected: false},
		{name: "rate limit", err: &codeError{code: -32005, msg: "too many requests"}, expected: false},
		{name: "not an rpc error", err: errors.New("connection refused"), expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, isExecutionFailure(tt.err))
		})
	}
}

type codeError struct {
	code int
	msg  string
	data interface{}
}

func (e *codeError) Error() string          { return e.msg }
func (e *codeError) ErrorCode() int         { return e.code }
func (e *codeError) ErrorData() interface{} { return e.data }

func TestAlias(t *testing.T) {
	require.Equal(t,
		common.HexToAddress("0x1111000000000000000000000000000000001112"),
		ApplyL1ToL2Alias(common.HexToAddress("0x01")),
	)
	// wraps around 2^160
	require.Equal(t,
		common.HexToAddress("0x1111000000000000000000000000000000001110"),
		ApplyL1ToL2Alias(common.HexToAddress("0xffffffffffffffffffffffffffffffffffffffff")),
	)
	addr := common.HexToAddress("0x5a443704dd4b594b382c22a083e2bd3090a6fef3")
	require.Equal(t, addr, UndoL1ToL2Alias(ApplyL1ToL2Alias(addr)))
}

func TestModeString(t *testing.T) {
	require.Equal(t, "l2-tx", ModeL2Tx.String())
	require.Equal(t, "l1-to-l2", ModeL1ToL2.String())
}
