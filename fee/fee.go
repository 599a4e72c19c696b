package fee

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"
	"github.com/test091/zksync-era/common"
	"github.com/test091/zksync-era/gasprice"
	"github.com/test091/zksync-era/log"
	"github.com/test091/zksync-era/simulator"
	"github.com/test091/zksync-era/types"
)

const percentDivisor = 100

var (
	ErrInvalidConfig = errors.New("invalid fee estimator configuration")
	// ErrIntrinsicGasTooHigh is returned when the tx needs more than MaxGasPerTx just to pay its calldata
	ErrIntrinsicGasTooHigh = errors.New("intrinsic gas exceeds the max gas per tx")
	// ErrGasAllowanceTooLow is returned when the tx fails with the gas limit of the request, more gas may help
	ErrGasAllowanceTooLow = errors.New("gas required exceeds allowance")
)

// Estimator finds the gas limit and fee parameters that allow a tx to succeed
type Estimator struct {
	logger *log.Logger
	cfg    Config
	sim    simulator.Simulator
	oracle gasprice.Oracle
}

// New validates the config and creates an Estimator
func New(logger *log.Logger, cfg Config, sim simulator.Simulator, oracle gasprice.Oracle) (*Estimator, error) {
	switch {
	case cfg.MaxGasPerTx == 0:
		return nil, fmt.Errorf("%w: MaxGasPerTx must be positive", ErrInvalidConfig)
	case cfg.IntrinsicGasL2 == 0 || cfg.L1TxIntrinsicGas == 0:
		return nil, fmt.Errorf("%w: intrinsic gas must be positive", ErrInvalidConfig)
	case cfg.L1TxIntrinsicGas > cfg.MaxGasPerTx:
		return nil, fmt.Errorf("%w: L1TxIntrinsicGas %d > MaxGasPerTx %d",
			ErrInvalidConfig, cfg.L1TxIntrinsicGas, cfg.MaxGasPerTx)
	case cfg.EstimateScalePercent < percentDivisor:
		return nil, fmt.Errorf("%w: EstimateScalePercent %d would lower the estimation",
			ErrInvalidConfig, cfg.EstimateScalePercent)
	case cfg.MaxSearchIterations <= 0:
		return nil, fmt.Errorf("%w: MaxSearchIterations must be positive", ErrInvalidConfig)
	case cfg.FairL2GasPrice == 0 || cfg.MaxGasPerPubdataByte == 0:
		return nil, fmt.Errorf("%w: FairL2GasPrice and MaxGasPerPubdataByte must be positive", ErrInvalidConfig)
	}
	return &Estimator{
		logger: logger,
		cfg:    cfg,
		sim:    sim,
		oracle: oracle,
	}, nil
}

// EstimateFee returns the fee of an L2 tx: the minimal gas limit found by simulation scaled by the
// safety margin plus the gas needed to publish its pubdata on L1, and the current prices
func (e *Estimator) EstimateFee(ctx context.Context, req types.CallRequest) (types.Fee, error) {
	floor, err := e.intrinsicGasL2(req)
	if err != nil {
		return types.Fee{}, err
	}
	execGas, res, err := e.searchGasLimit(ctx, req, floor, simulator.ModeL2Tx)
	if err != nil {
		return types.Fee{}, err
	}

	l1Price, err := e.oracle.CurrentBasePrice(ctx)
	if err != nil {
		return types.Fee{}, e.collaboratorErr(ctx, "gas price oracle", err)
	}
	priority, err := e.oracle.CurrentPriorityPrice(ctx)
	if err != nil {
		return types.Fee{}, e.collaboratorErr(ctx, "gas price oracle", err)
	}
	baseFee, gasPerPubdata, err := e.feeParams(l1Price)
	if err != nil {
		return types.Fee{}, e.overflow(err)
	}

	scaled, err := e.scale(execGas)
	if err != nil {
		return types.Fee{}, e.overflow(err)
	}
	footprint := new(uint256.Int).SetUint64(res.PubdataBytes)
	footprint.Add(footprint, uint256.NewInt(req.FactoryDepsSize()))
	footprint.Add(footprint, uint256.NewInt(uint64(len(req.Data))))
	overhead, overflow := new(uint256.Int).MulOverflow(footprint, uint256.NewInt(gasPerPubdata))
	if overflow {
		return types.Fee{}, e.overflow(errors.New("pubdata overhead"))
	}
	total, overflow := new(uint256.Int).AddOverflow(scaled, overhead)
	if overflow || !total.IsUint64() {
		return types.Fee{}, e.overflow(fmt.Errorf("gas limit %s + overhead %s", scaled.Dec(), overhead.Dec()))
	}

	e.logger.Debugf("estimated tx from %s: execution %d, scaled %s, pubdata overhead %s, gas per pubdata %d",
		req.From.Hex(), execGas, scaled.Dec(), overhead.Dec(), gasPerPubdata)
	return types.Fee{
		GasLimit:             total.Uint64(),
		MaxFeePerGas:         baseFee,
		MaxPriorityFeePerGas: priority,
		GasPerPubdataLimit:   gasPerPubdata,
	}, nil
}

// EstimateGasL1ToL2 returns the gas limit of a priority tx. Its pubdata is paid on L1 so no overhead is added
func (e *Estimator) EstimateGasL1ToL2(ctx context.Context, req types.CallRequest) (uint64, error) {
	execGas, _, err := e.searchGasLimit(ctx, req, e.cfg.L1TxIntrinsicGas, simulator.ModeL1ToL2)
	if err != nil {
		return 0, err
	}
	scaled, err := e.scale(execGas)
	if err != nil {
		return 0, e.overflow(err)
	}
	if !scaled.IsUint64() {
		return 0, e.overflow(fmt.Errorf("gas limit %s", scaled.Dec()))
	}
	e.logger.Debugf("estimated L1->L2 tx from %s: execution %d, scaled %s", req.From.Hex(), execGas, scaled.Dec())
	return scaled.Uint64(), nil
}

// searchGasLimit returns the smallest gas limit (within SearchTolerance) for which the tx succeeds, and the
// simulation result at that limit. lo is always a failing limit and hi a succeeding one
func (e *Estimator) searchGasLimit(
	ctx context.Context, req types.CallRequest, floor uint64, mode simulator.Mode,
) (uint64, simulator.Result, error) {
	hi := e.cfg.MaxGasPerTx
	capped := false
	if req.Gas != nil && uint64(*req.Gas) >= floor && uint64(*req.Gas) < hi {
		hi = uint64(*req.Gas)
		capped = true
	}
	if floor > hi {
		return 0, simulator.Result{}, fmt.Errorf("%w: %d > %d", ErrIntrinsicGasTooHigh, floor, hi)
	}

	best, err := e.simulate(ctx, req, hi, mode)
	if err != nil {
		return 0, simulator.Result{}, err
	}
	if !best.Success {
		if capped {
			return 0, simulator.Result{}, fmt.Errorf("%w (%d): %s", ErrGasAllowanceTooLow, hi, best.RevertReason)
		}
		return 0, simulator.Result{}, types.NewExecutionRevertedError(best.RevertReason)
	}

	tolerance := e.cfg.SearchTolerance
	if tolerance == 0 {
		tolerance = 1
	}
	lo := floor - 1
	iterations := 0
	for ; hi-lo > tolerance && iterations < e.cfg.MaxSearchIterations; iterations++ {
		mid := lo + (hi-lo)/2 //nolint:mnd
		res, err := e.simulate(ctx, req, mid, mode)
		if err != nil {
			return 0, simulator.Result{}, err
		}
		if res.Success {
			hi = mid
			best = res
		} else {
			lo = mid
		}
	}
	e.logger.Debugf("gas search (%s) finished after %d iterations: failing %d, succeeding %d", mode, iterations, lo, hi)
	return hi, best, nil
}

func (e *Estimator) simulate(
	ctx context.Context, req types.CallRequest, gasLimit uint64, mode simulator.Mode,
) (simulator.Result, error) {
	if err := ctx.Err(); err != nil {
		return simulator.Result{}, err
	}
	res, err := e.sim.Simulate(ctx, req, gasLimit, mode)
	if err != nil {
		return simulator.Result{}, e.collaboratorErr(ctx, "simulator", err)
	}
	return res, nil
}

// intrinsicGasL2 is the floor of the search: base cost plus calldata cost
func (e *Estimator) intrinsicGasL2(req types.CallRequest) (uint64, error) {
	zeroes := common.CountZeroBytes(req.Data)
	nonZeroes := uint64(len(req.Data)) - zeroes
	gas := new(uint256.Int).SetUint64(e.cfg.IntrinsicGasL2)
	gas.Add(gas, new(uint256.Int).Mul(uint256.NewInt(zeroes), uint256.NewInt(params.TxDataZeroGas)))
	gas.Add(gas, new(uint256.Int).Mul(uint256.NewInt(nonZeroes), uint256.NewInt(params.TxDataNonZeroGasEIP2028)))
	if !gas.IsUint64() || gas.Uint64() > e.cfg.MaxGasPerTx {
		return 0, fmt.Errorf("%w: %s > %d", ErrIntrinsicGasTooHigh, gas.Dec(), e.cfg.MaxGasPerTx)
	}
	return gas.Uint64(), nil
}

// feeParams derives the L2 base fee and the gas charged per pubdata byte from the L1 gas price
func (e *Estimator) feeParams(l1GasPrice *uint256.Int) (*uint256.Int, uint64, error) {
	ethPerPubdata, overflow := new(uint256.Int).MulOverflow(l1GasPrice, uint256.NewInt(e.cfg.L1GasPerPubdataByte))
	if overflow {
		return nil, 0, errors.New("eth per pubdata byte")
	}
	baseFee := ceilDiv(ethPerPubdata, uint256.NewInt(e.cfg.MaxGasPerPubdataByte))
	if fair := uint256.NewInt(e.cfg.FairL2GasPrice); baseFee.Lt(fair) {
		baseFee = fair
	}
	gasPerPubdata := ceilDiv(ethPerPubdata, baseFee)
	if !gasPerPubdata.IsUint64() {
		return nil, 0, fmt.Errorf("gas per pubdata %s", gasPerPubdata.Dec())
	}
	return baseFee, gasPerPubdata.Uint64(), nil
}

// scale applies the safety margin, rounding up
func (e *Estimator) scale(gas uint64) (*uint256.Int, error) {
	scaled, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(gas), uint256.NewInt(e.cfg.EstimateScalePercent))
	if overflow {
		return nil, fmt.Errorf("scaling %d by %d%%", gas, e.cfg.EstimateScalePercent)
	}
	return ceilDiv(scaled, uint256.NewInt(percentDivisor)), nil
}

func ceilDiv(x, y *uint256.Int) *uint256.Int {
	q, r := new(uint256.Int).DivMod(x, y, new(uint256.Int))
	if !r.IsZero() {
		q.AddUint64(q, 1)
	}
	return q
}

func (e *Estimator) overflow(cause error) error {
	e.logger.Errorf("gas overflow, check the fee configuration: %v", cause)
	return fmt.Errorf("%w: %w", types.ErrGasOverflow, cause)
}

func (e *Estimator) collaboratorErr(ctx context.Context, name string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	e.logger.Warnf("%s unavailable: %v", name, err)
	return fmt.Errorf("%w: %s: %w", types.ErrUnavailable, name, err)
}
