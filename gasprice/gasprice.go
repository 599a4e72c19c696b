package gasprice

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"github.com/test091/zksync-era/log"
)

const percentDivisor = 100

var (
	ErrNoSamples   = errors.New("no L1 gas price samples yet")
	ErrNoBaseFee   = errors.New("L1 block has no base fee")
	ErrInvalidConf = errors.New("invalid gas price configuration")
)

// Oracle reports the gas prices used to compute fees
type Oracle interface {
	CurrentBasePrice(ctx context.Context) (*uint256.Int, error)
	CurrentPriorityPrice(ctx context.Context) (*uint256.Int, error)
}

// EthClienter is the part of the L1 client used to sample prices
type EthClienter interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
}

// L1Adjuster samples the L1 base fee and reports the median of the last samples,
// scaled and clamped according to the config
type L1Adjuster struct {
	logger   *log.Logger
	cfg      Config
	l1Client EthClienter

	mu       sync.RWMutex
	baseFees []*uint256.Int
	next     int
	priority *uint256.Int
}

// NewL1Adjuster validates the config and creates an adjuster. Call Start to begin sampling
func NewL1Adjuster(logger *log.Logger, cfg Config, l1Client EthClienter) (*L1Adjuster, error) {
	if cfg.WindowSize <= 0 {
		return nil, fmt.Errorf("%w: WindowSize must be positive", ErrInvalidConf)
	}
	if cfg.PollInterval.Duration <= 0 {
		return nil, fmt.Errorf("%w: PollInterval must be positive", ErrInvalidConf)
	}
	if cfg.PriceScalePercent == 0 {
		return nil, fmt.Errorf("%w: PriceScalePercent must be positive", ErrInvalidConf)
	}
	if cfg.MaxL1GasPrice != 0 && cfg.MaxL1GasPrice < cfg.MinL1GasPrice {
		return nil, fmt.Errorf("%w: MaxL1GasPrice %d < MinL1GasPrice %d",
			ErrInvalidConf, cfg.MaxL1GasPrice, cfg.MinL1GasPrice)
	}
	return &L1Adjuster{
		logger:   logger,
		cfg:      cfg,
		l1Client: l1Client,
		baseFees: make([]*uint256.Int, 0, cfg.WindowSize),
		priority: new(uint256.Int),
	}, nil
}

// Start samples L1 every PollInterval until ctx is done
func (a *L1Adjuster) Start(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.PollInterval.Duration)
	defer ticker.Stop()
	a.sampleWithRetries(ctx)
	for {
		select {
		case <-ticker.C:
			a.sampleWithRetries(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *L1Adjuster) sampleWithRetries(ctx context.Context) {
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(a.cfg.RetryInterval.Duration), a.cfg.MaxRetries),
		ctx,
	)
	err := backoff.RetryNotify(func() error {
		err := a.sample(ctx)
		if errors.Is(err, ErrNoBaseFee) {
			return backoff.Permanent(err)
		}
		return err
	}, b, func(err error, next time.Duration) {
		a.logger.Warnf("error sampling L1 gas price, retrying in %s: %v", next, err)
	})
	if err != nil && ctx.Err() == nil {
		a.logger.Errorf("skipping L1 gas price sample: %v", err)
	}
}

// sample fetches the base fee of the latest L1 block and the suggested tip
func (a *L1Adjuster) sample(ctx context.Context) error {
	header, err := a.l1Client.HeaderByNumber(ctx, nil)
	if err != nil {
		return fmt.Errorf("error getting latest L1 header: %w", err)
	}
	if header.BaseFee == nil {
		return fmt.Errorf("%w: block %s", ErrNoBaseFee, header.Number)
	}
	tip, err := a.l1Client.SuggestGasTipCap(ctx)
	if err != nil {
		return fmt.Errorf("error getting L1 tip cap: %w", err)
	}
	baseFee, overflow := uint256.FromBig(header.BaseFee)
	if overflow {
		return fmt.Errorf("base fee %s overflows", header.BaseFee)
	}
	priority, overflow := uint256.FromBig(tip)
	if overflow {
		return fmt.Errorf("tip cap %s overflows", tip)
	}
	a.addSample(baseFee, priority)
	a.logger.Debugf("L1 base fee sample: %s, tip: %s", baseFee.Dec(), priority.Dec())
	return nil
}

func (a *L1Adjuster) addSample(baseFee, priority *uint256.Int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.baseFees) < a.cfg.WindowSize {
		a.baseFees = append(a.baseFees, baseFee)
	} else {
		a.baseFees[a.next] = baseFee
	}
	a.next = (a.next + 1) % a.cfg.WindowSize
	a.priority = priority
}

// CurrentBasePrice returns the median of the sampled L1 base fees, scaled and clamped
func (a *L1Adjuster) CurrentBasePrice(ctx context.Context) (*uint256.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.mu.RLock()
	samples := slices.Clone(a.baseFees)
	a.mu.RUnlock()
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	slices.SortFunc(samples, func(x, y *uint256.Int) int { return x.Cmp(y) })
	median := new(uint256.Int).Set(samples[len(samples)/2])
	if len(samples)%2 == 0 {
		// average of the two middle samples, rounded down
		median.Add(median, samples[len(samples)/2-1])
		median.Rsh(median, 1)
	}

	price, overflow := new(uint256.Int).MulOverflow(median, uint256.NewInt(a.cfg.PriceScalePercent))
	if overflow {
		return nil, fmt.Errorf("scaled L1 gas price overflows")
	}
	price.Div(price, uint256.NewInt(percentDivisor))
	return a.clamp(price), nil
}

func (a *L1Adjuster) clamp(price *uint256.Int) *uint256.Int {
	minPrice := uint256.NewInt(a.cfg.MinL1GasPrice)
	if price.Lt(minPrice) {
		return minPrice
	}
	if a.cfg.MaxL1GasPrice != 0 {
		maxPrice := uint256.NewInt(a.cfg.MaxL1GasPrice)
		if price.Gt(maxPrice) {
			return maxPrice
		}
	}
	return price
}

// CurrentPriorityPrice returns the last L1 suggested tip
func (a *L1Adjuster) CurrentPriorityPrice(ctx context.Context) (*uint256.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	if len(a.baseFees) == 0 {
		return nil, ErrNoSamples
	}
	return new(uint256.Int).Set(a.priority), nil
}

// Static reports fixed prices
type Static struct {
	base     *uint256.Int
	priority *uint256.Int
}

// NewStatic creates an oracle that always reports the given prices
func NewStatic(base, priority uint64) *Static {
	return &Static{
		base:     uint256.NewInt(base),
		priority: uint256.NewInt(priority),
	}
}

func (s *Static) CurrentBasePrice(ctx context.Context) (*uint256.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return new(uint256.Int).Set(s.base), nil
}

func (s *Static) CurrentPriorityPrice(ctx context.Context) (*uint256.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return new(uint256.Int).Set(s.priority), nil
}
