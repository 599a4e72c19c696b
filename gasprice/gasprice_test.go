package gasprice

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	configTypes "github.com/test091/zksync-era/config/types"
	"github.com/test091/zksync-era/gasprice/mocks"
	"github.com/test091/zksync-era/log"
)

func testConfig() Config {
	return Config{
		PollInterval:      configTypes.NewDuration(time.Hour),
		WindowSize:        3,
		PriceScalePercent: 150,
		MinL1GasPrice:     10,
		MaxL1GasPrice:     10_000,
		RetryInterval:     configTypes.NewDuration(time.Millisecond),
		MaxRetries:        2,
	}
}

func header(baseFee int64) *types.Header {
	return &types.Header{Number: big.NewInt(1), BaseFee: big.NewInt(baseFee)}
}

func TestNewL1AdjusterValidation(t *testing.T) {
	cfg := testConfig()
	cfg.WindowSize = 0
	_, err := NewL1Adjuster(log.GetDefaultLogger(), cfg, nil)
	require.ErrorIs(t, err, ErrInvalidConf)

	cfg = testConfig()
	cfg.PriceScalePercent = 0
	_, err = NewL1Adjuster(log.GetDefaultLogger(), cfg, nil)
	require.ErrorIs(t, err, ErrInvalidConf)

	cfg = testConfig()
	cfg.MaxL1GasPrice = 1
	_, err = NewL1Adjuster(log.GetDefaultLogger(), cfg, nil)
	require.ErrorIs(t, err, ErrInvalidConf)

	// time.NewTicker panics on a non positive interval
	cfg = testConfig()
	cfg.PollInterval = configTypes.NewDuration(0)
	_, err = NewL1Adjuster(log.GetDefaultLogger(), cfg, nil)
	require.ErrorIs(t, err, ErrInvalidConf)
}

func TestMedianScaledAndClamped(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewEthClienter(t)
	a, err := NewL1Adjuster(log.GetDefaultLogger(), testConfig(), client)
	require.NoError(t, err)

	_, err = a.CurrentBasePrice(ctx)
	require.ErrorIs(t, err, ErrNoSamples)
	_, err = a.CurrentPriorityPrice(ctx)
	require.ErrorIs(t, err, ErrNoSamples)

	client.EXPECT().SuggestGasTipCap(mock.Anything).Return(big.NewInt(2), nil)
	for _, baseFee := range []int64{100, 1000, 200} {
		client.EXPECT().HeaderByNumber(mock.Anything, (*big.Int)(nil)).Return(header(baseFee), nil).Once()
		require.NoError(t, a.sample(ctx))
	}
	// median 200 * 150%
	price, err := a.CurrentBasePrice(ctx)
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(300), price)

	priority, err := a.CurrentPriorityPrice(ctx)
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(2), priority)

	// window slides: [9000, 1000, 200] -> median 1000 * 150%
	client.EXPECT().HeaderByNumber(mock.Anything, (*big.Int)(nil)).Return(header(9000), nil).Once()
	require.NoError(t, a.sample(ctx))
	price, err = a.CurrentBasePrice(ctx)
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(1500), price)

	// [9000, 9000, 200] -> 13500 clamped to the max
	client.EXPECT().HeaderByNumber(mock.Anything, (*big.Int)(nil)).Return(header(9000), nil).Once()
	require.NoError(t, a.sample(ctx))
	price, err = a.CurrentBasePrice(ctx)
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(10_000), price)
}

func TestMinClampAndEvenWindow(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.WindowSize = 2
	cfg.PriceScalePercent = 100
	a, err := NewL1Adjuster(log.GetDefaultLogger(), cfg, nil)
	require.NoError(t, err)

	a.addSample(uint256.NewInt(1), uint256.NewInt(0))
	price, err := a.CurrentBasePrice(ctx)
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(10), price)

	a.addSample(uint256.NewInt(100), uint256.NewInt(0))
	price, err = a.CurrentBasePrice(ctx)
	require.NoError(t, err)
	// (1 + 100) / 2
	require.Equal(t, uint256.NewInt(50), price)
}

func TestSampleWithRetries(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewEthClienter(t)
	a, err := NewL1Adjuster(log.GetDefaultLogger(), testConfig(), client)
	require.NoError(t, err)

	client.EXPECT().HeaderByNumber(mock.Anything, (*big.Int)(nil)).Return(nil, errors.New("timeout")).Twice()
	client.EXPECT().HeaderByNumber(mock.Anything, (*big.Int)(nil)).Return(header(1000), nil).Once()
	client.EXPECT().SuggestGasTipCap(mock.Anything).Return(big.NewInt(1), nil).Once()
	a.sampleWithRetries(ctx)

	price, err := a.CurrentBasePrice(ctx)
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(1500), price)
}

func TestSampleWithoutBaseFeeIsNotRetried(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewEthClienter(t)
	a, err := NewL1Adjuster(log.GetDefaultLogger(), testConfig(), client)
	require.NoError(t, err)

	client.EXPECT().HeaderByNumber(mock.Anything, (*big.Int)(nil)).
		Return(&types.Header{Number: big.NewInt(1)}, nil).Once()
	a.sampleWithRetries(ctx)

	_, err = a.CurrentBasePrice(ctx)
	require.ErrorIs(t, err, ErrNoSamples)
}

func TestStartStopsOnCancel(t *testing.T) {
	client := mocks.NewEthClienter(t)
	a, err := NewL1Adjuster(log.GetDefaultLogger(), testConfig(), client)
	require.NoError(t, err)
	client.EXPECT().HeaderByNumber(mock.Anything, (*big.Int)(nil)).Return(header(1000), nil)
	client.EXPECT().SuggestGasTipCap(mock.Anything).Return(big.NewInt(1), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.Start(ctx)
		close(done)
	}()
	require.Eventually(t, func() bool {
		_, err := a.CurrentBasePrice(context.Background())
		return err == nil
	}, time.Second, 10*time.Millisecond)
	cancel()
	<-done
}

func TestStatic(t *testing.T) {
	s := NewStatic(100, 2)
	base, err := s.CurrentBasePrice(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(100), base)
	priority, err := s.CurrentPriorityPrice(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(2), priority)

	// returned values are copies
	base.SetUint64(1)
	base, err = s.CurrentBasePrice(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint256.NewInt(100), base)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.CurrentBasePrice(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
