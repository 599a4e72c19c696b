package gasprice

import (
	"github.com/test091/zksync-era/config/types"
)

type Config struct {
	// URLRPCL1 URL of the L1 node
	URLRPCL1 string `mapstructure:"URLRPCL1"`
	// PollInterval time between L1 samples
	PollInterval types.Duration `mapstructure:"PollInterval"`
	// WindowSize amount of samples used to compute the median base fee
	WindowSize int `mapstructure:"WindowSize"`
	// PriceScalePercent is applied to the median base fee, 100 leaves it untouched
	PriceScalePercent uint64 `mapstructure:"PriceScalePercent"`
	// MinL1GasPrice lower bound of the reported price in wei
	MinL1GasPrice uint64 `mapstructure:"MinL1GasPrice"`
	// MaxL1GasPrice upper bound of the reported price in wei, 0 means no bound
	MaxL1GasPrice uint64 `mapstructure:"MaxL1GasPrice"`
	// RetryInterval time between retries of a failed sample
	RetryInterval types.Duration `mapstructure:"RetryInterval"`
	// MaxRetries per sample, after that the sample is skipped
	MaxRetries uint64 `mapstructure:"MaxRetries"`
	// StaticBasePrice is used instead of L1 if set, for dev and test environments
	StaticBasePrice uint64 `mapstructure:"StaticBasePrice"`
	// StaticPriorityPrice is the priority price reported together with StaticBasePrice
	StaticPriorityPrice uint64 `mapstructure:"StaticPriorityPrice"`
}
