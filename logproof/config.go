package logproof

import "github.com/test091/zksync-era/config/types"

type Config struct {
	// TreeHeight height of the per batch log tree, 9 allows up to 512 logs per batch
	TreeHeight uint8 `mapstructure:"TreeHeight"`
	// CacheSize max amount of batch trees kept in memory
	CacheSize int `mapstructure:"CacheSize"`
	// BuildTimeout bounds the time spent loading the logs of a batch and building its tree
	BuildTimeout types.Duration `mapstructure:"BuildTimeout"`
}
