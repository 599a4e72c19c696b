package batchsync

import "github.com/test091/zksync-era/config/types"

type Config struct {
	// URL of the L2 node the sealed batches are pulled from
	URL string `mapstructure:"URL"`
	// InitialBatch is the first batch synced when the log index is empty
	InitialBatch uint32 `mapstructure:"InitialBatch"`
	// SyncInterval time between two checks of the latest sealed batch
	SyncInterval types.Duration `mapstructure:"SyncInterval"`
	// RetryInterval time between retries of a failed call to the node or the storage
	RetryInterval types.Duration `mapstructure:"RetryInterval"`
	// MaxRetries per call, after that the pass is abandoned until the next SyncInterval
	MaxRetries uint64 `mapstructure:"MaxRetries"`
	// RecordRoots stores the log root reported by the node, enabling the published root check of the proofs
	RecordRoots bool `mapstructure:"RecordRoots"`
}
