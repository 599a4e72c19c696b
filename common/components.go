package common

const (
	// RPC name to identify the rpc component (implies the log index, the proof service and the fee estimator)
	RPC = "rpc"
	// GAS_PRICE name to identify the L1 gas price adjuster component
	GAS_PRICE = "gasprice" //nolint:stylecheck
	// LOG_INDEX name to identify the log index storage
	LOG_INDEX = "logindex" //nolint:stylecheck
	// LOG_PROOF name to identify the L2->L1 log proof service
	LOG_PROOF = "logproof" //nolint:stylecheck
	// FEE_ESTIMATOR name to identify the fee estimator
	FEE_ESTIMATOR = "fee-estimator" //nolint:stylecheck
	// SIMULATOR name to identify the execution simulator adapter
	SIMULATOR = "simulator"
	// BATCH_SYNC name to identify the component that copies the sealed batches of the L2 node into the log index
	BATCH_SYNC = "batchsync" //nolint:stylecheck
)
