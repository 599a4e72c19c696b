package fee

type Config struct {
	// MaxGasPerTx upper bound of the gas limit search
	MaxGasPerTx uint64 `mapstructure:"MaxGasPerTx"`
	// IntrinsicGasL2 minimum gas of an L2 tx, calldata cost is added on top
	IntrinsicGasL2 uint64 `mapstructure:"IntrinsicGasL2"`
	// L1TxIntrinsicGas minimum gas of a priority tx requested on L1
	L1TxIntrinsicGas uint64 `mapstructure:"L1TxIntrinsicGas"`
	// EstimateScalePercent safety margin applied to the gas found by the search, 120 adds 20%
	EstimateScalePercent uint64 `mapstructure:"EstimateScalePercent"`
	// SearchTolerance the search stops once the failing and succeeding bounds are this close
	SearchTolerance uint64 `mapstructure:"SearchTolerance"`
	// MaxSearchIterations hard cap of simulations of the binary search
	MaxSearchIterations int `mapstructure:"MaxSearchIterations"`
	// FairL2GasPrice minimum L2 gas price in wei
	FairL2GasPrice uint64 `mapstructure:"FairL2GasPrice"`
	// L1GasPerPubdataByte L1 gas paid to publish a byte of pubdata
	L1GasPerPubdataByte uint64 `mapstructure:"L1GasPerPubdataByte"`
	// MaxGasPerPubdataByte max L2 gas that can be charged per pubdata byte
	MaxGasPerPubdataByte uint64 `mapstructure:"MaxGasPerPubdataByte"`
}
