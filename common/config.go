package common

import "github.com/ethereum/go-ethereum/common"

type Config struct {
	// L1ChainID is the chain id of the base layer
	L1ChainID uint64 `mapstructure:"L1ChainID"`
	// L2ChainID is the chain id of the rollup
	L2ChainID uint64 `mapstructure:"L2ChainID"`
	// MainContract is the address of the rollup diamond proxy on L1
	MainContract common.Address `mapstructure:"MainContract"`
	// TestnetPaymaster is the address of the testnet paymaster, zero if there is none
	TestnetPaymaster common.Address `mapstructure:"TestnetPaymaster"`
	// Bridges are the addresses of the default bridge contracts on both layers
	Bridges BridgeAddresses `mapstructure:"Bridges"`
}

// BridgeAddresses of the default ERC20 bridge pair
type BridgeAddresses struct {
	L1Erc20DefaultBridge common.Address `mapstructure:"L1Erc20DefaultBridge" json:"l1Erc20DefaultBridge"`
	L2Erc20DefaultBridge common.Address `mapstructure:"L2Erc20DefaultBridge" json:"l2Erc20DefaultBridge"`
}
