package rpc

import "github.com/test091/zksync-era/config/types"

// Config holds the deadlines applied to the zks endpoints
type Config struct {
	// ReadTimeout bounds proof and batch lookups
	ReadTimeout types.Duration `mapstructure:"ReadTimeout"`
	// EstimateTimeout bounds a whole fee estimation, simulations included
	EstimateTimeout types.Duration `mapstructure:"EstimateTimeout"`
	// InternalPort is where the JSON-RPC server listens on 127.0.0.1 while RPC.Port serves the
	// method alias proxy. 0 disables the proxy and the server listens on RPC.Port directly
	InternalPort int `mapstructure:"InternalPort"`
}
