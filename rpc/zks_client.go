package rpc

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	zkcommon "github.com/test091/zksync-era/common"
	"github.com/test091/zksync-era/types"
)

type ZKSClientInterface interface {
	EstimateFee(req types.CallRequest) (*types.Fee, error)
	EstimateGasL1ToL2(req types.CallRequest) (uint64, error)
	GetL2ToL1MsgProof(
		block types.MiniblockNumber, sender common.Address, msg common.Hash, position *uint,
	) (*types.LogProof, error)
	GetL2ToL1LogProof(txHash common.Hash, index *uint) (*types.LogProof, error)
	L1BatchNumber() (types.L1BatchNumber, error)
	GetL1BatchBlockRange(batch types.L1BatchNumber) (*BlockRange, error)
	GetL1GasPrice() (*big.Int, error)
	L1ChainID() (uint64, error)
	GetMainContract() (common.Address, error)
	GetBridgeContracts() (*zkcommon.BridgeAddresses, error)
	GetTestnetPaymaster() (*common.Address, error)
}

// EstimateFee returns the fee needed to execute the tx on L2
func (c *Client) EstimateFee(req types.CallRequest) (*types.Fee, error) {
	var result types.RPCFee
	if _, err := c.call(&result, "zks_estimateFee", req); err != nil {
		return nil, err
	}
	maxFee, err := toUint256(result.MaxFeePerGas)
	if err != nil {
		return nil, err
	}
	priorityFee, err := toUint256(result.MaxPriorityFeePerGas)
	if err != nil {
		return nil, err
	}
	return &types.Fee{
		GasLimit:             uint64(result.GasLimit),
		MaxFeePerGas:         maxFee,
		MaxPriorityFeePerGas: priorityFee,
		GasPerPubdataLimit:   uint64(result.GasPerPubdataLimit),
	}, nil
}

// EstimateGasL1ToL2 returns the gas limit of a priority tx
func (c *Client) EstimateGasL1ToL2(req types.CallRequest) (uint64, error) {
	var result hexutil.Big
	if _, err := c.call(&result, "zks_estimateGasL1ToL2", req); err != nil {
		return 0, err
	}
	gas := result.ToInt()
	if !gas.IsUint64() {
		return 0, fmt.Errorf("gas %s doesn't fit on uint64", gas)
	}
	return gas.Uint64(), nil
}

// GetL2ToL1MsgProof returns the proof of a message, nil if it's not available yet
func (c *Client) GetL2ToL1MsgProof(
	block types.MiniblockNumber, sender common.Address, msg common.Hash, position *uint,
) (*types.LogProof, error) {
	var result types.LogProof
	found, err := c.call(&result, "zks_getL2ToL1MsgProof", block, sender, msg, position)
	if err != nil || !found {
		return nil, err
	}
	return &result, nil
}

// GetL2ToL1LogProof returns the proof of a log of the tx, nil if it's not available yet
func (c *Client) GetL2ToL1LogProof(txHash common.Hash, index *uint) (*types.LogProof, error) {
	var result types.LogProof
	found, err := c.call(&result, "zks_getL2ToL1LogProof", txHash, index)
	if err != nil || !found {
		return nil, err
	}
	return &result, nil
}

// L1BatchNumber returns the last sealed batch
func (c *Client) L1BatchNumber() (types.L1BatchNumber, error) {
	var result hexutil.Uint64
	if _, err := c.call(&result, "zks_L1BatchNumber"); err != nil {
		return 0, err
	}
	return types.L1BatchNumber(result), nil
}

// GetL1BatchBlockRange returns the first and last miniblock of the batch, nil if it's not sealed
func (c *Client) GetL1BatchBlockRange(batch types.L1BatchNumber) (*BlockRange, error) {
	var result BlockRange
	found, err := c.call(&result, "zks_getL1BatchBlockRange", batch)
	if err != nil || !found {
		return nil, err
	}
	return &result, nil
}

// GetL1GasPrice returns the L1 gas price used by the node
func (c *Client) GetL1GasPrice() (*big.Int, error) {
	var result hexutil.Big
	if _, err := c.call(&result, "zks_getL1GasPrice"); err != nil {
		return nil, err
	}
	return result.ToInt(), nil
}

// L1ChainID returns the chain id of the base layer
func (c *Client) L1ChainID() (uint64, error) {
	var result hexutil.Uint64
	if _, err := c.call(&result, "zks_L1ChainId"); err != nil {
		return 0, err
	}
	return uint64(result), nil
}

// GetMainContract returns the address of the rollup contract on L1
func (c *Client) GetMainContract() (common.Address, error) {
	var result common.Address
	_, err := c.call(&result, "zks_getMainContract")
	return result, err
}

// GetBridgeContracts returns the default bridges
func (c *Client) GetBridgeContracts() (*zkcommon.BridgeAddresses, error) {
	var result zkcommon.BridgeAddresses
	if _, err := c.call(&result, "zks_getBridgeContracts"); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTestnetPaymaster returns the testnet paymaster, nil if there is none
func (c *Client) GetTestnetPaymaster() (*common.Address, error) {
	var result common.Address
	found, err := c.call(&result, "zks_getTestnetPaymaster")
	if err != nil || !found {
		return nil, err
	}
	return &result, nil
}

func toUint256(v *hexutil.Big) (*uint256.Int, error) {
	if v == nil {
		return new(uint256.Int), nil
	}
	res, overflow := uint256.FromBig(v.ToInt())
	if overflow {
		return nil, fmt.Errorf("%s overflows uint256", v.String())
	}
	return res, nil
}
