package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/iden3/go-iden3-crypto/keccak256"
	zkcommon "github.com/test091/zksync-era/common"
)

const (
	// L2ToL1LogSerializedSize is the size in bytes of a packed L2ToL1Log
	L2ToL1LogSerializedSize = 88
)

var (
	// L1MessengerAddress is the system contract that emits the logs carrying arbitrary L2->L1 messages
	L1MessengerAddress = common.HexToAddress("0x0000000000000000000000000000000000008008")
)

// L1BatchNumber identifies a batch settled on the base layer
type L1BatchNumber uint32

func (n L1BatchNumber) String() string {
	return fmt.Sprintf("L1 batch #%d", uint32(n))
}

// MiniblockNumber identifies an L2 block. Miniblocks are grouped into L1 batches
type MiniblockNumber uint32

func (n MiniblockNumber) String() string {
	return fmt.Sprintf("miniblock #%d", uint32(n))
}

// L2ToL1Log is a log emitted during L2 execution that is committed to L1
// as a leaf of the batch log tree
type L2ToL1Log struct {
	ShardID         uint8          `json:"shardId"`
	IsService       bool           `json:"isService"`
	TxNumberInBlock uint16         `json:"txNumberInBlock"`
	Sender          common.Address `json:"sender"`
	Key             common.Hash    `json:"key"`
	Value           common.Hash    `json:"value"`
}

// Pack serializes the log into its fixed 88 bytes layout:
// shard_id(1) | is_service(1) | tx_number_in_block(2) | sender(20) | key(32) | value(32)
func (l L2ToL1Log) Pack() []byte {
	res := make([]byte, 0, L2ToL1LogSerializedSize)
	res = append(res, l.ShardID)
	if l.IsService {
		res = append(res, 1)
	} else {
		res = append(res, 0)
	}
	res = append(res, zkcommon.Uint16ToBytes(l.TxNumberInBlock)...)
	res = append(res, l.Sender.Bytes()...)
	res = append(res, l.Key.Bytes()...)
	res = append(res, l.Value.Bytes()...)
	return res
}

// Hash returns the leaf hash of the log
func (l L2ToL1Log) Hash() common.Hash {
	return common.BytesToHash(keccak256.Hash(l.Pack()))
}

// IsMessageFrom tells whether the log is an L1 messenger log sent by sender with the given message hash
func (l L2ToL1Log) IsMessageFrom(sender common.Address, msgHash common.Hash) bool {
	return l.Sender == L1MessengerAddress &&
		l.Key == zkcommon.AddressToHash(sender) &&
		l.Value == msgHash
}

// LogEntry is a log as recorded by the log index, located inside its batch
type LogEntry struct {
	L2ToL1Log
	L1BatchNumber   L1BatchNumber
	MiniblockNumber MiniblockNumber
	TxHash          common.Hash
	// IndexInBatch is the position of the log in the batch emission order
	IndexInBatch uint32
}

// LogProof is the inclusion proof of a log inside the log tree of its batch
type LogProof struct {
	Proof []common.Hash `json:"proof"`
	Root  common.Hash   `json:"root"`
	ID    uint32        `json:"id"`
	// L1BatchNumber is the batch whose log root must be used to verify the proof
	L1BatchNumber L1BatchNumber `json:"l1BatchNumber"`
	// Version of the proof format
	Version uint8 `json:"version"`
}

// CallRequest is a transaction-like object to be estimated
type CallRequest struct {
	From                 common.Address  `json:"from"`
	To                   *common.Address `json:"to"`
	Gas                  *hexutil.Uint64 `json:"gas"`
	GasPrice             *hexutil.Big    `json:"gasPrice"`
	MaxFeePerGas         *hexutil.Big    `json:"maxFeePerGas"`
	MaxPriorityFeePerGas *hexutil.Big    `json:"maxPriorityFeePerGas"`
	Value                *hexutil.Big    `json:"value"`
	Data                 hexutil.Bytes   `json:"data"`
	// FactoryDeps are the bytecodes deployed alongside the transaction, published as pubdata
	FactoryDeps []hexutil.Bytes `json:"factoryDeps"`
}

// FactoryDepsSize returns the number of bytes of all the factory deps of the request
func (r CallRequest) FactoryDepsSize() uint64 {
	var size uint64
	for _, dep := range r.FactoryDeps {
		size += uint64(len(dep))
	}
	return size
}

// IsDeployment tells whether the request creates a contract
func (r CallRequest) IsDeployment() bool {
	return r.To == nil
}

// Fee holds the fee parameters that allow a transaction to be executed
type Fee struct {
	GasLimit             uint64
	MaxFeePerGas         *uint256.Int
	MaxPriorityFeePerGas *uint256.Int
	GasPerPubdataLimit   uint64
}

// RPCFee is the json representation of Fee
type RPCFee struct {
	GasLimit             hexutil.Uint64 `json:"gas_limit"`
	MaxFeePerGas         *hexutil.Big   `json:"max_fee_per_gas"`
	MaxPriorityFeePerGas *hexutil.Big   `json:"max_priority_fee_per_gas"`
	GasPerPubdataLimit   hexutil.Uint64 `json:"gas_per_pubdata_limit"`
}

// ToRPC converts the fee into its json representation
func (f Fee) ToRPC() RPCFee {
	res := RPCFee{
		GasLimit:           hexutil.Uint64(f.GasLimit),
		GasPerPubdataLimit: hexutil.Uint64(f.GasPerPubdataLimit),
	}
	if f.MaxFeePerGas != nil {
		res.MaxFeePerGas = (*hexutil.Big)(f.MaxFeePerGas.ToBig())
	}
	if f.MaxPriorityFeePerGas != nil {
		res.MaxPriorityFeePerGas = (*hexutil.Big)(f.MaxPriorityFeePerGas.ToBig())
	}
	return res
}
