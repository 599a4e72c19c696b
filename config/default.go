package config

// DefaultMandatoryVars are the values that depend on the deployment,
// every environment must set them
const DefaultMandatoryVars = `
# Layer 1 (Ethereum) RPC provider URL
L1URL = "http://localhost:8545"

# L2 node RPC URL, used to simulate the candidate transactions
L2URL = "http://localhost:3050"

# L1ChainID is the chain id of the settlement layer
L1ChainID = 9
# L2ChainID is the chain id of the rollup
L2ChainID = 270

# MainContract is the address of the diamond proxy on L1
MainContract = "0x0000000000000000000000000000000000000000"
# TestnetPaymaster is the address of the testnet paymaster, zero if there is none
TestnetPaymaster = "0x0000000000000000000000000000000000000000"
# L1Erc20DefaultBridge is the address of the default ERC20 bridge on L1
L1Erc20DefaultBridge = "0x0000000000000000000000000000000000000000"
# L2Erc20DefaultBridge is the address of the default ERC20 bridge on L2
L2Erc20DefaultBridge = "0x0000000000000000000000000000000000000000"
`

// DefaultVars are not config by themselves but are referenced by the values
// to avoid repetition in config-files
const DefaultVars = `
PathRWData = "/tmp/zks"
`

// DefaultValues is the default configuration
const DefaultValues = `
# Log configuration
[Log]
  # Environment is the environment where the node is running
  Environment = "development" # "production" or "development"
  # Level is the log level
  Level = "info"
  # Outputs are the outputs where the logs will be written
  Outputs = ["stderr"]

[Common]
  L1ChainID = {{L1ChainID}}
  L2ChainID = {{L2ChainID}}
  MainContract = "{{MainContract}}"
  TestnetPaymaster = "{{TestnetPaymaster}}"
  [Common.Bridges]
    L1Erc20DefaultBridge = "{{L1Erc20DefaultBridge}}"
    L2Erc20DefaultBridge = "{{L2Erc20DefaultBridge}}"

[RPC]
  # Host defines the network adapter that will be used to serve the HTTP requests
  Host = "0.0.0.0"
  # Port defines the port to serve the endpoints via HTTP
  Port = 3050
  # ReadTimeout is the HTTP server read timeout
  # check net/http.server.ReadTimeout and net/http.server.ReadHeaderTimeout
  ReadTimeout = "2s"
  # WriteTimeout is the HTTP server write timeout, it must be above ZKS.EstimateTimeout
  # check net/http.server.WriteTimeout
  WriteTimeout = "30s"
  # MaxRequestsPerIPAndSecond defines how much requests a single IP can
  # send within a single second
  MaxRequestsPerIPAndSecond = 50

[ZKS]
  # ReadTimeout bounds the proof and batch lookups
  ReadTimeout = "5s"
  # EstimateTimeout bounds a whole fee estimation, simulations included
  EstimateTimeout = "20s"
  # InternalPort is where the JSON-RPC server listens on 127.0.0.1 when the proxy on RPC.Port
  # accepts zks_L1BatchNumber and zks_L1ChainId, 0 serves RPC.Port directly without those aliases
  InternalPort = 3051

[LogIndex]
  # DBPath is the path of the database of sealed batches and their logs
  DBPath = "{{PathRWData}}/logindex.sqlite"

[BatchSync]
  URL = "{{L2URL}}"
  # InitialBatch is the first batch synced into an empty log index
  InitialBatch = 0
  # SyncInterval is the time between two checks of the latest sealed batch
  SyncInterval = "5s"
  RetryInterval = "1s"
  MaxRetries = 3
  # RecordRoots stores the log root of each batch as reported by the node
  RecordRoots = true

[LogProof]
  # TreeHeight of the L2->L1 log Merkle tree, 0 uses the protocol default
  TreeHeight = 0
  # CacheSize is the number of batch trees kept in memory
  CacheSize = 128
  # BuildTimeout bounds the build of a tree, it is not bound to the request that triggered it
  BuildTimeout = "30s"

[Simulator]
  # URL of the L2 node that executes eth_call
  URL = "{{L2URL}}"
  # TraceStateDiffs measures the pubdata of the candidate using debug_traceCall
  TraceStateDiffs = false

[GasPrice]
  URLRPCL1 = "{{L1URL}}"
  # PollInterval is the time between two samples of the L1 base fee
  PollInterval = "10s"
  # WindowSize is the number of samples the median is taken from
  WindowSize = 10
  # PriceScalePercent is applied to the median, 100 keeps it untouched
  PriceScalePercent = 100
  # MinL1GasPrice and MaxL1GasPrice clamp the reported price in wei, Max = 0 means unbounded
  MinL1GasPrice = 1000000000
  MaxL1GasPrice = 0
  RetryInterval = "1s"
  MaxRetries = 3
  # StaticBasePrice is used instead of sampling L1 when the gasprice component is not run
  StaticBasePrice = 1000000000
  StaticPriorityPrice = 0

[Fee]
  # MaxGasPerTx is the upper bound of the gas limit search
  MaxGasPerTx = 80000000
  # IntrinsicGasL2 is the fixed part of the lower bound of an L2 tx
  IntrinsicGasL2 = 21000
  # L1TxIntrinsicGas is the lower bound of a priority (L1->L2) tx
  L1TxIntrinsicGas = 167157
  # EstimateScalePercent is applied to the gas limit found by the search
  EstimateScalePercent = 130
  # SearchTolerance stops the search once the bounds are this close
  SearchTolerance = 1000
  MaxSearchIterations = 64
  # FairL2GasPrice is the minimal base fee in wei
  FairL2GasPrice = 100000000
  L1GasPerPubdataByte = 17
  MaxGasPerPubdataByte = 50000
`
