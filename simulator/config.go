package simulator

type Config struct {
	// URL of the sandbox VM JSON-RPC endpoint
	URL string `mapstructure:"URL"`
	// TraceStateDiffs enables debug_traceCall with the prestate tracer in diff mode
	// to measure the storage slots written by the tx. If disabled no pubdata is reported
	TraceStateDiffs bool `mapstructure:"TraceStateDiffs"`
}
