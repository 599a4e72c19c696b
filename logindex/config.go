package logindex

// Config is the configuration of the log index storage
type Config struct {
	// DBPath path of the sqlite DB where the logs of the sealed batches are stored
	DBPath string `mapstructure:"DBPath"`
}
