package types

// CleanupConfig is the YAML policy document supplied by the operator.
type CleanupConfig struct {
	ProtectedPaths     []string `yaml:"protected_paths"`
	TimeThresholdDays  int      `yaml:"time_threshold_days"`
	CleanupTargetPaths []string `yaml:"cleanup_target_paths"`
	ChunkSize          int      `yaml:"chunk_size"`
	LogLevel           string   `yaml:"log_level"`
}

const DefaultTimeThresholdDays = 730
