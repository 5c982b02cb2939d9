package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/youyaku/data/db/cases.db"
	}
	if cfg.Storage.IndexPath == "" {
		cfg.Storage.IndexPath = "/usr/local/var/youyaku/data/indices/summaries"
	}
	if cfg.Extraction.MonetaryWindow == 0 {
		cfg.Extraction.MonetaryWindow = 50
	}
	if cfg.Extraction.PartyWindow == 0 {
		cfg.Extraction.PartyWindow = 20
	}
	if cfg.Pipeline.TopK == 0 {
		cfg.Pipeline.TopK = 3
	}
	if cfg.Pipeline.MaxLength == 0 {
		cfg.Pipeline.MaxLength = 150
	}
	if cfg.Pipeline.MinLength == 0 {
		cfg.Pipeline.MinLength = 50
	}
	if cfg.Pipeline.NumBeams == 0 {
		cfg.Pipeline.NumBeams = 4
	}
	if cfg.Pipeline.LengthPenalty == 0 {
		cfg.Pipeline.LengthPenalty = 2.0
	}
	if cfg.Pipeline.Dimensions == 0 {
		cfg.Pipeline.Dimensions = 384
	}
	if cfg.Pipeline.MaxTokens == 0 {
		cfg.Pipeline.MaxTokens = 256
	}
}
