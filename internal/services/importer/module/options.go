package module

import (
	"trendboard/internal/platform/config"
)

// Options holds configuration options for the importer service
type Options struct {
	BatchSize int
	Year      int
}

// FromConfig reads the importer options from config with CORE_IMPORT_ prefix
func FromConfig(cfg config.Conf) Options {
	im := cfg.Prefix("CORE_IMPORT_")
	return Options{
		BatchSize: im.MayInt("BATCH_SIZE", 50),
		Year:      im.MayInt("YEAR", 0),
	}
}
