package helpers

import (
	"time"

	"github.com/yigit/admission/internal/pkg/logger"
)

// ParseDuration parses a configured duration such as "10s". Empty or
// malformed values fall back to def.
func ParseDuration(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Err(err).Str("value", value).Dur("default", def).Msg("Invalid duration, using default")
		return def
	}
	return d
}
