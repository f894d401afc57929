package sorter

import (
	"chest-sorter/core/reconcile"
)

// Config holds the process-wide sorter settings.
type Config struct {
	// Mode is the default ordering policy (alpha, count, type).
	Mode string `mapstructure:"mode" default:"alpha"`
	// Verbose enables per-sort log lines.
	Verbose bool `mapstructure:"verbose" default:"true"`
	// SortWithoutSneak lets interactions trigger a sort without sneaking.
	SortWithoutSneak bool `mapstructure:"sort_without_sneak" default:"false"`
}

// ParsedMode returns the configured mode, falling back to alpha when it is not recognised.
func (c Config) ParsedMode() reconcile.Mode {
	m, err := reconcile.ParseMode(c.Mode)
	if err != nil {
		return reconcile.ModeAlpha
	}
	return m
}
