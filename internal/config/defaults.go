package config

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Divider: DividerConfig{
			Thickness: 96,
			Insets:    24,
			TouchSlop: 8,
		},
		Display: DisplayConfig{
			Width:  1200,
			Height: 800,
		},
		Snap: SnapConfig{
			FixedRatio:         0.38,
			MinFlingVelocity:   400,
			MinDismissVelocity: 600,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		GrowRecents: false,
	}
}

// setDefaults registers the default values with viper so partial config
// files only override what they mention.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("divider.thickness", defaults.Divider.Thickness)
	m.viper.SetDefault("divider.insets", defaults.Divider.Insets)
	m.viper.SetDefault("divider.touch_slop", defaults.Divider.TouchSlop)

	m.viper.SetDefault("display.width", defaults.Display.Width)
	m.viper.SetDefault("display.height", defaults.Display.Height)

	m.viper.SetDefault("snap.fixed_ratio", defaults.Snap.FixedRatio)
	m.viper.SetDefault("snap.min_fling_velocity", defaults.Snap.MinFlingVelocity)
	m.viper.SetDefault("snap.min_dismiss_velocity", defaults.Snap.MinDismissVelocity)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("grow_recents", defaults.GrowRecents)
}
