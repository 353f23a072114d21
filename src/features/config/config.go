package config

// Config holds the application configuration.
type Config struct {
	Logger  Logger  `yaml:"logger"`
	Rename  Rename  `yaml:"rename"`
	Metrics Metrics `yaml:"metrics"`
}

// Logger holds the configuration for the app logging
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" validate:"oneof=debug info warn error"`
	Format  string `yaml:"format" validate:"oneof=text json logfmt"`
}

// Rename holds the knobs of the rename pipeline.
type Rename struct {
	DryRun  bool `yaml:"dry_run"` // Decide and report, but never touch the filesystem
	Asciify bool `yaml:"asciify"` // Transliterate titles to ASCII before building names
}

// Metrics holds the configuration for the run metrics export
type Metrics struct {
	TextfilePath string `yaml:"textfile_path,omitempty" validate:"omitempty,endswith=.prom"`
}
