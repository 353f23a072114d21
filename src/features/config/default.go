package config

// EnvConfigPath overrides the location of the configuration file.
const EnvConfigPath = "AUDIORENAME_CONFIG"

// DefaultFileName is looked up in the working directory when EnvConfigPath is unset.
const DefaultFileName = "audiorename.yaml"

// createDefaultConfig creates a new Config with sensible default values
func createDefaultConfig() *Config {
	return &Config{
		Logger: Logger{
			Enabled: true,
			Level:   "info",
			Format:  "text",
		},
		Rename: Rename{
			DryRun:  false,
			Asciify: false,
		},
		Metrics: Metrics{
			TextfilePath: "",
		},
	}
}
