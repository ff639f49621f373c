package config

const (
	defaultLogDir      = "~/.local/share/open-wacz/logs"
	defaultHistoryPath = "~/.local/share/open-wacz/history.db"
	defaultNamePrefix  = "Linkra"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Harvest: Harvest{
			NamePrefix: defaultNamePrefix,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
