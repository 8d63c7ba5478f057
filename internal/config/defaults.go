package config

const (
	defaultBackupsDir = "~/.local/share/doublons/backups"
	defaultExportsDir = "~/.local/share/doublons/exports"
	defaultLogDir     = "~/.local/share/doublons/logs"
	defaultEncoding   = "utf-8"
	defaultSeparator  = ","
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			BackupsDir: defaultBackupsDir,
			ExportsDir: defaultExportsDir,
			LogDir:     defaultLogDir,
		},
		Input: Input{
			Encoding:  defaultEncoding,
			Separator: defaultSeparator,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Reports: Reports{
			HTML: true,
			Text: true,
		},
	}
}
