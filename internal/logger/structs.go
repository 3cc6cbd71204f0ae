package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `mapstructure:"enabled"`
	UseConsoleWriter bool `mapstructure:"useconsolewriter"`
}

// RotatedFile describes one lumberjack managed file.
type RotatedFile struct {
	Name       string `mapstructure:"name"`
	MaxSize    int    `mapstructure:"maxsize"` // megabytes
	MaxBackups int    `mapstructure:"maxbackups"`
	MaxAge     int    `mapstructure:"maxage"` // days
}

// LogFile implements a file based logger split by level.
type LogFile struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`

	Access RotatedFile `mapstructure:"access"`
	Error  RotatedFile `mapstructure:"error"`
	Info   RotatedFile `mapstructure:"info"`
	Trace  RotatedFile `mapstructure:"trace"`
	Warn   RotatedFile `mapstructure:"warn"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string `mapstructure:"level"` // trace, debug, info, warn, error.

	// EnableAccessLogToConsole writes one line per request to the console.
	// Console.Enabled still has to be true.
	EnableAccessLogToConsole bool `mapstructure:"accesslogtoconsole"`
	ReportCaller             bool `mapstructure:"reportcaller"`
	DisableCheckAlive        bool `mapstructure:"disablecheckalive"` // do not log /checkalive calls

	AppName     string `mapstructure:"appname"`
	ServiceName string `mapstructure:"servicename"`

	Console Console `mapstructure:"console"`
	File    LogFile `mapstructure:"file"`
}
