package config

// Supported database engines.
const (
	EnginePostgres = "postgres"
	EngineMySQL    = "mysql"
	EngineSQLite   = "sqlite"
)

// DB holds the database configuration settings.
// URL wins over the discrete fields when set.
type DB struct {
	Engine   string `mapstructure:"engine"`
	URL      string `mapstructure:"url"`
	Extras   string `mapstructure:"extras"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name, or file path for sqlite
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int32  `mapstructure:"maxconns"`
	LogLevel string `mapstructure:"loglevel"` // gorm logger: silent, error, warn, info
}
