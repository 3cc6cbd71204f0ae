// Package dsn builds driver specific data source names from the database configuration.
package dsn

import (
	"fmt"
	"strings"

	"github.com/showcase-apps/showcase/internal/config"
)

const (
	defaultPostgresPort = 5432
	defaultMySQLPort    = 3306
	defaultMySQLExtras  = "charset=utf8mb4&parseTime=True&loc=UTC"
)

// Create builds the Data Source Name for the configured engine.
// A configured URL is returned unchanged.
func Create(db *config.DB) string {
	if db.URL != "" {
		return db.URL
	}

	switch db.Engine {
	case config.EngineMySQL:
		return mysql(db)
	case config.EngineSQLite:
		return sqlite(db)
	default:
		return postgres(db)
	}
}

func mysql(db *config.DB) string {
	port := db.Port
	if port == 0 {
		port = defaultMySQLPort
	}

	extras := db.Extras
	if extras == "" {
		extras = defaultMySQLExtras
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		db.User,
		db.Password,
		db.Host,
		port,
		db.Name,
		extras,
	)
}

func postgres(db *config.DB) string {
	port := db.Port
	if port == 0 {
		port = defaultPostgresPort
	}

	parts := []string{
		kv("host", db.Host),
		fmt.Sprintf("port=%d", port),
		kv("user", db.User),
		kv("password", db.Password),
		kv("dbname", db.Name),
		kv("sslmode", db.SSLMode),
		db.Extras,
	}

	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}

	return strings.Join(out, " ")
}

func sqlite(db *config.DB) string {
	if db.Name == "" {
		return "file::memory:?cache=shared"
	}

	if db.Extras == "" {
		return db.Name
	}

	return db.Name + "?" + db.Extras
}

// kv renders a libpq keyword/value pair, quoting values with spaces or quotes.
func kv(key, value string) string {
	if value == "" {
		return ""
	}

	if strings.ContainsAny(value, ` '\`) {
		value = "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value) + "'"
	}

	return key + "=" + value
}
