package config

// Supported database engines.
const (
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
)

// DB holds the database configuration settings.
type DB struct {
	Engine   string // sqlite, mysql or postgres
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	File     string // database file path, sqlite only
}
