package configs

import (
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	maxRetries = 10
	retryDelay = 5 * time.Second
)

// GormConfig leaves references between tables unconstrained; rows are deleted without cascade.
func GormConfig() *gorm.Config {
	return &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true}
}

// Dialector picks the gorm driver for DB_DRIVER.
func Dialector(env ENV) (gorm.Dialector, string, error) {
	switch env.DBDriver {
	case "", "mysql":
		cfg := gomysql.NewConfig()
		cfg.User = env.DBUser
		cfg.Passwd = env.DBPassword
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(env.DBHost, env.DBPort)
		cfg.DBName = env.DBName
		cfg.ParseTime = true
		cfg.Loc = time.Local
		cfg.Params = map[string]string{"charset": "utf8mb4"}
		dsn := cfg.FormatDSN()
		return mysql.Open(dsn), redact(dsn, env.DBPassword), nil
	case "postgres", "postgresql":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			env.DBHost, env.DBUser, env.DBPassword, env.DBName, env.DBPort, env.DBSSLMode,
		)
		return postgres.Open(dsn), redact(dsn, env.DBPassword), nil
	case "sqlite", "sqlite3":
		return sqlite.Open(env.DBPath), env.DBPath, nil
	default:
		return nil, "", fmt.Errorf("unsupported DB_DRIVER %q", env.DBDriver)
	}
}

func OpenConnection(env ENV) (*gorm.DB, error) {
	dialector, safeDSN, err := Dialector(env)
	if err != nil {
		return nil, err
	}

	for i := 0; i < maxRetries; i++ {
		log.Printf("Attempting to connect to %s database (Attempt %d/%d) using DSN: %s", env.DBDriver, i+1, maxRetries, safeDSN)
		db, err := gorm.Open(dialector, GormConfig())
		if err == nil {

			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					log.Println("✅ Database connection successful!")
					return db, nil
				}
			}

			log.Printf("❌ Failed to ping database: %v. Retrying in %v...", pingErr, retryDelay)
		} else {
			log.Printf("❌ Failed to open GORM connection: %v. Retrying in %v...", err, retryDelay)
		}

		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to the database after %d retries, last DSN used: %s", maxRetries, safeDSN)
}

func redact(dsn, password string) string {
	if password == "" {
		return dsn
	}
	return strings.ReplaceAll(dsn, password, "*****")
}
