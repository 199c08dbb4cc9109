package mysql

import (
	"fmt"
	"time"
)

// Config holds MySQL connection and pool settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string

	// Connection pool settings.
	// See https://github.com/go-sql-driver/mysql#important-settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// GORM log level: "silent", "error", "warn", "info".
	LogLevel string
}

// DSN builds the driver connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.DBName,
	)
}
