package db

import (
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"lifedash/internal/config"
)

// BuildDSN assembles the MySQL DSN from conf. Extra DbParams are kept, but
// timestamps are always parsed and read as UTC.
func BuildDSN(conf *config.Config) (string, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s", conf.DbUser, conf.DbPassword, net.JoinHostPort(conf.DbHost, conf.DbPort), conf.DbName)
	if conf.DbParams != "" {
		dsn += "?" + conf.DbParams
	}

	parsed, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	parsed.ParseTime = true
	parsed.Loc = time.UTC
	return parsed.FormatDSN(), nil
}

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dsn, err := BuildDSN(conf)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect mysql %s:%s: %w", conf.DbHost, conf.DbPort, err)
	}

	if conf.DbMaxOpenConns > 0 {
		db.SetMaxOpenConns(conf.DbMaxOpenConns)
	}
	if conf.DbMaxIdleConns > 0 {
		db.SetMaxIdleConns(conf.DbMaxIdleConns)
	}
	if conf.DbConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(conf.DbConnMaxLifetime)
	}

	return db, nil
}
