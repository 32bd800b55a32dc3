// Package database opens the relational store, migrates the schema and seeds
// reference data.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	// Registers the pgx database/sql driver used by gorm's postgres dialector.
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yana-hris/DevJobsAPI/internal/config"
	"github.com/yana-hris/DevJobsAPI/internal/model"
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// DBinstanceStruct wraps the gorm handle together with the pool underneath it.
type DBinstanceStruct struct {
	*gorm.DB
	Config *DBConfig
	sqlDB  *sql.DB
}

// DBConfig holds the configuration parameters for connecting to a database.
type DBConfig struct {
	Host      string
	Port      string
	User      string
	Password  string
	DBName    string
	Constr    string
	useConstr bool
}

// NewDBConfig builds connection parameters from the loaded application config.
func NewDBConfig(cfg *config.Config) *DBConfig {
	return &DBConfig{
		Host:      cfg.DBHost,
		Port:      cfg.DBPort,
		User:      cfg.DBUser,
		Password:  cfg.DBPassword,
		DBName:    cfg.DBName,
		Constr:    cfg.ConnectionStr,
		useConstr: cfg.UseConnectionStr,
	}
}

func (d *DBConfig) getDsn() (string, error) {
	if d.useConstr {
		if d.Constr == "" {
			return "", errors.New("DB_CONNECTION_STR is empty")
		}
		return d.Constr, nil
	}
	if d.Host == "" || d.Port == "" || d.User == "" || d.Password == "" || d.DBName == "" {
		return "", errors.New("database configuration is incomplete")
	}
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: "sslmode=disable",
	}
	return dsn.String(), nil
}

func gormConfig() *gorm.Config {
	level := logger.Warn
	if gin.IsDebugging() {
		level = logger.Info
	}
	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  level,
				IgnoreRecordNotFoundError: true,
			},
		),
	}
}

// newInstance resolves the pool behind gdb and migrates the schema.
func newInstance(gdb *gorm.DB, cfg *DBConfig, tune func(*sql.DB)) (*DBinstanceStruct, error) {
	raw, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	tune(raw)

	db := &DBinstanceStruct{DB: gdb, Config: cfg, sqlDB: raw}
	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// NewDBInstance opens a PostgreSQL connection and migrates the schema.
// Seeding is left to the caller, see Seed.
func NewDBInstance(config *DBConfig) (*DBinstanceStruct, error) {
	connStr, err := config.getDsn()
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(postgres.Open(connStr), gormConfig())
	if err != nil {
		return nil, err
	}

	return newInstance(gdb, config, func(raw *sql.DB) {
		raw.SetMaxOpenConns(maxOpenConns)
		raw.SetMaxIdleConns(maxIdleConns)
		raw.SetConnMaxLifetime(connMaxLifetime)
	})
}

// Raw returns the underlying connection pool.
func (d *DBinstanceStruct) Raw() *sql.DB {
	return d.sqlDB
}

// Migrate creates or updates every table of the schema.
func (d *DBinstanceStruct) Migrate() error {
	return d.AutoMigrate(model.Tables()...)
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status          string `json:"status"`
	Message         string `json:"message,omitempty"`
	Error           string `json:"error,omitempty"`
	OpenConnections int    `json:"openConnections"`
	InUse           int    `json:"inUse"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"waitCount"`
	WaitDuration    string `json:"waitDuration"`
}

// Up reports whether the store answered the ping.
func (s HealthStatus) Up() bool {
	return s.Status == "up"
}

// Health pings the store, giving it at most one second, and reports pool statistics.
func (d *DBinstanceStruct) Health(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if err := d.sqlDB.PingContext(ctx); err != nil {
		log.Printf("db down: %v", err)
		return HealthStatus{Status: "down", Error: fmt.Sprintf("db down: %v", err)}
	}

	st := d.sqlDB.Stats()
	status := HealthStatus{
		Status:          "up",
		Message:         "It's healthy",
		OpenConnections: st.OpenConnections,
		InUse:           st.InUse,
		Idle:            st.Idle,
		WaitCount:       st.WaitCount,
		WaitDuration:    st.WaitDuration.String(),
	}
	switch {
	case st.WaitCount > 1000:
		status.Message = "The database has a high number of wait events, indicating potential bottlenecks."
	case st.OpenConnections > maxOpenConns*4/5:
		status.Message = "The database is experiencing heavy load."
	}
	return status
}

// Close closes the connection pool.
func (d *DBinstanceStruct) Close() error {
	if d.Config != nil {
		log.Printf("Disconnected from database: %s", d.Config.DBName)
	}
	return d.sqlDB.Close()
}

// DropAllTables removes every table of the current schema, dependents included.
func (d *DBinstanceStruct) DropAllTables(ctx context.Context) error {
	m := d.WithContext(ctx).Migrator()
	tables, err := m.GetTables()
	if err != nil {
		return err
	}
	for _, table := range tables {
		if err := m.DropTable(table); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}
