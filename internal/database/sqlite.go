package database

import (
	"database/sql"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLiteInstance opens a private in-memory SQLite database with foreign keys
// enforced and the schema migrated. name isolates databases from each other,
// tests usually pass t.Name().
func NewSQLiteInstance(name string) (*DBinstanceStruct, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}
	if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	// One connection keeps the shared in-memory database alive and avoids
	// table lock errors between connections.
	return newInstance(gdb, &DBConfig{DBName: name}, func(raw *sql.DB) {
		raw.SetMaxOpenConns(1)
	})
}
