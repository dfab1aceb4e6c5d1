package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Table names, as provisioned by AutoMigrateModels.
const (
	TablePerson      = "Person"
	TableSkill       = "Skill"
	TablePersonSkill = "PersonSkill"
	TableHardware    = "Hardware"
)

var requiredTables = []string{TablePerson, TableSkill, TablePersonSkill, TableHardware}

// Querier is satisfied by both *sql.DB and *sql.Tx, so every statement helper
// can run inside the import transaction.
type Querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// InitDB opens the SQLite store. It never creates tables; provisioning is done
// by AutoMigrateModels.
func InitDB(dataSourceName string) (*sql.DB, error) {
	dsn := dataSourceName
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// one writer, one session
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", dataSourceName, err)
	}

	_, err = db.Exec("PRAGMA journal_mode=WAL;")
	if err != nil {
		log.Printf("warning: failed to set WAL mode: %v", err)
	}

	log.Println("database opened at", dataSourceName)
	return db, nil
}

// CheckSchema returns an error naming the first table that has not been
// provisioned.
func CheckSchema(db Querier) error {
	for _, table := range requiredTables {
		queryBuilder := psql.Select("name").
			From("sqlite_master").
			Where(sq.Eq{"type": "table", "name": table}).
			Limit(1)

		sqlStr, args, err := queryBuilder.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build SQL for CheckSchema: %w", err)
		}

		var name string
		err = db.QueryRow(sqlStr, args...).Scan(&name)
		if err == sql.ErrNoRows {
			return fmt.Errorf("table %s does not exist, run the migrate command first", table)
		}
		if err != nil {
			return fmt.Errorf("failed to look up table %s: %w", table, err)
		}
	}
	return nil
}
