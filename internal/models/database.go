package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type ContextKey string

const (
	DBContextURL ContextKey = "pockets-backend-url"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},

		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}
}

// Connect opens the SQLite database at dsn, migrates it and configures the
// connection pool.
func Connect(dsn string) error {
	config := gormConfig()

	// Migrate with foreign keys disabled since sqlite does not support
	// ALTER COLUMN. Tables are copied to a temporary table, then
	// dropped and recreated.
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return setup(db)
}

// ConnectPostgres opens the PostgreSQL database described by dsn and
// migrates it.
func ConnectPostgres(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return setup(db)
}

// setup registers the callbacks and sets DB.
func setup(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "pockets:after_query", queryCallback},
		{db.Callback().Query().After("*"), "pockets:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "pockets:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "pockets:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "pockets:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "pockets:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "pockets:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		err := c.processor.Register(c.name, c.fn)
		if err != nil {
			return err
		}
	}

	DB = db
	return nil
}

var pluralIes = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = pluralIes.ReplaceAllString(name, "y")
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	// sqlite names the table, postgres names the index
	if strings.Contains(msg, "UNIQUE constraint failed: profiles.") || strings.Contains(msg, "profile_name") {
		db.Error = ErrProfileNameNotUnique
	}

	if strings.Contains(msg, "UNIQUE constraint failed: debts.") || strings.Contains(msg, "debt_name_profile") {
		db.Error = ErrDebtNameNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in database/sql
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Profile{}, Debt{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
