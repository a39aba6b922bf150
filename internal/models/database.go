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

type LedgerContext string

const (
	DBContextURL LedgerContext = "ledger-backend-url"
)

// Connect opens the SQLite database at path, migrates it and configures the connection pool.
func Connect(path string) error {
	db, err := open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)))
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// SQLite allows one writer. With a single connection, every transaction
	// runs alone, which also serializes the order assignment of new items.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	DB = db
	return nil
}

// ConnectPostgres opens a PostgreSQL database with the DSN and migrates it.
func ConnectPostgres(dsn string) error {
	db, err := open(postgres.Open(dsn))
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	DB = db
	return nil
}

func open(dialector gorm.Dialector) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func registerCallbacks(db *gorm.DB) error {
	callbacks := []struct {
		register func(string, func(*gorm.DB)) error
		name     string
		fn       func(*gorm.DB)
	}{
		{db.Callback().Query().After("*").Register, "ledger:after_query", queryCallback},
		{db.Callback().Query().After("*").Register, "ledger:after_query_general", generalCallback},
		{db.Callback().Create().After("*").Register, "ledger:after_create", createUpdateCallback},
		{db.Callback().Create().After("*").Register, "ledger:after_create_general", generalCallback},
		{db.Callback().Update().After("*").Register, "ledger:after_update", createUpdateCallback},
		{db.Callback().Update().After("*").Register, "ledger:after_update_general", generalCallback},
		{db.Callback().Delete().After("*").Register, "ledger:after_delete_general", generalCallback},
		{db.Callback().Row().After("*").Register, "ledger:after_row_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.register(c.name, c.fn); err != nil {
			return err
		}
	}

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Remove plural "s"
		name = regexp.MustCompile("s$").ReplaceAllString(name, "")

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

	// One month per user, year and month
	if strings.Contains(msg, "UNIQUE constraint failed: months.user_id, months.year, months.month") || strings.Contains(msg, "idx_month_user_period") {
		db.Error = ErrMonthExists
		return
	}

	// Orders are unique per month and kind
	if (strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, ".sort_order")) || strings.Contains(msg, "_order_unique") {
		db.Error = ErrOrderNotUnique
		return
	}

	if strings.Contains(msg, "CHECK constraint failed: month_valid") || strings.Contains(msg, "\"month_valid\"") {
		db.Error = ErrMonthOutOfRange
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

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Month{}, Income{}, Expense{}, Investment{}, MiscExpense{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	// Orders of user-managed items are unique per month. The index names are
	// global, so they are created here instead of on the shared Item struct.
	// Computed expenses use reserved orders and are excluded.
	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS incomes_order_unique ON incomes (month_id, sort_order)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS investments_order_unique ON investments (month_id, sort_order)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS misc_expenses_order_unique ON misc_expenses (month_id, sort_order)`,
		fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS expenses_order_unique ON expenses (month_id, sort_order) WHERE type = '%s'`, ExpenseStandard),
	}

	for _, index := range indexes {
		err = db.Exec(index).Error
		if err != nil {
			return fmt.Errorf("error creating index: %w", err)
		}
	}

	return nil
}
