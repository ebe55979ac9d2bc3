package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"github.com/isaacwassouf/cricket-betting-service/consts"
	"github.com/isaacwassouf/cricket-betting-service/models"
)

type BettingServiceDB struct {
	DB     *sql.DB
	Driver string
}

// New opens and pings the store. Only MySQL, Postgres and SQLite are wired.
func New(driver, dsn string) (*BettingServiceDB, error) {
	switch driver {
	case consts.MYSQL, consts.POSTGRES, consts.SQLITE:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == consts.SQLITE {
		// sqlite serialises writers; a single connection avoids SQLITE_BUSY
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping the database: %w", err)
	}

	return &BettingServiceDB{DB: db, Driver: driver}, nil
}

func (d *BettingServiceDB) Close() error {
	return d.DB.Close()
}

func (d *BettingServiceDB) Ping(ctx context.Context) error {
	if err := d.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return nil
}

// Builder returns a squirrel statement builder using the driver's placeholders.
func (d *BettingServiceDB) Builder() sq.StatementBuilderType {
	if d.Driver == consts.POSTGRES {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// InsertID runs insert with runner and returns the generated id column.
func (d *BettingServiceDB) InsertID(ctx context.Context, runner sq.BaseRunner, insert sq.InsertBuilder) (int64, error) {
	if d.Driver == consts.POSTGRES {
		var id int64
		err := insert.Suffix("RETURNING id").RunWith(runner).QueryRowContext(ctx).Scan(&id)
		return id, err
	}

	result, err := insert.RunWith(runner).ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// IsUniqueViolation reports whether err is a unique constraint violation
// raised by any of the supported drivers.
func IsUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// Classify maps a driver error onto the service error taxonomy. Errors that
// already carry a taxonomy tag pass through unchanged.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case models.Kind(err) != "Internal":
		return err
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %v", models.ErrNotFound, err)
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %v", models.ErrDuplicateIdentity, err)
	default:
		return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
}
