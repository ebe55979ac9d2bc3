package database_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"

	"github.com/isaacwassouf/cricket-betting-service/consts"
	"github.com/isaacwassouf/cricket-betting-service/database"
	"github.com/isaacwassouf/cricket-betting-service/models"
	"github.com/isaacwassouf/cricket-betting-service/testutil"
)

func TestNewRejectsUnknownDriver(t *testing.T) {
	if _, err := database.New("oracle", "whatever"); err == nil {
		t.Fatal("New() should reject an unsupported driver")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
}

func TestBuilderPlaceholders(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{driver: consts.MYSQL, want: "SELECT id FROM admin WHERE email = ?"},
		{driver: consts.SQLITE, want: "SELECT id FROM admin WHERE email = ?"},
		{driver: consts.POSTGRES, want: "SELECT id FROM admin WHERE email = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			db := &database.BettingServiceDB{Driver: tt.driver}
			query, _, err := db.Builder().Select("id").From("admin").Where("email = ?", "a@x.io").ToSql()
			if err != nil {
				t.Fatal(err)
			}
			if query != tt.want {
				t.Errorf("query = %q, want %q", query, tt.want)
			}
		})
	}
}

func TestUniqueViolationOnSQLite(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	insert := db.Builder().Insert(consts.ADMINS_TABLE).
		Columns("email", "hashed_password").
		Values("root@x.io", "hash")

	id, err := db.InsertID(ctx, db.DB, insert)
	if err != nil {
		t.Fatalf("InsertID() error = %v", err)
	}
	if id != 1 {
		t.Errorf("InsertID() = %d, want 1", id)
	}

	_, err = db.InsertID(ctx, db.DB, insert)
	if !database.IsUniqueViolation(err) {
		t.Fatalf("IsUniqueViolation(%v) = false", err)
	}
	if !errors.Is(database.Classify(err), models.ErrDuplicateIdentity) {
		t.Errorf("Classify(%v) is not ErrDuplicateIdentity", err)
	}
}

func TestIsUniqueViolationAcrossDrivers(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "mysql duplicate", err: &mysql.MySQLError{Number: 1062}, want: true},
		{name: "mysql other", err: &mysql.MySQLError{Number: 1045}},
		{name: "postgres duplicate", err: fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), want: true},
		{name: "postgres other", err: &pq.Error{Code: "23503"}},
		{name: "plain", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := database.IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: fmt.Errorf("payment 3: %w", sql.ErrNoRows), want: models.ErrNotFound},
		{name: "tagged passes through", err: fmt.Errorf("%w: amount", models.ErrValidation), want: models.ErrValidation},
		{name: "driver failure", err: errors.New("connection refused"), want: models.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := database.Classify(tt.err); !errors.Is(got, tt.want) {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}

	if database.Classify(nil) != nil {
		t.Error("Classify(nil) should be nil")
	}
}

func TestPing(t *testing.T) {
	db := testutil.NewDB(t)
	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	db.Close()
	if err := db.Ping(context.Background()); !errors.Is(err, models.ErrStoreUnavailable) {
		t.Errorf("Ping() after Close error = %v, want ErrStoreUnavailable", err)
	}
}
