// Package testutil provides a migrated SQLite store for tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/isaacwassouf/cricket-betting-service/config"
	"github.com/isaacwassouf/cricket-betting-service/consts"
	"github.com/isaacwassouf/cricket-betting-service/database"
	"github.com/isaacwassouf/cricket-betting-service/modules"
)

// NewDB opens a fresh SQLite database in a temporary directory and creates
// the service tables.
func NewDB(t *testing.T) *database.BettingServiceDB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "betting.db") + "?_busy_timeout=5000&_foreign_keys=on"
	db, err := database.New(consts.SQLITE, dsn)
	if err != nil {
		t.Fatalf("failed to open the test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate the test database: %v", err)
	}
	return db
}

// Config returns a valid configuration for tests, hashing at bcrypt.MinCost.
func Config() *config.Config {
	return &config.Config{
		DBDriver:   consts.SQLITE,
		BcryptCost: bcrypt.MinCost,
		UPIPayeeID: "merchant@upi",
		QRSize:     128,
	}
}

// NewService returns a BettingService backed by a fresh test database.
func NewService(t *testing.T) *modules.BettingService {
	t.Helper()

	svc, err := modules.NewBettingService(NewDB(t), Config())
	if err != nil {
		t.Fatalf("failed to build the betting service: %v", err)
	}
	return svc
}
