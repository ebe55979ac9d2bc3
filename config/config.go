package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/isaacwassouf/cricket-betting-service/consts"
)

// Accepted bcrypt work factors. Lower costs are only for tests, which build
// their Config directly.
const (
	MinBcryptCost = 10
	MaxBcryptCost = 12
)

type Config struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8000"`
	GRPCAddr string `envconfig:"GRPC_ADDR" default:":50051"`

	DBDriver    string `envconfig:"DB_DRIVER" default:"mysql"`
	DatabaseDSN string `envconfig:"DATABASE_DSN"`
	AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"true"`

	MySQLUser     string `envconfig:"MYSQL_USER" default:"root"`
	MySQLPassword string `envconfig:"MYSQL_PASSWORD"`
	MySQLHost     string `envconfig:"MYSQL_HOST" default:"localhost"`
	MySQLPort     string `envconfig:"MYSQL_PORT" default:"3306"`
	MySQLDatabase string `envconfig:"MYSQL_DATABASE" default:"betting"`

	BcryptCost int    `envconfig:"BCRYPT_COST" default:"10"`
	UPIPayeeID string `envconfig:"UPI_PAYEE_ID" default:"merchant@upi"`
	QRSize     int    `envconfig:"QR_SIZE" default:"256"`
}

// Load reads the optional .env file and then the process environment.
func Load() (*Config, error) {
	// the .env file is optional, the environment may be populated by the orchestrator
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process the environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case consts.MYSQL:
	case consts.POSTGRES, consts.SQLITE:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for driver %q", c.DBDriver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.BcryptCost < MinBcryptCost || c.BcryptCost > MaxBcryptCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", MinBcryptCost, MaxBcryptCost)
	}
	if c.UPIPayeeID == "" {
		return fmt.Errorf("UPI_PAYEE_ID must not be empty")
	}
	if c.QRSize <= 0 {
		return fmt.Errorf("QR_SIZE must be positive")
	}
	return nil
}

// DSN returns the data source name for the configured driver. For MySQL an
// explicit DATABASE_DSN wins over the MYSQL_* variables.
func (c *Config) DSN() string {
	if c.DatabaseDSN != "" || c.DBDriver != consts.MYSQL {
		return c.DatabaseDSN
	}
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true",
		c.MySQLUser, c.MySQLPassword, c.MySQLHost, c.MySQLPort, c.MySQLDatabase,
	)
}
