package database

import (
	"context"
	"fmt"
	"log"

	"github.com/isaacwassouf/cricket-betting-service/consts"
)

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS user_register (
		id INT AUTO_INCREMENT PRIMARY KEY,
		full_name VARCHAR(100) NOT NULL,
		date_of_birth VARCHAR(20) NOT NULL,
		email VARCHAR(100) NOT NULL,
		hashed_password VARCHAR(255) NOT NULL,
		phone VARCHAR(15) NOT NULL,
		UNIQUE KEY uq_user_register_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS admin (
		id INT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(100) NOT NULL,
		hashed_password VARCHAR(255) NOT NULL,
		UNIQUE KEY uq_admin_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS cricket_match (
		id INT AUTO_INCREMENT PRIMARY KEY,
		match_name VARCHAR(100) NOT NULL,
		team_1 VARCHAR(255) NOT NULL,
		team_2 VARCHAR(255) NOT NULL,
		match_date DATETIME NOT NULL,
		venue VARCHAR(255) NOT NULL,
		team_1_players JSON NOT NULL,
		team_2_players JSON NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payment (
		id INT AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(100) NOT NULL,
		name VARCHAR(100) NOT NULL,
		mobile VARCHAR(15) NOT NULL,
		country VARCHAR(255) NOT NULL,
		state VARCHAR(255) NOT NULL,
		city VARCHAR(255) NOT NULL,
		amount BIGINT NOT NULL
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS user_register (
		id SERIAL PRIMARY KEY,
		full_name VARCHAR(100) NOT NULL,
		date_of_birth VARCHAR(20) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		hashed_password VARCHAR(255) NOT NULL,
		phone VARCHAR(15) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS admin (
		id SERIAL PRIMARY KEY,
		email VARCHAR(100) NOT NULL UNIQUE,
		hashed_password VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cricket_match (
		id SERIAL PRIMARY KEY,
		match_name VARCHAR(100) NOT NULL,
		team_1 VARCHAR(255) NOT NULL,
		team_2 VARCHAR(255) NOT NULL,
		match_date TIMESTAMP NOT NULL,
		venue VARCHAR(255) NOT NULL,
		team_1_players JSONB NOT NULL,
		team_2_players JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payment (
		id SERIAL PRIMARY KEY,
		email VARCHAR(100) NOT NULL,
		name VARCHAR(100) NOT NULL,
		mobile VARCHAR(15) NOT NULL,
		country VARCHAR(255) NOT NULL,
		state VARCHAR(255) NOT NULL,
		city VARCHAR(255) NOT NULL,
		amount BIGINT NOT NULL
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS user_register (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		full_name TEXT NOT NULL,
		date_of_birth TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		phone TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS admin (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS cricket_match (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		match_name TEXT NOT NULL,
		team_1 TEXT NOT NULL,
		team_2 TEXT NOT NULL,
		match_date DATETIME NOT NULL,
		venue TEXT NOT NULL,
		team_1_players TEXT NOT NULL,
		team_2_players TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payment (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL,
		name TEXT NOT NULL,
		mobile TEXT NOT NULL,
		country TEXT NOT NULL,
		state TEXT NOT NULL,
		city TEXT NOT NULL,
		amount INTEGER NOT NULL
	)`,
}

// Migrate creates the service tables when they do not exist yet. The unique
// email constraints are what make concurrent registrations safe.
func (d *BettingServiceDB) Migrate(ctx context.Context) error {
	var statements []string
	switch d.Driver {
	case consts.MYSQL:
		statements = mysqlSchema
	case consts.POSTGRES:
		statements = postgresSchema
	default:
		statements = sqliteSchema
	}

	for _, stmt := range statements {
		if _, err := d.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate the database: %w", err)
		}
	}
	log.Printf("database schema is up to date (%s)", d.Driver)
	return nil
}
