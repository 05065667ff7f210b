package main

import (
	"github.com/sirupsen/logrus" // Logrus for structured logging

	"trivia_backend/internal/config" // Custom import path (Config)
	"trivia_backend/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	conn, err := db.Open(cfg) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	if err := db.Migrate(conn); err != nil {
		logrus.Fatal(err) // Log fatal error if migration fails
	}
}
