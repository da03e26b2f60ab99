package main

import (
	"net/url"
	"os"

	"github.com/osse101/BrandishRPG_Go/internal/database"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// databaseURL prefers DB_URL and otherwise assembles one from the DB_* variables
func databaseURL() string {
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		return dbURL
	}
	return database.EnvConnString(getEnv("DB_NAME", appName))
}

// redactPassword masks the password of a connection string for display
func redactPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return connStr
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
