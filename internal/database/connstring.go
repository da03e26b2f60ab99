package database

import (
	"cmp"
	"net/url"
	"os"
)

// ConnString assembles a postgres URL with escaped credentials
func ConnString(user, password, host, port, dbName string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     host + ":" + port,
		Path:     "/" + dbName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// EnvConnString builds a URL for dbName from DB_USER, DB_PASSWORD, DB_HOST
// and DB_PORT, defaulting to a local postgres superuser
func EnvConnString(dbName string) string {
	return ConnString(
		cmp.Or(os.Getenv("DB_USER"), DefaultUser),
		cmp.Or(os.Getenv("DB_PASSWORD"), DefaultPassword),
		cmp.Or(os.Getenv("DB_HOST"), DefaultHost),
		cmp.Or(os.Getenv("DB_PORT"), DefaultPort),
		dbName,
	)
}
