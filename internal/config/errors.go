package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrEmptyDBEngine error if config db.engine is empty.
	ErrEmptyDBEngine = errors.New("toml config db.engine can not be empty")

	// ErrUnknownDBEngine error if config db.engine is not one of sqlite, mysql or postgres.
	ErrUnknownDBEngine = errors.New("toml config db.engine must be sqlite, mysql or postgres")
)
