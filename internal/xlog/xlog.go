// Package xlog centralizes leveled logging for every package in this
// module behind a single github.com/op/go-logging backend, so board, engine,
// game, storage, and book loaders all format and filter consistently.
package xlog

import (
	"os"

	"github.com/op/go-logging"
)

var backendConfigured bool

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
)

// Init installs the shared backend at the given level, e.g. "DEBUG",
// "INFO", "WARNING", "ERROR". Safe to call multiple times; only the
// first call takes effect. Packages that never call Init still get a
// working logger at the go-logging default level (NOTICE) by calling
// MustGetLogger directly.
func Init(level string) {
	if backendConfigured {
		return
	}
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.NOTICE
	}
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	backendConfigured = true
}

// MustGetLogger returns the named module's logger, matching
// github.com/op/go-logging's own naming convention (board, engine, game,
// storage, book, config).
func MustGetLogger(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}
