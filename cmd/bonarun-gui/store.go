//go:build !js

package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bonarun/internal/config"
	"github.com/vovakirdan/bonarun/internal/storage"
)

// openStore opens the scores database, logging instead of failing.
func openStore(logger *log.Logger) scoreStore {
	path := flagDBPath
	if path == "" {
		var err error
		if path, err = config.DataFile("scores.db"); err != nil {
			logger.Warn("no scores database", "error", err)
			return nil
		}
	}
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database", "path", path, "error", err)
		return nil
	}
	return store
}
