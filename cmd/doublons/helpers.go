package main

import (
	"errors"
	"strings"

	"github.com/ybdn/DoublonsIDPP/internal/config"
)

// expandDir resolves a user-supplied directory argument to an absolute path.
func expandDir(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errors.New("un chemin de dossier est requis")
	}
	return config.ExpandPath(trimmed)
}
