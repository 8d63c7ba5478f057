// Package runlock serializes processing runs against one export tree.
//
// Two concurrent runs would race on the timestamped export directory name
// and interleave their artifacts; an advisory file lock in the exports root
// turns that into a clean, explained refusal.
package runlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another run already holds the export lock.
var ErrLocked = errors.New("un autre traitement est déjà en cours sur ce dossier d'exports")

const lockFileName = ".doublons.lock"

// Lock holds the advisory lock for a run.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the export lock without blocking. It creates exportsDir when
// needed so a first run on a fresh machine succeeds.
func Acquire(exportsDir string) (*Lock, error) {
	if err := os.MkdirAll(exportsDir, 0o755); err != nil {
		return nil, fmt.Errorf("création du dossier d'exports: %w", err)
	}
	fl := flock.New(filepath.Join(exportsDir, lockFileName))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("verrouillage de %s: %w", fl.Path(), err)
	}
	if !locked {
		return nil, ErrLocked
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock. Safe on a nil lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
