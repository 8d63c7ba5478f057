// Package backup copies the input file aside before a run touches anything,
// so the original export can always be recovered.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Save copies src into backupsDir as backup_<timestamp>_<name> and returns
// the path of the copy. The directory is created on demand. A failed backup
// aborts the caller's run; processing never starts without one.
func Save(src, backupsDir string) (string, error) {
	if err := os.MkdirAll(backupsDir, 0o755); err != nil {
		return "", fmt.Errorf("création du dossier de sauvegarde: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("ouverture du fichier source: %w", err)
	}
	defer in.Close()

	stamp := time.Now().Format("20060102_150405")
	dst := filepath.Join(backupsDir, fmt.Sprintf("backup_%s_%s", stamp, filepath.Base(src)))

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("création de la sauvegarde: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("copie vers %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("fermeture de la sauvegarde: %w", err)
	}
	return dst, nil
}
