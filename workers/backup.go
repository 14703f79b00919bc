package workers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"yirestaurant/config"

	"github.com/rs/zerolog"
)

// StartBackup starts a loop that periodically copies the sqlite database
// file into the backup directory and prunes copies past retention. It is
// a no-op when backups are disabled or the store is not sqlite.
func StartBackup(cfg config.Configuration, log *zerolog.Logger) {
	if !cfg.Backup.Enabled || cfg.Database != "sqlite3" {
		return
	}

	interval := 24 * time.Hour
	if d, err := time.ParseDuration(cfg.Backup.Interval); err == nil && d > 0 {
		interval = d
	} else if err != nil {
		log.Warn().Err(err).Str("interval", cfg.Backup.Interval).Msg("bad backup interval, using 24h")
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := performBackup(cfg.DbPath, cfg.Backup.Dir); err != nil {
				log.Error().Err(err).Msg("backup failed")
				continue
			}
			removed, err := cleanupOldBackups(cfg.Backup.Dir, cfg.Backup.RetentionDays)
			if err != nil {
				log.Error().Err(err).Msg("backup cleanup failed")
			}
			log.Info().Int("removed", removed).Msg("backup done")
		}
	}()
}

func performBackup(dbPath, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create backup directory: %w", err)
	}

	src, err := os.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database file: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("backup_%s.db", time.Now().Format("20060102_150405"))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("create backup file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy database: %w", err)
	}
	return nil
}

func cleanupOldBackups(dir string, retentionDays int) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read backup directory: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "backup_") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, e.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
