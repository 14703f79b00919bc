package workers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformBackup(t *testing.T) {
	tmp := t.TempDir()
	dbPath := filepath.Join(tmp, "restaurant.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("sqlite payload"), 0o644))

	backupDir := filepath.Join(tmp, "backups")
	require.NoError(t, performBackup(dbPath, backupDir))

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "backup_")

	copied, err := os.ReadFile(filepath.Join(backupDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, []byte("sqlite payload"), copied)
}

func TestPerformBackupMissingSource(t *testing.T) {
	tmp := t.TempDir()
	err := performBackup(filepath.Join(tmp, "nope.db"), filepath.Join(tmp, "backups"))
	assert.Error(t, err)
}

func TestCleanupOldBackups(t *testing.T) {
	dir := t.TempDir()

	oldFile := filepath.Join(dir, "backup_20240101_000000.db")
	freshFile := filepath.Join(dir, "backup_fresh.db")
	unrelated := filepath.Join(dir, "notes.txt")
	for _, f := range []string{oldFile, freshFile, unrelated} {
		require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))
	}

	stale := time.Now().AddDate(0, 0, -10)
	require.NoError(t, os.Chtimes(oldFile, stale, stale))
	require.NoError(t, os.Chtimes(unrelated, stale, stale))

	removed, err := cleanupOldBackups(dir, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(oldFile)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(freshFile)
	assert.NoError(t, err)
	// files without the backup prefix are never touched
	_, err = os.Stat(unrelated)
	assert.NoError(t, err)
}
