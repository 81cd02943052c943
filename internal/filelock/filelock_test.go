package filelock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockUnlock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "report.txt.lock")

	lock := New(lockPath)
	require.NoError(t, lock.Lock())
	require.NoError(t, lock.Unlock())
}

func TestTryLockContention(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "report.txt.lock")

	first := New(lockPath)
	require.NoError(t, first.Lock())
	defer first.Unlock()

	second := New(lockPath)
	acquired, err := second.TryLock()
	require.NoError(t, err)
	assert.False(t, acquired, "second lock should not be acquired while first is held")
}

func TestAtomicWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	require.NoError(t, AtomicWrite(path, []byte("first\n")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(data))

	// Overwrites existing content
	require.NoError(t, AtomicWrite(path, []byte("second\n")))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestAtomicWriteCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "report.txt")

	require.NoError(t, AtomicWrite(path, []byte("data")))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestAtomicWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	require.NoError(t, AtomicWrite(path, []byte("data")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "report.txt", entries[0].Name())
}

func TestLockAndWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")

	require.NoError(t, LockAndWrite(path, []byte("locked write\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "locked write\n", string(data))

	// The lock file is cleaned up afterwards
	_, err = os.Stat(path + ".lock")
	assert.True(t, os.IsNotExist(err), "lock file should be removed")
}
