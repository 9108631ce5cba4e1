package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesJSON(t *testing.T) {
	root := t.TempDir()
	cleanup, err := Setup(Config{Root: root})
	require.NoError(t, err)

	require.NoError(t, IsReady())
	assert.Equal(t, filepath.Join(root, ".refsheet", "logs", "refsheet.log"), Path())

	L().Info("ruler.generated", "path", "rulers/x.svg")
	L().Debug("hidden")
	require.NoError(t, cleanup())

	f, err := os.Open(filepath.Join(root, ".refsheet", "logs", "refsheet.log"))
	require.NoError(t, err)
	defer f.Close()

	var msgs []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		msgs = append(msgs, rec["msg"].(string))
	}
	assert.Equal(t, []string{"logger.initialized", "ruler.generated"}, msgs)
}

func TestCleanupRestoresDiscard(t *testing.T) {
	cleanup, err := Setup(Config{Root: t.TempDir(), Debug: true})
	require.NoError(t, err)
	require.NoError(t, cleanup())

	assert.Error(t, IsReady())
	assert.Empty(t, Path())
	L().Info("dropped")
}

func TestSetupFailsOnFileRoot(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := Setup(Config{Root: file})
	assert.Error(t, err)
	assert.Error(t, IsReady())
}

func TestTimed(t *testing.T) {
	cleanup, err := Setup(Config{Root: t.TempDir(), Debug: true})
	require.NoError(t, err)
	defer cleanup()

	done := Timed("batch.finished", "jobs", 3)
	done()
}
