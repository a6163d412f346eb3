package initializer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/prosperitycompass/backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := setupLogger(&buf, &config.Log{
		Level:      4,
		Format:     "json",
		TimeFormat: "2006-01-02",
		Prefix:     "[compass]",
	})

	logger.Info("hidden")
	logger.Warn("shown", "userID", "u-1")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "u-1", entry["userID"])
}

func TestInitializeDependencies_RequiresDatabaseURL(t *testing.T) {
	cfg := &config.App{
		Env: "test",
		Log: &config.Log{Level: 8, Format: "text"},
		DB:  &config.DB{},
	}
	deps, err := InitializeDependencies(cfg)
	require.Error(t, err)
	assert.Nil(t, deps)
}
