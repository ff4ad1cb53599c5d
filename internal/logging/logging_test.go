package logging

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/config"
)

func TestSetupModes(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	log := logrus.New()
	require.NoError(t, Setup(log, config.Default()))
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	t.Setenv("DEVELOPMENT", "0")
	log = logrus.New()
	require.NoError(t, Setup(log, config.Default()))
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestSetupLogFile(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	c := config.Default()
	c.Log.File = filepath.Join(t.TempDir(), "minesweeper.log")

	log := logrus.New()
	log.SetOutput(io.Discard)
	require.NoError(t, Setup(log, c))
	log.WithField("bombs", 9).Info("new game")

	data, err := os.ReadFile(c.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"new game"`)
	assert.Contains(t, string(data), `"bombs":9`)
}
