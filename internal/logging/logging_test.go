package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamcut/internal/logging"
)

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	opts := logging.DefaultOptions()
	log, closer, err := logging.New(opts, &buf)
	require.NoError(t, err)
	defer closer.Close()

	log.WithField("run_id", "abc").Info("solved")
	log.Debug("hidden")
	out := buf.String()
	require.Contains(t, out, "msg=solved")
	require.Contains(t, out, "run_id=abc")
	require.NotContains(t, out, "hidden")
}

func TestNew_File(t *testing.T) {
	var buf bytes.Buffer
	opts := logging.DefaultOptions()
	opts.Level = "debug"
	opts.File = filepath.Join(t.TempDir(), "logs", "seamcut.log")

	log, closer, err := logging.New(opts, &buf)
	require.NoError(t, err)
	log.Debug("augment")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(opts.File)
	require.NoError(t, err)
	require.Contains(t, string(data), "msg=augment")
	require.Contains(t, buf.String(), "msg=augment")
}

func TestNew_BadLevel(t *testing.T) {
	opts := logging.DefaultOptions()
	opts.Level = "loud"
	_, _, err := logging.New(opts, &bytes.Buffer{})
	require.Error(t, err)
}
