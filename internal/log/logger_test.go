package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vshell/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.Info("info message")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	l.Warn("warn message")
	assert.Contains(t, buf.String(), "level=warning")
	buf.Reset()

	l.Error("error message")
	assert.Contains(t, buf.String(), "level=error")
	buf.Reset()

	l.Infof("formatted %s", "message")
	assert.Contains(t, buf.String(), "formatted message")
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	SetDebug(false)
	l.Debug("debug message")
	assert.Empty(t, buf.String())

	SetDebug(true)
	defer SetDebug(false)
	l.Debug("debug message")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "debug message")
	buf.Reset()

	l.Debugf("formatted %s", "debug")
	assert.Contains(t, buf.String(), "formatted debug")
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured message")
	output := buf.String()
	assert.Contains(t, output, "structured message")
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
	buf.Reset()

	l.With(F("key1", "value1")).With(F("key2", 123)).Info("chained fields")
	output = buf.String()
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
}

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithJSON())

	l.With(F("device", "/dev/hidraw0"), F("state", true)).Info("power on")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "power on", entry["message"])
	assert.Equal(t, "/dev/hidraw0", entry["device"])
	assert.Equal(t, true, entry["state"])
	assert.Contains(t, entry, "timestamp")
}

func TestErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	original := current()
	Configure(WithOutput(&buf))
	defer func() { logger = original }()

	LogWithError(fmt.Errorf("standard error")).Error("error occurred")
	output := buf.String()
	assert.Contains(t, output, "error occurred")
	assert.Contains(t, output, "standard error")
	assert.Contains(t, output, "error_kind=unknown")
	buf.Reset()

	devErr := errors.NewDeviceError("device not writable", "/dev/hidraw3", errors.DeviceUnavailable, nil)
	LogWithError(devErr).Warn("power unchanged")
	output = buf.String()
	assert.Contains(t, output, "path=/dev/hidraw3")
	assert.Contains(t, output, "error_kind=device_unavailable")
	buf.Reset()

	launchErr := errors.NewLaunchError("command failed", "/data/clip.mp4", []string{"vlc"}, errors.LaunchFailed, nil)
	LogError(launchErr, "launch failed")
	output = buf.String()
	assert.Contains(t, output, "launch failed")
	assert.Contains(t, output, "path=/data/clip.mp4")
	assert.Contains(t, output, "command=vlc")
	assert.Contains(t, output, "error_kind=launch_failed")
	buf.Reset()

	configErr := errors.NewConfigError("config error", "timeout", errors.InvalidConfig, nil)
	LogWithError(configErr).Error("config error occurred")
	assert.Contains(t, buf.String(), "param=timeout")
	buf.Reset()

	LogWithError(nil).Error("nil error test")
	assert.Contains(t, buf.String(), "nil error test")
	assert.Contains(t, buf.String(), "<nil>")
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vshell.log")
	original := current()
	Configure(WithFile(path))
	defer func() {
		require.NoError(t, Close())
		logger = original
	}()

	Info("file test message")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "file test message")
}

func TestFileOutputUnavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "vshell.log")
	l := NewLogger(WithFile(path))

	assert.NotPanics(t, func() { l.Info("dropped") })
	assert.NoError(t, l.Close())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
