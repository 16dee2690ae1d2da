package config_test

import (
	"testing"
	"time"

	"vshell/internal/config"
	"vshell/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/mydata", cfg.Root)
	assert.Equal(t, ".", cfg.HiddenPrefix)
	assert.Equal(t, 60*time.Second, cfg.Timeout())
	assert.Equal(t, []byte{0x00, 0x01}, cfg.OnBytes())
	assert.Equal(t, []byte{0x00, 0x00}, cfg.OffBytes())
	assert.Equal(t, "*:16C0:05DF.*", cfg.Device.Signature)
	assert.Equal(t, []string{"xbindkeys"}, cfg.Helper.Enable)
	assert.Equal(t, []string{"killall", "xbindkeys"}, cfg.Helper.Disable)

	require.Len(t, cfg.Commands, 4)
	assert.Equal(t, []string{"bash", "-c"}, cfg.Commands["sh"])
	assert.Equal(t, []string{"vlc", "--fullscreen", "--gain=0.1"}, cfg.Commands["mp4"])
	assert.Equal(t, "127", cfg.Commands["m3u8"][len(cfg.Commands["m3u8"])-1])
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() { config.MustLoad() })
}

func TestParse(t *testing.T) {
	base := `
root: /srv/media/
timeout_seconds: 5
device:
  signature: "*:1234:ABCD.*"
  "on": [1]
  "off": [2]
commands:
  .MKV: [mpv]
`
	t.Run("normalizes", func(t *testing.T) {
		cfg, err := config.Parse([]byte(base))
		require.NoError(t, err)
		assert.Equal(t, "/srv/media", cfg.Root)
		assert.Equal(t, ".", cfg.HiddenPrefix)
		assert.Equal(t, []string{"mpv"}, cfg.Commands["mkv"])
		assert.Equal(t, 5*time.Second, cfg.Timeout())
	})

	tests := []struct {
		name  string
		yaml  string
		param string
	}{
		{"syntax", "root: [unterminated", ""},
		{"relative root", "root: data\ntimeout_seconds: 1\ndevice: {signature: x, \"on\": [1], \"off\": [0]}", "root"},
		{"zero timeout", "root: /d\ntimeout_seconds: 0\ndevice: {signature: x, \"on\": [1], \"off\": [0]}", "timeout_seconds"},
		{"no signature", "root: /d\ntimeout_seconds: 1\ndevice: {\"on\": [1], \"off\": [0]}", "device.signature"},
		{"byte range", "root: /d\ntimeout_seconds: 1\ndevice: {signature: x, \"on\": [256], \"off\": [0]}", "device.on"},
		{"empty argv", "root: /d\ntimeout_seconds: 1\ndevice: {signature: x, \"on\": [1], \"off\": [0]}\ncommands: {mp4: []}", "commands.mp4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidConfig(err))
			if tt.param != "" {
				var ce *errors.ConfigError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, tt.param, ce.Param())
			}
		})
	}
}

func TestValidateNil(t *testing.T) {
	var cfg *config.Config
	assert.Error(t, cfg.Validate())
}
