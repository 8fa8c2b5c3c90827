package schipperke

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	var c, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", c.Host)
	assert.Equal(t, 2345, c.Port)
	assert.Empty(t, c.LogFile)
	assert.Empty(t, c.MetricsAddr)
	assert.False(t, c.Color)
}

func TestConfigFile(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "schipperke.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
host: 10.0.0.5
port: 7777
logdir: /var/log/ais
metrics_addr: ":9100"
color: true
`), 0644))

	var c, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", c.Host)
	assert.Equal(t, 7777, c.Port)
	assert.Equal(t, "/var/log/ais", c.LogDir)
	assert.Equal(t, ":9100", c.MetricsAddr)
	assert.True(t, c.Color)
}

func TestConfigPartialKeepsDefaults(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "schipperke.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 3333\n"), 0644))

	var c, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", c.Host)
	assert.Equal(t, 3333, c.Port)
}

func TestConfigRejectsBothLogModes(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "schipperke.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logfile: a.csv\nlogdir: logs\n"), 0644))

	var _, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigMissingFile(t *testing.T) {
	var _, err = LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
