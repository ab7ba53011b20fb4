package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, DefaultStorePath, cfg.Store.Path)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.False(t, cfg.Log.Disabled)
}

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, "/home/user/.config/todo", GlobalConfigDir("/home/user/.config"))
	assert.Equal(t, "/home/user/.config/todo/config.toml", GlobalConfigPath("/home/user/.config"))
	assert.Equal(t, "/work/.todo.toml", LocalConfigPath("/work"))
	assert.Equal(t, "/home/user/.local/state/todo/logs", DefaultLogDir("/home/user/.local/state"))
}
