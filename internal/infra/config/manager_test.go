package config

import (
	"path/filepath"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ConfigInfo(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, domain.LocalConfigPath(testWorkDir), "[store]\npath = \"x.json\"\n")
	m := NewManagerWithGlobalDir(fs, testWorkDir, testGlobalDir)

	local := m.GetLocalConfigInfo()
	assert.True(t, local.Exists)
	assert.Equal(t, "/work/.todo.toml", local.Path)
	assert.Contains(t, local.Content, "x.json")

	global := m.GetGlobalConfigInfo()
	assert.False(t, global.Exists)
	assert.Equal(t, filepath.Join(testGlobalDir, domain.ConfigFileName), global.Path)
}

func TestManager_InitConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := NewManagerWithGlobalDir(fs, testWorkDir, testGlobalDir)

	require.NoError(t, m.InitGlobalConfig())
	require.NoError(t, m.InitLocalConfig())

	content, err := afero.ReadFile(fs, filepath.Join(testGlobalDir, domain.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, domain.ConfigTemplate, string(content))

	assert.ErrorIs(t, m.InitLocalConfig(), domain.ErrConfigExists)
}

func TestManager_TemplateLoadsWithoutWarnings(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := NewManagerWithGlobalDir(fs, testWorkDir, testGlobalDir)
	require.NoError(t, m.InitLocalConfig())

	cfg, err := NewLoaderWithGlobalDir(fs, testWorkDir, testGlobalDir).Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, domain.DefaultStorePath, cfg.Store.Path)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
}

func TestManager_NoGlobalDir(t *testing.T) {
	m := NewManagerWithGlobalDir(afero.NewMemMapFs(), testWorkDir, "")

	assert.Equal(t, domain.ConfigInfo{}, m.GetGlobalConfigInfo())
	assert.ErrorIs(t, m.InitGlobalConfig(), domain.ErrConfigDirUnknown)
}
