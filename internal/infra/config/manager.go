package config

import (
	"path/filepath"

	"github.com/runoshun/todo/internal/domain"
	"github.com/spf13/afero"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	fs            afero.Fs
	workDir       string // Directory holding .todo.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
}

// NewManager creates a new Manager.
func NewManager(fs afero.Fs, workDir string) *Manager {
	return &Manager{
		fs:            fs,
		workDir:       workDir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(fs afero.Fs, workDir, globalConfDir string) *Manager {
	return &Manager{
		fs:            fs,
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// GetLocalConfigInfo returns information about the working directory config file.
func (m *Manager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.getConfigInfo(domain.LocalConfigPath(m.workDir))
}

// InitGlobalConfig writes the config template to the global config file.
func (m *Manager) InitGlobalConfig() error {
	return m.initConfig(m.GetGlobalConfigInfo())
}

// InitLocalConfig writes the config template to ./.todo.toml.
func (m *Manager) InitLocalConfig() error {
	return m.initConfig(m.GetLocalConfigInfo())
}

// getConfigInfo reads a config file and returns its info.
func (m *Manager) getConfigInfo(path string) domain.ConfigInfo {
	content, err := afero.ReadFile(m.fs, path)
	if err != nil {
		return domain.ConfigInfo{Path: path}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

func (m *Manager) initConfig(info domain.ConfigInfo) error {
	if info.Path == "" {
		return domain.ErrConfigDirUnknown
	}
	if info.Exists {
		return domain.ErrConfigExists
	}
	if err := m.fs.MkdirAll(filepath.Dir(info.Path), 0o750); err != nil {
		return err
	}
	return afero.WriteFile(m.fs, info.Path, []byte(domain.ConfigTemplate), 0o600)
}
