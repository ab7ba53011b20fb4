package cli

import (
	"bytes"
	"testing"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/config"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConfigTestContainer wires config ports over an in-memory filesystem.
func newConfigTestContainer(fs afero.Fs) *app.Container {
	c := newTestContainer(testutil.NewMockTaskRepository())
	c.ConfigLoader = config.NewLoaderWithGlobalDir(fs, "/work", "/global/todo")
	c.ConfigManager = config.NewManagerWithGlobalDir(fs, "/work", "/global/todo")
	return c
}

func TestNewConfigCommand_Show(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/.todo.toml", []byte("[store]\npath = \"mine.json\"\n"), 0o644))

	cmd := newConfigCommand(newConfigTestContainer(fs))
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "[Loaded from]")
	assert.Contains(t, output, "- /global/todo/config.toml (not found)\n")
	assert.Contains(t, output, "- /work/.todo.toml\n")
	assert.Contains(t, output, "[Effective Config]")
	assert.Contains(t, output, "path = 'mine.json'")
	assert.Contains(t, output, "level = 'info'")
}

func TestNewConfigCommand_InitLocal(t *testing.T) {
	fs := afero.NewMemMapFs()
	cmd := newConfigCommand(newConfigTestContainer(fs))
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--init"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "Created config file: /work/.todo.toml\n", buf.String())
	data, err := afero.ReadFile(fs, "/work/.todo.toml")
	require.NoError(t, err)
	assert.Equal(t, domain.ConfigTemplate, string(data))
}

func TestNewConfigCommand_InitGlobal(t *testing.T) {
	fs := afero.NewMemMapFs()
	cmd := newConfigCommand(newConfigTestContainer(fs))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--init", "--global"})

	require.NoError(t, cmd.Execute())

	exists, err := afero.Exists(fs, "/global/todo/config.toml")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNewConfigCommand_InitExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/.todo.toml", []byte(""), 0o644))

	cmd := newConfigCommand(newConfigTestContainer(fs))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--init"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestNewConfigCommand_GlobalWithoutInit(t *testing.T) {
	cmd := newConfigCommand(newConfigTestContainer(afero.NewMemMapFs()))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--global"})

	assert.Error(t, cmd.Execute())
}

func TestNewConfigCommand_Template(t *testing.T) {
	fs := afero.NewMemMapFs()
	cmd := newConfigCommand(newConfigTestContainer(fs))
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--template"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, domain.ConfigTemplate, buf.String())
	exists, err := afero.Exists(fs, "/work/.todo.toml")
	require.NoError(t, err)
	assert.False(t, exists, "--template does not write files")
}
