// Package app provides the dependency injection container for the application.
package app

import (
	"path/filepath"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/config"
	"github.com/runoshun/todo/internal/infra/filewatch"
	"github.com/runoshun/todo/internal/infra/jsonstore"
	"github.com/runoshun/todo/internal/infra/logging"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/afero"
)

// Options are the inputs for building a Container.
type Options struct {
	WorkDir   string // Working directory (holds .todo.toml, resolves relative store paths)
	StorePath string // Task file from --file; overrides the config when set
}

// Config holds the resolved application paths.
type Config struct {
	WorkDir   string // Working directory
	StorePath string // Path to the task file
	LogDir    string // Log directory (empty = logging disabled)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskRepository
	IDs           domain.IDGenerator
	Clock         domain.Clock
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// AppConfig is the merged configuration; ConfigErr is set when it could
	// not be read and defaults were used instead.
	AppConfig *domain.Config
	ConfigErr error

	// Configuration
	Config Config
}

// New creates a new Container rooted at opts.WorkDir and loads the task file.
func New(opts Options) (*Container, error) {
	fs := afero.NewOsFs()

	configLoader := config.NewLoader(fs, opts.WorkDir)
	appConfig, configErr := configLoader.Load()
	if configErr != nil {
		appConfig = domain.NewDefaultConfig()
	}

	cfg := resolveConfig(opts, appConfig, config.DefaultLogDir())

	logger := logging.New(cfg.LogDir, logging.ParseLevel(appConfig.Log.Level))
	if configErr != nil {
		logger.Warn("config", "using defaults: "+configErr.Error())
	}

	clock := domain.RealClock{}

	return &Container{
		Tasks:         jsonstore.New(fs, cfg.StorePath, logger),
		IDs:           domain.NewTimestampIDGenerator(clock),
		Clock:         clock,
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(fs, opts.WorkDir),
		AppConfig:     appConfig,
		ConfigErr:     configErr,
		Config:        cfg,
	}, nil
}

// resolveConfig picks the store path (flag, then config) and the log directory.
func resolveConfig(opts Options, appConfig *domain.Config, defaultLogDir string) Config {
	storePath := opts.StorePath
	if storePath == "" {
		storePath = appConfig.Store.Path
	}
	if storePath == "" {
		storePath = domain.DefaultStorePath
	}
	if !filepath.IsAbs(storePath) && opts.WorkDir != "" {
		storePath = filepath.Join(opts.WorkDir, storePath)
	}

	logDir := appConfig.Log.Dir
	if logDir == "" {
		logDir = defaultLogDir
	}
	if appConfig.Log.Disabled {
		logDir = ""
	}

	return Config{
		WorkDir:   opts.WorkDir,
		StorePath: storePath,
		LogDir:    logDir,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:     tasks,
		IDs:       ids,
		Clock:     clock,
		Logger:    logger,
		AppConfig: domain.NewDefaultConfig(),
		Config:    cfg,
	}
}

// WatchTaskFile starts watching the task file for changes made outside this process.
// The caller must Close the returned watcher.
func (c *Container) WatchTaskFile() (*filewatch.Watcher, error) {
	return filewatch.New(c.Config.StorePath, c.Logger)
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.Logger.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.IDs, c.Clock, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ReloadTasksUseCase returns a new ReloadTasks use case.
func (c *Container) ReloadTasksUseCase() *usecase.ReloadTasks {
	return usecase.NewReloadTasks(c.Tasks, c.Logger)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// GetStatisticsUseCase returns a new GetStatistics use case.
func (c *Container) GetStatisticsUseCase() *usecase.GetStatistics {
	return usecase.NewGetStatistics(c.Tasks)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
