package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/domain"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	ExportFormatJSON = "json"
	ExportFormatYAML = "yaml"
	ExportFormatTOML = "toml"
)

// ExportFormats returns the supported export formats.
func ExportFormats() []string {
	return []string{ExportFormatJSON, ExportFormatYAML, ExportFormatTOML}
}

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct {
	Format string // json, yaml or toml (empty = json)
}

// ExportTasksOutput contains the encoded task list.
type ExportTasksOutput struct {
	Data  []byte
	Count int
}

// ExportTasks is the use case for dumping the task list in another format.
type ExportTasks struct {
	tasks domain.TaskRepository
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskRepository) *ExportTasks {
	return &ExportTasks{
		tasks: tasks,
	}
}

// tomlDocument wraps the list because a TOML document must be a table.
type tomlDocument struct {
	Tasks []domain.Task `toml:"tasks"`
}

// Execute encodes every task in list order.
func (uc *ExportTasks) Execute(_ context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	format := strings.ToLower(strings.TrimSpace(in.Format))
	if format == "" {
		format = ExportFormatJSON
	}

	tasks, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	var data []byte
	switch format {
	case ExportFormatJSON:
		data, err = domain.MarshalTasksJSON(tasks)
	case ExportFormatYAML:
		data, err = marshalYAML(tasks)
	case ExportFormatTOML:
		doc := tomlDocument{Tasks: make([]domain.Task, 0, len(tasks))}
		for _, t := range tasks {
			doc.Tasks = append(doc.Tasks, *t)
		}
		data, err = toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("%w: %q (use %s)", domain.ErrUnsupportedFormat, in.Format, strings.Join(ExportFormats(), ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}

	return &ExportTasksOutput{Data: data, Count: len(tasks)}, nil
}

func marshalYAML(tasks []*domain.Task) ([]byte, error) {
	if len(tasks) == 0 {
		return []byte("[]\n"), nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tasks); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
