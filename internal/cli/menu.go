package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	// errEndOfInput is returned by prompt when stdin is exhausted.
	errEndOfInput = errors.New("end of input")
	// errExit signals that the user chose to exit.
	errExit = errors.New("exit")
)

// Menu choices.
const (
	choiceAdd         = "1"
	choiceListPending = "2"
	choiceListAll     = "3"
	choiceComplete    = "4"
	choiceDelete      = "5"
	choiceStatistics  = "6"
	choiceExit        = "7"
)

// menu is the interactive numbered menu loop.
type menu struct {
	ctx context.Context
	c   *app.Container
	in  *bufio.Reader
	out io.Writer
}

// runMenu runs the interactive menu on the command's input and output.
func runMenu(cmd *cobra.Command, c *app.Container) error {
	m := &menu{
		ctx: cmd.Context(),
		c:   c,
		in:  bufio.NewReader(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	return m.run()
}

// run loops until the user exits or input ends.
// Persistence errors end the loop and are returned.
func (m *menu) run() error {
	for {
		m.printMenu()

		choice, err := m.prompt("\nChoose an option: ")
		if err == nil {
			err = m.dispatch(strings.TrimSpace(choice))
		}

		switch {
		case errors.Is(err, errEndOfInput):
			_, _ = fmt.Fprintln(m.out)
			m.goodbye()
			return nil
		case errors.Is(err, errExit):
			m.goodbye()
			return nil
		case err != nil:
			return err
		}
	}
}

func (m *menu) dispatch(choice string) error {
	switch choice {
	case choiceAdd:
		return m.add()
	case choiceListPending:
		return m.list(false)
	case choiceListAll:
		return m.list(true)
	case choiceComplete:
		return m.complete()
	case choiceDelete:
		return m.delete()
	case choiceStatistics:
		return m.statistics()
	case choiceExit:
		return errExit
	default:
		m.println("Invalid option. Please try again.")
		return nil
	}
}

func (m *menu) printMenu() {
	m.println("\n" + rule)
	m.println("TASK MANAGER")
	m.println(rule)
	m.println("1. Add task")
	m.println("2. List pending tasks")
	m.println("3. List all tasks")
	m.println("4. Complete task")
	m.println("5. Delete task")
	m.println("6. Statistics")
	m.println("7. Exit")
	m.println(rule)
}

func (m *menu) add() error {
	title, err := m.prompt("Task title: ")
	if err != nil {
		return err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		m.println("Title cannot be empty.")
		return nil
	}

	description, err := m.prompt("Description (optional): ")
	if err != nil {
		return err
	}

	answer, err := m.prompt("Priority (high/medium/low) [medium]: ")
	if err != nil {
		return err
	}
	priority, perr := domain.ParsePriority(answer)
	if perr != nil {
		priority = domain.DefaultPriority
	}

	out, err := m.c.AddTaskUseCase().Execute(m.ctx, usecase.AddTaskInput{
		Title:       title,
		Description: strings.TrimSpace(description),
		Priority:    string(priority),
	})
	if err != nil {
		return err
	}

	m.printf("✓ Task '%s' added successfully!\n", out.Task.Title)
	return nil
}

func (m *menu) list(showCompleted bool) error {
	out, err := m.c.ListTasksUseCase().Execute(m.ctx, usecase.ListTasksInput{
		ShowCompleted: showCompleted,
	})
	if err != nil {
		return err
	}
	printTaskList(m.out, out)
	return nil
}

func (m *menu) complete() error {
	if err := m.list(false); err != nil {
		return err
	}

	position, ok, err := m.promptNumber("\nTask number to complete: ")
	if err != nil || !ok {
		return err
	}

	out, err := m.c.CompleteTaskUseCase().Execute(m.ctx, usecase.CompleteTaskInput{
		Position: position,
	})
	if errors.Is(err, domain.ErrInvalidPosition) {
		m.println("Invalid task number.")
		return nil
	}
	if err != nil {
		return err
	}

	m.printf("✓ Task '%s' completed!\n", out.Task.Title)
	return nil
}

func (m *menu) delete() error {
	if err := m.list(true); err != nil {
		return err
	}

	position, ok, err := m.promptNumber("\nTask number to delete: ")
	if err != nil || !ok {
		return err
	}

	out, err := m.c.DeleteTaskUseCase().Execute(m.ctx, usecase.DeleteTaskInput{
		Position: position,
	})
	if errors.Is(err, domain.ErrInvalidPosition) {
		m.println("Invalid task number.")
		return nil
	}
	if err != nil {
		return err
	}

	m.printf("✓ Task '%s' deleted!\n", out.Task.Title)
	return nil
}

func (m *menu) statistics() error {
	out, err := m.c.GetStatisticsUseCase().Execute(m.ctx)
	if err != nil {
		return err
	}
	printStatistics(m.out, out.Statistics)
	return nil
}

func (m *menu) goodbye() {
	m.println("\nGoodbye! 👋")
}

// prompt writes label and reads one line.
func (m *menu) prompt(label string) (string, error) {
	_, _ = fmt.Fprint(m.out, label)
	// Lines have no length limit. A final line without a newline still counts.
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", errEndOfInput
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// promptNumber reads a task number. ok is false when the input was not a
// number; the user has already been told.
func (m *menu) promptNumber(label string) (int, bool, error) {
	answer, err := m.prompt(label)
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		m.println("Please enter a valid number.")
		return 0, false, nil
	}
	return n, true, nil
}

func (m *menu) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}

func (m *menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}
