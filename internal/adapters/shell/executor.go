// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/orbis/internal/core/domain"
	"go.trai.ch/orbis/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec. The child's output is
// streamed line by line into the logger.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs the command and waits for it to finish.
func (e *Executor) Execute(ctx context.Context, command domain.Command) error {
	cmd := exec.CommandContext(ctx, command.Name, command.Args...) //nolint:gosec // command is assembled by the caller
	cmd.Dir = command.Dir
	cmd.Stdout = &logWriter{logger: e.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: e.logger, level: "error"}

	e.logger.Info("running " + command.Name + " " + strings.Join(command.Args, " "))

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		werr := zerr.Wrap(err, "command failed")
		werr = zerr.With(werr, "command", command.Name)
		return zerr.With(werr, "exit_code", exitCode)
	}
	return nil
}

// logWriter fans the child process output into the logger, one log entry per
// line. Partial lines at a Write boundary become their own entries; encoder
// output is line oriented enough that this stays readable.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}

var _ ports.Executor = (*Executor)(nil)
