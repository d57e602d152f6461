package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/orbis/internal/adapters/shell"
	"go.trai.ch/orbis/internal/core/domain"
	"go.trai.ch/orbis/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test commands assume a POSIX shell")
	}
}

func TestExecuteStreamsOutput(t *testing.T) {
	skipWithoutShell(t)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("line one")
	log.EXPECT().Info("line two")
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	e := shell.NewExecutor(log)
	err := e.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo 'line one'; echo 'line two'"},
	})
	require.NoError(t, err)
}

func TestExecuteReportsExitCode(t *testing.T) {
	skipWithoutShell(t)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	e := shell.NewExecutor(log)
	err := e.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "exit 3"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
}

func TestExecuteMissingProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	e := shell.NewExecutor(log)
	err := e.Execute(context.Background(), domain.Command{Name: "orbis-no-such-program"})
	assert.Error(t, err)
}

func TestExecuteUsesWorkingDir(t *testing.T) {
	skipWithoutShell(t)

	dir := t.TempDir()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	e := shell.NewExecutor(log)
	err := e.Execute(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "touch marker"},
		Dir:  dir,
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "marker"))
	assert.NoError(t, err)
}

func TestExecuteHonorsCancellation(t *testing.T) {
	skipWithoutShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	e := shell.NewExecutor(log)
	err := e.Execute(ctx, domain.Command{Name: "sleep", Args: []string{"10"}})
	assert.Error(t, err)
}
