package ports

import (
	"context"

	"go.trai.ch/orbis/internal/core/domain"
)

// Executor runs external programs. The engine delegates video encoding to an
// external encoder through this interface and never links codec libraries.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and waits for it to finish. It returns an
	// error if the program cannot be started or exits non-zero.
	Execute(ctx context.Context, cmd domain.Command) error
}
