package ports

import "context"

type DeleteExecutorPort interface {
	Delete(ctx context.Context, specPath string) error
}
