package contract

import (
	"context"

	"structai-be/internal/entity"
	"structai-be/internal/repository/specification"
)

type UserRepository interface {
	// Upsert inserts the user or overwrites its role, last write wins.
	Upsert(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
