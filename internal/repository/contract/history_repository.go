package contract

import (
	"context"

	"structai-be/internal/entity"
	"structai-be/internal/repository/specification"
)

type HistoryRepository interface {
	// Append writes a new row. History is append-only; there is no update
	// or delete, and duplicates are allowed.
	Append(ctx context.Context, entry *entity.HistoryEntry) error

	// FindFirst returns the earliest row (by id) matching the specs, or nil.
	FindFirst(ctx context.Context, specs ...specification.Specification) (*entity.HistoryEntry, error)

	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HistoryEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
