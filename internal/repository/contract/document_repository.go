package contract

import (
	"context"

	"structai-be/internal/entity"
	"structai-be/internal/repository/specification"
)

// DocumentRepository reads the structured corpus. The table is populated by
// cmd/seed and treated as read-only at run time.
type DocumentRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error)
	Save(ctx context.Context, doc *entity.Document) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
