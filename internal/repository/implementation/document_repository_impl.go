package implementation

import (
	"context"
	"errors"

	"structai-be/internal/entity"
	"structai-be/internal/mapper"
	"structai-be/internal/model"
	"structai-be/internal/repository/contract"
	"structai-be/internal/repository/specification"

	"gorm.io/gorm"
)

type DocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewDocumentRepository(db *gorm.DB) contract.DocumentRepository {
	return &DocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *DocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	var m model.Document
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

// Save upserts by content key. Only cmd/seed writes here.
func (r *DocumentRepositoryImpl) Save(ctx context.Context, doc *entity.Document) error {
	m := r.mapper.ToModel(doc)
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO documents (content_key, title, content)
		VALUES (?, ?, ?)
		ON CONFLICT (content_key)
		DO UPDATE SET title = EXCLUDED.title, content = EXCLUDED.content
	`, m.ContentKey, m.Title, m.Content).Error
}

func (r *DocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Document{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
