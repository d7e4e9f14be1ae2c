package mapper

import (
	"structai-be/internal/entity"
	"structai-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}
	return &entity.Document{
		Id:         d.Id,
		ContentKey: d.ContentKey,
		Title:      d.Title,
		Content:    d.Content,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}
	return &model.Document{
		Id:         d.Id,
		ContentKey: d.ContentKey,
		Title:      d.Title,
		Content:    d.Content,
	}
}
