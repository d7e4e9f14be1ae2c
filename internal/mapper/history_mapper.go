package mapper

import (
	"structai-be/internal/entity"
	"structai-be/internal/model"
)

type HistoryMapper struct{}

func NewHistoryMapper() *HistoryMapper {
	return &HistoryMapper{}
}

func (m *HistoryMapper) ToEntity(h *model.History) *entity.HistoryEntry {
	if h == nil {
		return nil
	}
	return &entity.HistoryEntry{
		Id:       h.Id,
		UserId:   h.UserId,
		Question: h.Question,
		Answer:   h.Answer,
		Date:     h.Date,
	}
}

func (m *HistoryMapper) ToModel(h *entity.HistoryEntry) *model.History {
	if h == nil {
		return nil
	}
	return &model.History{
		Id:       h.Id,
		UserId:   h.UserId,
		Question: h.Question,
		Answer:   h.Answer,
		Date:     h.Date,
	}
}

func (m *HistoryMapper) ToEntities(models []*model.History) []*entity.HistoryEntry {
	entities := make([]*entity.HistoryEntry, 0, len(models))
	for _, h := range models {
		entities = append(entities, m.ToEntity(h))
	}
	return entities
}
