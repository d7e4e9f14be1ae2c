package service

import (
	"context"

	"structai-be/internal/entity"
	"structai-be/internal/pkg/logger"
	"structai-be/internal/repository/specification"
	"structai-be/internal/repository/unitofwork"
	"structai-be/pkg/navigation"
)

// roleStore adapts the user repository to the navigation machine.
type roleStore struct {
	uowFactory unitofwork.RepositoryFactory
}

var _ navigation.RoleStore = &roleStore{}

func NewRoleStore(uowFactory unitofwork.RepositoryFactory) navigation.RoleStore {
	return &roleStore{uowFactory: uowFactory}
}

func (r *roleStore) SetRole(ctx context.Context, userId int64, role string) error {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().Upsert(ctx, &entity.User{
		UserId: userId,
		Role:   role,
	})
}

// contentLookup adapts the document repository to the navigation machine.
// A lookup failure renders like a missing key: the menu must never crash on
// content.
type contentLookup struct {
	uowFactory unitofwork.RepositoryFactory
	sysLogger  logger.ILogger
}

var _ navigation.ContentStore = &contentLookup{}

func NewContentLookup(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger) navigation.ContentStore {
	return &contentLookup{
		uowFactory: uowFactory,
		sysLogger:  sysLogger,
	}
}

func (c *contentLookup) GetContent(ctx context.Context, key string) (string, bool) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByContentKey{Key: key})
	if err != nil {
		c.sysLogger.Error("content", "document lookup failed", map[string]interface{}{
			"content_key": key,
			"error":       err.Error(),
		})
		return "", false
	}
	if doc == nil {
		return "", false
	}
	return doc.Content, true
}
