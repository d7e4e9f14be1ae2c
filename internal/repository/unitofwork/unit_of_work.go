package unitofwork

import (
	"context"

	"structai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	HistoryRepository() contract.HistoryRepository
	DocumentRepository() contract.DocumentRepository
}
