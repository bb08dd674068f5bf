package ports

import (
	"context"

	"github.com/bnema/memory-garden/internal/domain"
)

// MemorySource yields the memory records of one user.
type MemorySource interface {
	List(ctx context.Context, userID domain.UserID) ([]domain.Memory, error)
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.Memory, error)
}
