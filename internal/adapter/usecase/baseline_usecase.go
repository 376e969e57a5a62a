package usecase

import (
	"context"
	"fmt"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

// BaselineUseCase implements port.BaselineUseCase.
type BaselineUseCase struct {
	repo port.BaselineRepository
}

var _ port.BaselineUseCase = (*BaselineUseCase)(nil)

func NewBaselineUseCase(repo port.BaselineRepository) *BaselineUseCase {
	return &BaselineUseCase{repo: repo}
}

// ExportBaseline loads an entity and its rows ordered by weekday and hour.
// An entity without rows exports an empty sheet.
func (u *BaselineUseCase) ExportBaseline(ctx context.Context, kind domain.BaselineKind, entityID int64) (*port.BaselineExport, error) {
	entity, err := u.repo.GetEntity(ctx, kind, entityID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, fmt.Errorf("%s %d: %w", kind.Name, entityID, port.ErrNotFound)
	}
	rows, err := u.repo.ListBaselines(ctx, kind, entityID)
	if err != nil {
		return nil, err
	}
	return &port.BaselineExport{Kind: kind, Entity: *entity, Rows: rows}, nil
}
