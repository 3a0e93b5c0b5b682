package repository

import (
	"context"

	"app/internal/domain/model"
)

type MemberRepository interface {
	FindByID(ctx context.Context, id int64) (model.Member, error)
	Create(ctx context.Context, m model.Member) (int64, error)
}
