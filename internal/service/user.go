package service

import (
	"context"
	"database/sql"

	"go.uber.org/fx"

	"github.com/ncnews/backend/internal/accessor"
	"github.com/ncnews/backend/internal/model"
	"github.com/ncnews/backend/internal/storage"
)

type UserService struct {
	queries storage.Querier
}

func (s *UserService) GetUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.queries.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return accessor.UsersFromRows(rows), nil
}

type NewUserServiceParams struct {
	fx.In

	DB *sql.DB
}

func NewUserService(params NewUserServiceParams) *UserService {
	return &UserService{
		queries: storage.New(params.DB),
	}
}
