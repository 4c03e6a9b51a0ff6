package contributorrepo

import (
	"context"
	"errors"

	"github.com/givefund/givefund/internal/domain"
	"github.com/givefund/givefund/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.Contributor, error) {
	var contributor domain.Contributor
	err := repo.db.QueryRow(ctx,
		"SELECT id, email, password_hash, display_name FROM contributors WHERE email = $1", email,
	).Scan(&contributor.ID, &contributor.Email, &contributor.PasswordHash, &contributor.DisplayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find contributor", zap.Error(err))
		return nil, err
	}
	return &contributor, nil
}

func (repo *Repository) Create(ctx context.Context, contributor *domain.Contributor) (*domain.Contributor, error) {
	query := `
		INSERT INTO contributors (email, password_hash, display_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, contributor.Email, contributor.PasswordHash, contributor.DisplayName).Scan(&contributor.ID)
	if err != nil {
		zap.L().Error("can't save contributor", zap.Error(err))
		return nil, err
	}
	return contributor, nil
}
