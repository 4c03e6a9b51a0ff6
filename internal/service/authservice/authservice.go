package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/givefund/givefund/internal/domain"
	"github.com/givefund/givefund/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Contributor, error)
	Create(ctx context.Context, contributor *domain.Contributor) (*domain.Contributor, error)
}

type Service struct {
	contributorRepo Repo
	hashService     auth.HashServiceInterface
	jwtService      auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		contributorRepo: repo,
		hashService:     hashService,
		jwtService:      jwtService,
	}
}

var ErrEmailTaken = errors.New("email already taken")

func (s *Service) Register(ctx context.Context, email, password, displayName string) (*domain.Contributor, error) {
	existing, err := s.contributorRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find contributor: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("contributor already exists, email: ", zap.String("email", email))
		return nil, ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	contributor := &domain.Contributor{
		Email:        email,
		PasswordHash: hashedPassword,
		DisplayName:  displayName,
	}
	newContributor, err := s.contributorRepo.Create(ctx, contributor)
	if err != nil {
		zap.L().Error("can't create contributor: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("contributor successfully registered", zap.String("email", email))
	return newContributor, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Contributor, error) {
	contributor, err := s.contributorRepo.FindByEmail(ctx, email)
	if err != nil || contributor == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(contributor.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("contributor successfully authenticated", zap.String("email", email))
	return contributor, nil
}

func (s *Service) GenerateToken(contributorID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(contributorID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
