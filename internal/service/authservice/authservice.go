package authservice

import (
	"context"
	"errors"

	"github.com/blackvant/backend/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindBySubjectID(ctx context.Context, subjectID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		userRepo: repo,
	}
}

var ErrInvalidSubject = errors.New("invalid token subject")

// Identify resolves a verified token subject to a local user, creating one
// with the least-privileged role on first sight.
func (s *Service) Identify(ctx context.Context, subjectID, email string) (*domain.User, error) {
	if subjectID == "" {
		return nil, ErrInvalidSubject
	}

	user, err := s.userRepo.FindBySubjectID(ctx, subjectID)
	if err != nil {
		zap.L().Error("can't find user by subject: ", zap.Error(err))
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user = &domain.User{
		SubjectID: subjectID,
		Email:     email,
		Role:      domain.RoleClient,
	}
	user, err = s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user created on first sight", zap.String("subject", subjectID))
	return user, nil
}
