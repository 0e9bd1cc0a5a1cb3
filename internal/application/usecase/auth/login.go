package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/talentbase/talentbase/internal/domain/user"
	"github.com/talentbase/talentbase/pkg/apperror"
	"github.com/talentbase/talentbase/pkg/auth"
	"github.com/talentbase/talentbase/pkg/logger"
)

var ErrInvalidCredentials = errors.New("email or password is incorrect")

type LoginUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewLoginUseCase(repo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		userRepo: repo,
		jwtSvc:   jwtSvc,
		logger:   log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	u, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID, u.Role)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", u.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	return &LoginOutput{AccessToken: token}, nil
}
