package auth

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentbase/talentbase/internal/domain/user"
	"github.com/talentbase/talentbase/pkg/apperror"
	"github.com/talentbase/talentbase/pkg/auth"
	"github.com/talentbase/talentbase/pkg/logger"
)

type RegisterUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewRegisterUseCase(repo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: repo,
		jwtSvc:   jwtSvc,
		logger:   log,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterOutput struct {
	AccessToken string
	UserID      uuid.UUID
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if existing, err := uc.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperror.NewConflict("user", "email", email)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	total, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to count users", err)
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        email,
		Avatar:       gravatarURL(email),
		Role:         roleForSignupOrder(total),
		PasswordHash: hash,
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		return nil, apperror.NewInternal("failed to save user", err)
	}

	token, err := uc.jwtSvc.GenerateToken(newUser.ID, newUser.Role)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", newUser.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	uc.logger.Info("User registered",
		zap.String("user_id", newUser.ID.String()),
		zap.String("role", newUser.Role))

	return &RegisterOutput{AccessToken: token, UserID: newUser.ID}, nil
}

// The very first account becomes the system account, the second the
// directory admin, everyone after that a regular candidate.
func roleForSignupOrder(existing int64) string {
	switch existing {
	case 0:
		return user.RoleSystem
	case 1:
		return user.RoleAdmin
	default:
		return user.RoleUser
	}
}

func gravatarURL(email string) string {
	sum := md5.Sum([]byte(email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", sum)
}
