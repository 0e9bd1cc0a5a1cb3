package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/talentbase/talentbase/internal/domain/user"
	"github.com/talentbase/talentbase/pkg/apperror"
	"github.com/talentbase/talentbase/pkg/auth"
	"github.com/talentbase/talentbase/pkg/logger"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) Save(_ context.Context, u *user.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) UpdateAvatar(_ context.Context, id uuid.UUID, avatarURL string) error {
	if u, ok := r.users[id]; ok {
		u.Avatar = avatarURL
		return nil
	}
	return user.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newRegisterUseCase(repo user.Repository) *RegisterUseCase {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	return NewRegisterUseCase(repo, jwtSvc, logger.NewZapLogger("development"))
}

func TestRegister_SignupOrderAssignsRoles(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newRegisterUseCase(repo)
	ctx := context.Background()

	wantRoles := []string{user.RoleSystem, user.RoleAdmin, user.RoleUser, user.RoleUser}
	for i, want := range wantRoles {
		out, err := uc.Execute(ctx, RegisterInput{
			Name:     "User",
			Email:    string(rune('a'+i)) + "@example.com",
			Password: "password123",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, out.AccessToken)

		saved, err := repo.FindByID(ctx, out.UserID)
		assert.NoError(t, err)
		assert.Equal(t, want, saved.Role)
	}
}

func TestRegister_GravatarFromEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newRegisterUseCase(repo)

	out, err := uc.Execute(context.Background(), RegisterInput{
		Name:     "Anna",
		Email:    "anna@example.com",
		Password: "password123",
	})
	assert.NoError(t, err)

	saved, _ := repo.FindByID(context.Background(), out.UserID)
	// md5("anna@example.com")
	assert.Equal(t,
		"https://www.gravatar.com/avatar/6b56db1f84a3997b902509d3fbf0a306?s=200&r=pg&d=mm",
		saved.Avatar)
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newRegisterUseCase(repo)
	ctx := context.Background()

	_, err := uc.Execute(ctx, RegisterInput{Name: "A", Email: "same@example.com", Password: "password123"})
	assert.NoError(t, err)

	_, err = uc.Execute(ctx, RegisterInput{Name: "B", Email: "Same@Example.com ", Password: "password123"})
	assert.ErrorIs(t, err, apperror.ErrConflict, "email comparison is case and space insensitive")
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	registerUC := newRegisterUseCase(repo)
	ctx := context.Background()

	_, err := registerUC.Execute(ctx, RegisterInput{Name: "A", Email: "a@example.com", Password: "correct-password"})
	assert.NoError(t, err)

	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	loginUC := NewLoginUseCase(repo, jwtSvc, logger.NewZapLogger("development"))

	_, err = loginUC.Execute(ctx, LoginInput{Email: "a@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	out, err := loginUC.Execute(ctx, LoginInput{Email: "a@example.com", Password: "correct-password"})
	assert.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}
