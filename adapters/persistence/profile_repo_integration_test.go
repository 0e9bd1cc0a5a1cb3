package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/talentbase/talentbase/internal/domain/activitylog"
	"github.com/talentbase/talentbase/internal/domain/directory"
	"github.com/talentbase/talentbase/internal/domain/profile"
	"github.com/talentbase/talentbase/internal/domain/user"
	"github.com/talentbase/talentbase/pkg/logger"
)

type ProfileRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool        *pgxpool.Pool
	pgContainer   *postgres.PostgresContainer
	testLogger    logger.Logger
	profileRepo   profile.Repository
	directoryRepo directory.Repository
	userRepo      user.Repository
	logRepo       activitylog.Repository
	testUser      *user.User
}

func (s *ProfileRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewZapLogger("development")
	s.profileRepo = NewPostgresProfileRepo(s.dbPool, s.testLogger)
	s.directoryRepo = NewPostgresDirectoryRepo(s.dbPool, s.testLogger)
	s.userRepo = NewPostgresUserRepo(s.dbPool)
	s.logRepo = NewPostgresActivityLogRepo(s.dbPool)

	s.testUser = &user.User{
		ID:           uuid.New(),
		Name:         "Anna Bianchi",
		Email:        "anna@example.com",
		Avatar:       "https://www.gravatar.com/avatar/abc",
		Role:         user.RoleUser,
		PasswordHash: "hashedpassword",
	}
	if err := s.userRepo.Save(ctx, s.testUser); err != nil {
		s.T().Fatalf("Failed to seed user: %s", err)
	}
}

func (s *ProfileRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestProfileRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(ProfileRepoIntegrationTestSuite))
}

func (s *ProfileRepoIntegrationTestSuite) newProfile(userID uuid.UUID) *profile.Profile {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &profile.Profile{
		ID:            uuid.New(),
		UserID:        userID,
		Status:        "Sviluppatore",
		Skills:        []string{"Go", "PHP"},
		Experience:    []profile.ExperienceEntry{},
		Education:     []profile.EducationEntry{},
		IsFavorite:    profile.FlagNo,
		IsInterviewed: profile.FlagNo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (s *ProfileRepoIntegrationTestSuite) Test_Save_And_FindByUserID() {
	ctx := context.Background()

	owner := &user.User{
		ID:           uuid.New(),
		Name:         "Carlo Rossi",
		Email:        "carlo@example.com",
		Role:         user.RoleUser,
		PasswordHash: "hashedpassword",
	}
	s.NoError(s.userRepo.Save(ctx, owner))

	p := s.newProfile(owner.ID)
	p.Address = "Milano"
	p.Distance = 1234
	p.Location = &profile.Location{Lat: 45.46, Lng: 9.19, FormattedAddress: "Milano, MI"}
	p.Social = map[string]string{"linkedin": "https://linkedin.com/in/anna"}

	s.NoError(s.profileRepo.Save(ctx, p))

	found, err := s.profileRepo.FindByUserID(ctx, owner.ID)
	s.NoError(err)
	s.Equal(p.ID, found.ID)
	s.Equal([]string{"Go", "PHP"}, found.Skills)
	s.Equal("Milano", found.Address)
	s.Equal(float64(1234), found.Distance)
	s.NotNil(found.Location)
	s.Equal("https://linkedin.com/in/anna", found.Social["linkedin"])
}

func (s *ProfileRepoIntegrationTestSuite) Test_Save_UpsertsOnUserID() {
	ctx := context.Background()

	existing, err := s.profileRepo.FindByUserID(ctx, s.testUser.ID)
	if err != nil {
		existing = s.newProfile(s.testUser.ID)
		s.NoError(s.profileRepo.Save(ctx, existing))
	}

	updated := existing.Clone()
	updated.Status = "Senior Sviluppatore"
	updated.Stars = 2
	s.NoError(s.profileRepo.Save(ctx, updated))

	found, err := s.profileRepo.FindByUserID(ctx, s.testUser.ID)
	s.NoError(err)
	s.Equal(existing.ID, found.ID, "row is updated in place")
	s.Equal("Senior Sviluppatore", found.Status)
	s.Equal(2, found.Stars)
}

func (s *ProfileRepoIntegrationTestSuite) Test_DirectorySnapshot_JoinsUser() {
	ctx := context.Background()

	if _, err := s.profileRepo.FindByUserID(ctx, s.testUser.ID); err != nil {
		s.NoError(s.profileRepo.Save(ctx, s.newProfile(s.testUser.ID)))
	}

	entries, err := s.directoryRepo.Snapshot(ctx)
	s.NoError(err)
	s.NotEmpty(entries)

	var found bool
	for _, e := range entries {
		if e.Profile.UserID == s.testUser.ID {
			found = true
			s.Equal("Anna Bianchi", e.UserName)
			s.Equal(s.testUser.Avatar, e.Avatar)
		}
	}
	s.True(found, "seeded profile appears in the snapshot")
}

func (s *ProfileRepoIntegrationTestSuite) Test_ActivityLogs_FilterAndDelete() {
	ctx := context.Background()

	l := &activitylog.Log{
		ID:     uuid.New(),
		UserID: s.testUser.ID,
		Text:   "profile created",
		Type:   "created",
		Date:   time.Now().UTC(),
	}
	s.NoError(s.logRepo.Save(ctx, l))

	views, err := s.logRepo.FindAll(ctx, activitylog.ListFilter{UserID: s.testUser.ID, Type: "created"})
	s.NoError(err)
	s.NotEmpty(views)
	s.Equal("Anna Bianchi", views[0].UserName)
	s.Equal("anna@example.com", views[0].UserEmail)

	s.NoError(s.logRepo.Delete(ctx, l.ID))
	_, err = s.logRepo.FindByID(ctx, l.ID)
	s.ErrorIs(err, activitylog.ErrLogNotFound)
}
