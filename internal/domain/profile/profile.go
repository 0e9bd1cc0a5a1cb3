package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

// Favorite / interviewed flags keep the stored integer encoding of the
// existing dataset: 1 = no, 2 = yes. 0 never appears on a saved profile,
// it is only the "no filter" sentinel on the directory side.
const (
	FlagNo  = 1
	FlagYes = 2
)

// Worked values are the exact strings persisted by the existing data.
const (
	WorkedNever   = "mai lavorato"
	WorkedPast    = "ha lavorato"
	WorkedCurrent = "ci lavora"
)

// Stars ratings range over 0..3. Writes are deliberately not range
// checked to match the observed behavior of the system being replaced.
const MaxStars = 3

type ExperienceEntry struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Address     string     `json:"address"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type EducationEntry struct {
	ID           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

type Location struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address"`
}

// Profile is a candidate's directory record. Exactly one exists per
// user; it is upserted in place on every profile submission.
type Profile struct {
	ID             uuid.UUID         `json:"id"`
	UserID         uuid.UUID         `json:"user_id"`
	Status         string            `json:"status"`
	Company        string            `json:"company"`
	Website        string            `json:"website"`
	Address        string            `json:"address"`
	Bio            string            `json:"bio"`
	GithubUsername string            `json:"githubusername"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Social         map[string]string `json:"social"`
	IsFavorite     int               `json:"isFavorite"`
	IsInterviewed  int               `json:"isInterviewed"`
	Stars          int               `json:"stars"`
	Worked         string            `json:"worked"`
	Note           string            `json:"note"`
	Distance       float64           `json:"distance"`
	Location       *Location         `json:"location"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// Clone returns a deep copy. The filter pipeline decorates skill text
// in place, so it must never run on a shared instance.
func (p *Profile) Clone() *Profile {
	cp := *p

	cp.Skills = append([]string(nil), p.Skills...)
	cp.Experience = append([]ExperienceEntry(nil), p.Experience...)
	cp.Education = append([]EducationEntry(nil), p.Education...)

	if p.Social != nil {
		cp.Social = make(map[string]string, len(p.Social))
		for k, v := range p.Social {
			cp.Social[k] = v
		}
	}
	if p.Location != nil {
		loc := *p.Location
		cp.Location = &loc
	}
	return &cp
}

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	FindAll(ctx context.Context) ([]*Profile, error)
	// Save upserts on user_id: update if the user already has a
	// profile, insert otherwise.
	Save(ctx context.Context, p *Profile) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
