package http

import (
	"time"

	"github.com/talentbase/talentbase/internal/domain/directory"
	"github.com/talentbase/talentbase/internal/domain/profile"
	"github.com/talentbase/talentbase/internal/domain/user"
)

// Auth DTOs

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:     u.ID.String(),
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
		Role:   u.Role,
	}
}

// Profile DTOs. Field names mirror what the directory frontend already
// consumes, integer flags and Italian worked strings included.

type UserRefDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type ProfileDTO struct {
	ID             string                    `json:"id"`
	User           UserRefDTO                `json:"user"`
	Status         string                    `json:"status"`
	Company        string                    `json:"company"`
	Website        string                    `json:"website"`
	Address        string                    `json:"address"`
	Bio            string                    `json:"bio"`
	GithubUsername string                    `json:"githubusername"`
	Skills         []string                  `json:"skills"`
	Experience     []profile.ExperienceEntry `json:"experience"`
	Education      []profile.EducationEntry  `json:"education"`
	Social         map[string]string         `json:"social"`
	IsFavorite     int                       `json:"isFavorite"`
	IsInterviewed  int                       `json:"isInterviewed"`
	Stars          int                       `json:"stars"`
	Worked         string                    `json:"worked"`
	Note           string                    `json:"note"`
	Distance       float64                   `json:"distance"`
	Location       *profile.Location         `json:"location,omitempty"`
	CreatedAt      time.Time                 `json:"date"`
}

func ToProfileDTO(p *profile.Profile, ref UserRefDTO) ProfileDTO {
	return ProfileDTO{
		ID:             p.ID.String(),
		User:           ref,
		Status:         p.Status,
		Company:        p.Company,
		Website:        p.Website,
		Address:        p.Address,
		Bio:            p.Bio,
		GithubUsername: p.GithubUsername,
		Skills:         p.Skills,
		Experience:     p.Experience,
		Education:      p.Education,
		Social:         p.Social,
		IsFavorite:     p.IsFavorite,
		IsInterviewed:  p.IsInterviewed,
		Stars:          p.Stars,
		Worked:         p.Worked,
		Note:           p.Note,
		Distance:       p.Distance,
		Location:       p.Location,
		CreatedAt:      p.CreatedAt,
	}
}

func ToEntryDTO(e directory.Entry) ProfileDTO {
	return ToProfileDTO(&e.Profile, UserRefDTO{
		ID:     e.Profile.UserID.String(),
		Name:   e.UserName,
		Avatar: e.Avatar,
	})
}

func ToEntryDTOs(entries []directory.Entry) []ProfileDTO {
	out := make([]ProfileDTO, len(entries))
	for i, e := range entries {
		out[i] = ToEntryDTO(e)
	}
	return out
}

type UpsertProfileRequest struct {
	Status         string `json:"status" binding:"required"`
	Skills         string `json:"skills" binding:"required"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Address        string `json:"address"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// SocialMap returns the non-empty social links, nil when there are none.
func (req *UpsertProfileRequest) SocialMap() map[string]string {
	links := map[string]string{
		"youtube":   req.Youtube,
		"twitter":   req.Twitter,
		"facebook":  req.Facebook,
		"linkedin":  req.Linkedin,
		"instagram": req.Instagram,
	}
	out := make(map[string]string)
	for k, v := range links {
		if v != "" {
			out[k] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

type AddExperienceRequest struct {
	Title       string     `json:"title" binding:"required"`
	Company     string     `json:"company" binding:"required"`
	Address     string     `json:"address"`
	From        time.Time  `json:"from" binding:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type AddEducationRequest struct {
	School       string     `json:"school" binding:"required"`
	Degree       string     `json:"degree" binding:"required"`
	FieldOfStudy string     `json:"fieldofstudy" binding:"required"`
	From         time.Time  `json:"from" binding:"required"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

// Directory DTOs

// FilterRequest carries the directory predicates. Stars uses a pointer
// because 0 is a real rating; an absent field means "no stars filter".
type FilterRequest struct {
	Status        string `json:"status"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	IsFavorite    int    `json:"isFavorite"`
	IsInterviewed int    `json:"isInterviewed"`
	Stars         *int   `json:"stars"`
	Worked        string `json:"worked"`
	Skills        string `json:"skills"`
	SortBy        struct {
		Type string `json:"type"`
		Dir  string `json:"dir"`
	} `json:"sortBy"`
}

func (req *FilterRequest) ToSelection() directory.FilterSelection {
	sel := directory.NewFilterSelection()
	sel.Status = req.Status
	sel.Name = req.Name
	sel.Address = req.Address
	sel.Favorite = req.IsFavorite
	sel.Interviewed = req.IsInterviewed
	if req.Stars != nil {
		sel.Stars = *req.Stars
	}
	sel.Worked = req.Worked
	sel.Skills = req.Skills
	return sel
}

func (req *FilterRequest) ToSortBy() directory.SortBy {
	return directory.SortBy{
		Type: directory.SortKey(req.SortBy.Type),
		Dir:  directory.Direction(req.SortBy.Dir),
	}
}

// Annotation DTOs

type SetStarsRequest struct {
	Stars *int `json:"stars" binding:"required"`
}

type SetWorkedRequest struct {
	Worked string `json:"worked" binding:"required"`
}

type SaveNoteRequest struct {
	Note string `json:"note"`
}

// Activity log DTOs

type AddLogRequest struct {
	Text string `json:"text" binding:"required"`
	Type string `json:"type"`
}
