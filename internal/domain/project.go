package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxProjectNameLength bounds Project.Name in runes.
const MaxProjectNameLength = 200

// Project groups tasks under a single owner.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProject creates a validated Project owned by ownerID.
func NewProject(ownerID uuid.UUID, name, description string) (*Project, error) {
	now := time.Now().UTC()
	project := &Project{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	return project, nil
}

// Validate checks if the Project has valid data.
func (p *Project) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProjectID
	}

	if p.OwnerID == uuid.Nil {
		return ErrEmptyProjectOwnerID
	}

	if p.Name == "" {
		return ErrEmptyProjectName
	}

	if utf8.RuneCountInString(p.Name) > MaxProjectNameLength {
		return ErrProjectNameTooLong
	}

	return nil
}
