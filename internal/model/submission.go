package model

import (
	"encoding/json"
	"time"
)

// Submission represents a membership application stored in the database.
// Categories is kept as the serialized JSON array string it is stored as,
// so rows round-trip exactly; IsApproved is tri-state: nil = pending,
// true = approved, false = rejected.
type Submission struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"type:text;not null"`
	Email          string    `json:"email" gorm:"type:text;not null;uniqueIndex"`
	Categories     string    `json:"categories" gorm:"type:text;not null"`
	OtherCategory  *string   `json:"otherCategory" gorm:"column:other_category;type:text"`
	WtfIdea        string    `json:"wtfIdea" gorm:"column:wtf_idea;type:text;not null"`
	CurrentProject string    `json:"currentProject" gorm:"column:current_project;type:text;not null"`
	YoutubeLink    string    `json:"youtubeLink" gorm:"column:youtube_link;type:text;not null"`
	Interests      *string   `json:"interests" gorm:"type:text"` // legacy column, kept nullable for old rows
	IsApproved     *bool     `json:"isApproved" gorm:"column:is_approved"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// EncodeCategories serializes a category selection in its submitted order.
func EncodeCategories(categories []string) string {
	b, err := json.Marshal(categories)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// CategoryList decodes the stored categories string back into a slice.
func (s *Submission) CategoryList() ([]string, error) {
	var categories []string
	if err := json.Unmarshal([]byte(s.Categories), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
