package models

import (
	"time"

	"gorm.io/gorm"
)

// SocialLinks holds the optional social URLs attached to a profile.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Profile is the one-to-one professional profile of a user. The handle is
// globally unique and distinct from the user ID.
type Profile struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	UserID         uint        `gorm:"not null;uniqueIndex" json:"user_id"`
	User           User        `gorm:"foreignKey:UserID" json:"user"`
	Handle         string      `gorm:"uniqueIndex;not null" json:"handle"`
	Status         string      `gorm:"not null" json:"status"`
	Company        string      `json:"company,omitempty"`
	Website        string      `json:"website,omitempty"`
	Location       string      `json:"location,omitempty"`
	Bio            string      `json:"bio,omitempty"`
	GithubUsername string      `json:"githubusername,omitempty"`
	Skills         []string    `gorm:"serializer:json" json:"skills"`
	Social         SocialLinks `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	// Experience and Education are embedded sub-record lists, newest first.
	Experience []Experience   `gorm:"foreignKey:ProfileID" json:"experience"`
	Education  []Education    `gorm:"foreignKey:ProfileID" json:"education"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// Experience is a work-history entry embedded in a profile.
// Current is true when the entry has no end date.
type Experience struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProfileID   uint       `gorm:"not null;index" json:"-"`
	Title       string     `gorm:"not null" json:"title"`
	Company     string     `gorm:"not null" json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `gorm:"not null" json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Education is a schooling entry embedded in a profile.
type Education struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ProfileID    uint       `gorm:"not null;index" json:"-"`
	School       string     `gorm:"not null" json:"school"`
	Degree       string     `gorm:"not null" json:"degree"`
	FieldOfStudy string     `gorm:"not null" json:"fieldofstudy"`
	From         time.Time  `gorm:"not null" json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
