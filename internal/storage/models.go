package storage

import "time"

const (
	ModerationApproved = "approved"
	ModerationPending  = "pending"
	ModerationRejected = "rejected"
)

// User is a gallery account. Records are immutable once created.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Username     string    `json:"username" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt" gorm:"not null"`
}

// Image is a community gallery entry. Optional fields are pointers so their
// absence serializes as JSON null rather than being dropped.
type Image struct {
	ID               string    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Prompt           string    `json:"prompt" gorm:"type:text;not null"`
	NegativePrompt   *string   `json:"negativePrompt" gorm:"type:text"`
	Model            string    `json:"model" gorm:"not null"`
	Width            int       `json:"width" gorm:"not null"`
	Height           int       `json:"height" gorm:"not null"`
	ImageData        string    `json:"imageData" gorm:"type:text;not null"` // base64 encoded image payload
	ArtStyle         string    `json:"artStyle" gorm:"not null"`
	UserDisplayName  *string   `json:"userDisplayName"`
	CreatedAt        time.Time `json:"createdAt" gorm:"not null;index"`
	ModerationStatus string    `json:"moderationStatus" gorm:"not null"` // approved | pending | rejected
	LikeCount        int       `json:"likeCount" gorm:"not null"`
}

// SavedImage is a per-user favorite. UserID is a free-form string and
// OriginalImageID an advisory reference; neither is validated against other
// collections.
type SavedImage struct {
	ID              string    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	UserID          string    `json:"userId" gorm:"not null;index"`
	Prompt          string    `json:"prompt" gorm:"type:text;not null"`
	NegativePrompt  *string   `json:"negativePrompt" gorm:"type:text"`
	Model           string    `json:"model" gorm:"not null"`
	Width           int       `json:"width" gorm:"not null"`
	Height          int       `json:"height" gorm:"not null"`
	ImageData       string    `json:"imageData" gorm:"type:text;not null"`
	ArtStyle        string    `json:"artStyle" gorm:"not null"`
	OriginalImageID *string   `json:"originalImageId"`
	CreatedAt       time.Time `json:"createdAt" gorm:"not null;index"`
}

type InsertUser struct {
	Username     string
	PasswordHash string
}

type InsertImage struct {
	Prompt          string
	NegativePrompt  *string
	Model           string
	Width           int
	Height          int
	ImageData       string
	ArtStyle        string
	UserDisplayName *string
}

type InsertSavedImage struct {
	UserID          string
	Prompt          string
	NegativePrompt  *string
	Model           string
	Width           int
	Height          int
	ImageData       string
	ArtStyle        string
	OriginalImageID *string
}
