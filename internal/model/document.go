package model

import "time"

// Category classifies a document (drawings, contracts, permits, ...).
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User identifies the person who uploaded a document version.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Comment is a reviewer note attached to a document version.
type Comment struct {
	ID        string    `json:"id"`
	Author    User      `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// DocumentVersion is the current revision of a document.
// A nil Comments slice means the version carries no comment list at all.
type DocumentVersion struct {
	VersionNumber int       `json:"versionNumber"`
	FileSize      int64     `json:"fileSize"`
	Status        string    `json:"status"`
	UploadedBy    User      `json:"uploadedBy"`
	Comments      []Comment `json:"comments,omitempty"`
}

// Document is a tracked project file with its current version metadata.
// This is a pure domain model; it carries no persistence tags.
type Document struct {
	ID             string          `json:"id"`
	DocumentNumber string          `json:"documentNumber"`
	Title          string          `json:"title"`
	Description    *string         `json:"description,omitempty"`
	Category       Category        `json:"category"`
	Tags           []string        `json:"tags"`
	Confidential   bool            `json:"confidential"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	CurrentVersion DocumentVersion `json:"currentVersion"`
}

// HasComments reports whether the current version has at least one comment.
func (d Document) HasComments() bool {
	return len(d.CurrentVersion.Comments) > 0
}
