package models

import (
	"time"

	"github.com/google/uuid"
)

// FileDB represents an uploaded CSV file record in the database
type FileDB struct {
	FileID    uuid.UUID `json:"id" db:"file_id"`            // Primary key
	UserID    uuid.UUID `json:"-" db:"user_id"`             // Owning user
	Title     string    `json:"title" db:"title"`           // User-supplied title
	Path      string    `json:"-" db:"path"`                // Blob location on disk, not exposed
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Upload timestamp
}
