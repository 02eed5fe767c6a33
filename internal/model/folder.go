package model

import "time"

// Folder groups documents for a single user.
type Folder struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DocumentFolder links a document to a folder.
type DocumentFolder struct {
	DocumentID string `json:"document_id" db:"document_id"`
	FolderID   string `json:"folder_id" db:"folder_id"`
}
