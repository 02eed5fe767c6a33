package model

import "time"

// Supported document type tags.
const (
	TypePDF  = "pdf"
	TypeDOCX = "docx"
	TypeCSV  = "csv"
	TypeTXT  = "txt"
)

// Document represents an uploaded study document.
// This is a pure domain model with no database-specific dependencies or tags.
// Processed only ever moves from false to true.
type Document struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"upload_date"`
	Processed   bool      `json:"processed"`
}

// IsSupportedType reports whether t is one of the accepted type tags.
func IsSupportedType(t string) bool {
	switch t {
	case TypePDF, TypeDOCX, TypeCSV, TypeTXT:
		return true
	}
	return false
}
