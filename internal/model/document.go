package model

import "time"

// Document is a catalog entry. Documents are immutable once they enter the catalog;
// population and ingestion belong to the catalog provider.
type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Type         Type      `json:"type"`
	SizeBytes    int64     `json:"size_bytes"`
	LastModified time.Time `json:"last_modified"`
	// Content is the full text for txt documents and a summary for everything else.
	Content string `json:"content"`
	// Locator is an opaque reference (URL or object key) to the full artifact.
	Locator string `json:"locator"`
}

// Profile returns the type profile of the document.
func (d Document) Profile() TypeProfile {
	return d.Type.Profile()
}
