// Package blog manages the blog post collection: a title-keyed mapping with
// rename-as-move semantics, single-slot backup, search, and export/import.
package blog

// Status marks a post as draft or published.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Post is one blog record. The JSON field names match the stored export
// format of earlier deployments, so exports and imports stay interchangeable.
type Post struct {
	Date        string   `json:"DATE"`
	TimeToRead  string   `json:"TIME"`
	Link        string   `json:"LINK"`
	Description string   `json:"DESCRIPTION"`
	Content     string   `json:"CONTENT,omitempty"`
	Tags        []string `json:"TAGS,omitempty"`
	Status      Status   `json:"STATUS,omitempty"`
	Author      string   `json:"AUTHOR,omitempty"`
	CreatedAt   string   `json:"CREATED_AT,omitempty"`
	UpdatedAt   string   `json:"UPDATED_AT,omitempty"`
	Image       string   `json:"IMAGE,omitempty"`
	ImageAlt    string   `json:"IMAGE_ALT,omitempty"`
	Category    string   `json:"CATEGORY,omitempty"`
}

// EffectiveStatus treats a missing status as published.
func (p Post) EffectiveStatus() Status {
	if p.Status == "" {
		return StatusPublished
	}
	return p.Status
}

// Posts maps post title to record. The title doubles as the primary key and
// is mutable through Manager.Update, so consumers must not assume key
// stability across updates.
type Posts map[string]Post
