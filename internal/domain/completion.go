package domain

import "time"

// CompletionRequest is the JSON payload carried in the data field of a
// completion:generate action. Line and Column are zero-based.
type CompletionRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

type CompletionContext struct {
	Language string
	Scope    string
	Prefix   string
	Suffix   string
}

type Completion struct {
	Path        string    `json:"path"`
	Language    string    `json:"language"`
	Scope       string    `json:"scope,omitempty"`
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generated_at"`
}
