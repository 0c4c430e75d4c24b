package model

import "time"

// ContentRecord is a cached page of the school's public web content.
type ContentRecord struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Body        string    `json:"body,omitempty"`
	SourceURL   string    `json:"source_url,omitempty"`
	Topic       string    `json:"topic,omitempty"`
	CrawledAt   time.Time `json:"crawled_at,omitempty"`
}

// ExamDocument is an exam schedule or paper found in the exam-file store.
type ExamDocument struct {
	Path    string `json:"-"`
	Title   string `json:"title"`
	Grade   *int   `json:"grade,omitempty"`
	Subject string `json:"subject,omitempty"`
	Teacher string `json:"teacher,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Excerpt string `json:"excerpt"`
}

// Video is a video link offered for a VideoRequest.
type Video struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
