package model

import (
	"time"
)

// Entry is the normalized metadata of one content directory.
type Entry struct {
	Title     string `json:"title"`
	Date      string `json:"date,omitempty"`
	Category  string `json:"category,omitempty"`
	ShortLink string `json:"short_link,omitempty"`
	Image     string `json:"image,omitempty"`
	Directory string `json:"directory"`

	// Published is Date as a calendar day; zero when the entry is undated.
	Published time.Time `json:"-"`
}

func (e *Entry) HasDate() bool {
	return !e.Published.IsZero()
}
