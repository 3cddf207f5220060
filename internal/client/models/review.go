package models

import (
	"fmt"
	"strings"
)

// Review as returned by the review endpoints. CreatedAt is kept verbatim: the
// backend emits a local timestamp without zone information.
type Review struct {
	ID             int64    `json:"id"`
	UniversityID   int64    `json:"universityId,omitempty"`
	UniversityName string   `json:"universityName,omitempty"`
	UserID         int64    `json:"userId,omitempty"`
	Rating         int      `json:"rating"`
	Text           string   `json:"text"`
	Tags           []string `json:"tags"`
	UserName       string   `json:"userName,omitempty"`
	CreatedAt      string   `json:"createdAt,omitempty"`
}

// Stars renders the rating as a five-character bar.
func (r Review) Stars() string {
	n := r.Rating
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("*", n) + strings.Repeat(".", 5-n)
}

func (r Review) String() string {
	author := r.UserName
	if author == "" {
		author = "anonymous"
	}
	s := fmt.Sprintf("[%d] %s %s: %s", r.ID, r.Stars(), author, r.Text)
	if r.UniversityName != "" {
		s = fmt.Sprintf("%s (%s)", s, r.UniversityName)
	}
	if len(r.Tags) > 0 {
		s += " #" + strings.Join(r.Tags, " #")
	}
	return s
}
