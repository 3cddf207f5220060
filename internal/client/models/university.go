package models

import (
	"fmt"
	"strings"
)

type University struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Country       string   `json:"country,omitempty"`
	City          string   `json:"city"`
	Description   string   `json:"description,omitempty"`
	Website       string   `json:"website,omitempty"`
	LogoURL       string   `json:"logoUrl,omitempty"`
	AverageRating *float64 `json:"averageRating,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// Location renders "City, Country" or just the city.
func (u University) Location() string {
	if u.Country == "" {
		return u.City
	}
	return u.City + ", " + u.Country
}

// String is the one-line listing form used by the CLI.
func (u University) String() string {
	rating := "-"
	if u.AverageRating != nil {
		rating = fmt.Sprintf("%.1f", *u.AverageRating)
	}
	s := fmt.Sprintf("[%d] %s (%s) rating: %s", u.ID, u.Name, u.Location(), rating)
	if len(u.Tags) > 0 {
		s += " #" + strings.Join(u.Tags, " #")
	}
	return s
}
