package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniversity_String(t *testing.T) {
	r := 4.3
	u := University{ID: 3, Name: "KBTU", City: "Almaty", Country: "Kazakhstan", AverageRating: &r, Tags: []string{"it", "campus"}}
	assert.Equal(t, "[3] KBTU (Almaty, Kazakhstan) rating: 4.3 #it #campus", u.String())

	noRating := University{ID: 4, Name: "NU", City: "Astana"}
	assert.Equal(t, "[4] NU (Astana) rating: -", noRating.String())
}

func TestReview_StarsAndString(t *testing.T) {
	assert.Equal(t, "***..", Review{Rating: 3}.Stars())
	assert.Equal(t, ".....", Review{Rating: -1}.Stars())
	assert.Equal(t, "*****", Review{Rating: 9}.Stars())

	r := Review{ID: 9, Rating: 5, Text: "great", UserName: "Ada", Tags: []string{"food"}}
	assert.Equal(t, "[9] ***** Ada: great #food", r.String())

	anon := Review{ID: 1, Rating: 1, Text: "meh", UniversityName: "NU"}
	assert.Equal(t, "[1] *.... anonymous: meh (NU)", anon.String())
}
