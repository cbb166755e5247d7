package artist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/pkg/pointer"
)

/*
TestUpdateInput_Apply reports image link changes only when the value differs.
*/
func TestUpdateInput_Apply(t *testing.T) {
	tests := []struct {
		name    string
		current string
		input   artist.UpdateInput
		changed bool
	}{
		{"not_provided", "https://images.example.com/a.jpg", artist.UpdateInput{Name: pointer.To("Guns N Petals")}, false},
		{"same_value", "https://images.example.com/a.jpg", artist.UpdateInput{ImageLink: pointer.To("https://images.example.com/a.jpg")}, false},
		{"new_value", "https://images.example.com/a.jpg", artist.UpdateInput{ImageLink: pointer.To("https://images.example.com/b.jpg")}, true},
		{"cleared", "https://images.example.com/a.jpg", artist.UpdateInput{ImageLink: pointer.To("")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &artist.Artist{Name: "Matt Quevedo", ImageLink: tt.current}
			assert.Equal(t, tt.changed, tt.input.Apply(a))
		})
	}
}

/*
TestCreateInput_Artist trims fields and defaults genres.
*/
func TestCreateInput_Artist(t *testing.T) {
	a := artist.CreateInput{Name: " The Wild Sax Band ", Genres: []string{" Jazz", "Classical "}}.Artist()

	assert.Equal(t, "The Wild Sax Band", a.Name)
	assert.Equal(t, []string{"Jazz", "Classical"}, a.Genres)
	assert.False(t, a.SeekingVenue)
}
