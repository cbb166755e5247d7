package schema

// ArtistTable represents the 'artists' table
type ArtistTable struct {
	Table              string
	ID                 string
	Name               string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Genres             string
	Website            string
	SeekingVenue       string
	SeekingDescription string
}

// Artists is the schema definition for artists
var Artists = ArtistTable{
	Table:              "artists",
	ID:                 "id",
	Name:               "name",
	City:               "city",
	State:              "state",
	Phone:              "phone",
	ImageLink:          "image_link",
	FacebookLink:       "facebook_link",
	Genres:             "genres",
	Website:            "website",
	SeekingVenue:       "seeking_venue",
	SeekingDescription: "seeking_description",
}

func (t ArtistTable) Columns() []string {
	return []string{t.ID, t.Name, t.City, t.State, t.Phone, t.ImageLink, t.FacebookLink, t.Genres, t.Website, t.SeekingVenue, t.SeekingDescription}
}
