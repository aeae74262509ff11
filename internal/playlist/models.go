package playlist

import (
	"time"
)

// Playlist is the metadata row; songs and activities are modelled separately.
type Playlist struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"` // owner's display name, joined in
}

// Song is the member view of a catalog song inside a playlist listing.
type Song struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// PlaylistWithSongs is the response shape of GET /playlists/{id}/songs.
type PlaylistWithSongs struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Songs    []Song `json:"songs"`
}

// Activity is one immutable audit entry. Username and Title are copied at
// write time so history stays accurate after later renames.
type Activity struct {
	Username string    `json:"username"`
	Title    string    `json:"title"`
	Action   string    `json:"action"`
	Time     time.Time `json:"time"`
}

const (
	ActionAdd    = "add"
	ActionDelete = "delete"
)
