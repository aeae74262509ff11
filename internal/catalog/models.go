package catalog

// Album groups songs; songs reference it optionally.
type Album struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Year  int    `json:"year"`
	Songs []Song `json:"songs,omitempty"`
}

// Song is a catalog entry. Duration and AlbumID are optional.
type Song struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Performer string  `json:"performer"`
	Genre     string  `json:"genre"`
	Duration  *int    `json:"duration,omitempty"`
	AlbumID   *string `json:"albumId,omitempty"`
}

// SongSummary is the list view returned by GET /songs.
type SongSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}
