package models

// Movie is the canonical record every catalog consumer receives, whatever field
// names the upstream search API used.
type Movie struct {
	ID           string  `json:"id" example:"tt0848228"`
	Title        string  `json:"title" example:"The Avengers"`
	Name         string  `json:"name" example:"The Avengers"`
	PosterPath   string  `json:"poster_path" example:"https://m.media-amazon.com/images/M/poster.jpg"`
	BackdropPath string  `json:"backdrop_path" example:"https://m.media-amazon.com/images/M/poster.jpg"`
	Overview     string  `json:"overview" example:"Earth's mightiest heroes must come together..."`
	VoteAverage  float64 `json:"vote_average" example:"8.0"`
	ReleaseDate  string  `json:"release_date" example:"2012"`
	Type         string  `json:"type" example:"movie"`
	Genre        string  `json:"genre" example:"Action, Sci-Fi"`
	IMDBID       string  `json:"imdb_id" example:"tt0848228"`
	Duration     string  `json:"duration" example:"2h"`
	Maturity     string  `json:"maturity" example:"13+"`
}

// Provenance tells callers whether a list came from the search API or from the
// built-in sample catalog.
type Provenance string

const (
	SourceLive     Provenance = "live"
	SourceFallback Provenance = "fallback"
)

type MovieList struct {
	Movies []Movie    `json:"movies"`
	Source Provenance `json:"source" example:"live"`
	// Reason is set when Source is fallback.
	Reason string `json:"reason,omitempty" example:"fetch failed"`
	// Container is the payload key the records were extracted from, empty for
	// bare arrays and passthrough payloads.
	Container string `json:"container,omitempty" example:"Search"`
}

func (l *MovieList) IsFallback() bool {
	return l.Source == SourceFallback
}

// Category is one browse row on the home screen.
type Category struct {
	Slug  string `json:"slug" example:"action"`
	Title string `json:"title" example:"Action Movies"`
	Term  string `json:"term" example:"action"`
}
