package movie

// Movie is a single catalog record (immutable value object).
type Movie struct {
	id       string
	title    string
	year     int
	category string
	rating   string
	overview string
}

// New creates a Movie. Empty strings stand for missing values, year 0 for an unknown year.
func New(id, title string, year int, category, rating, overview string) Movie {
	return Movie{
		id:       id,
		title:    title,
		year:     year,
		category: category,
		rating:   rating,
		overview: overview,
	}
}

// ID returns the show identifier.
func (m Movie) ID() string { return m.id }

// Title returns the title.
func (m Movie) Title() string { return m.title }

// Year returns the release year.
func (m Movie) Year() int { return m.year }

// Category returns the comma-separated genre tags.
func (m Movie) Category() string { return m.category }

// Rating returns the audience rating (e.g. "TV-MA").
func (m Movie) Rating() string { return m.rating }

// Overview returns the description.
func (m Movie) Overview() string { return m.overview }
