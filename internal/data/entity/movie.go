package entity

type Movie struct {
	ID       string
	Title    string
	Year     int
	Duration int
	Rate     float64
	Poster   string
	Genre    []Genre
}

// HasGenre reports whether any of the movie's genres matches name, case-insensitively.
func (m *Movie) HasGenre(name string) bool {
	for _, g := range m.Genre {
		if g.Matches(name) {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with m.
func (m *Movie) Clone() Movie {
	c := *m
	c.Genre = make([]Genre, len(m.Genre))
	copy(c.Genre, m.Genre)
	return c
}
