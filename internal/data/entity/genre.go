package entity

import "strings"

type Genre string

const (
	GenreAction    Genre = "Action"
	GenreAdventure Genre = "Adventure"
	GenreComedy    Genre = "Comedy"
	GenreDrama     Genre = "Drama"
	GenreFantasy   Genre = "Fantasy"
	GenreHorror    Genre = "Horror"
	GenreThriller  Genre = "Thriller"
	GenreCrime     Genre = "Crime"
	GenreSuspense  Genre = "Suspense"
	GenreSciFi     Genre = "Sci-Fi"
)

// Genres lists every accepted genre in declaration order.
var Genres = []Genre{
	GenreAction,
	GenreAdventure,
	GenreComedy,
	GenreDrama,
	GenreFantasy,
	GenreHorror,
	GenreThriller,
	GenreCrime,
	GenreSuspense,
	GenreSciFi,
}

// Matches reports whether name equals the genre ignoring case.
func (g Genre) Matches(name string) bool {
	return strings.EqualFold(string(g), name)
}
