package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movies-api/internal/data/entity"
	"movies-api/internal/data/repository"
	"movies-api/internal/dto/response"
	"movies-api/internal/usecase"
	"movies-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type testServer struct {
	router http.Handler
	repo   *repository.Repository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	seed := []entity.Movie{
		{ID: "m1", Title: "Alien", Year: 1979, Duration: 117, Rate: 8.5, Poster: "https://example.com/a.jpg", Genre: []entity.Genre{entity.GenreHorror, entity.GenreSciFi}},
		{ID: "m2", Title: "Heat", Year: 1995, Duration: 170, Rate: 8.3, Poster: "https://example.com/b.jpg", Genre: []entity.Genre{entity.GenreAction, entity.GenreCrime}},
		{ID: "m3", Title: "Up", Year: 2009, Duration: 96, Rate: 8.2, Poster: "https://example.com/c.jpg", Genre: []entity.Genre{entity.GenreAdventure}},
	}
	repo := repository.NewRepository(seed, zap.NewNop())
	h := NewHandler(usecase.NewService(repo, zap.NewNop()), zap.NewNop())

	r := chi.NewRouter()
	r.Get("/movies", h.Movie.GetMovies)
	r.Post("/movies", h.Movie.CreateMovie)
	r.Get("/movies/{id}", h.Movie.GetMovieByID)
	r.Patch("/movies/{id}", h.Movie.UpdateMovie)
	r.Delete("/movies/{id}", h.Movie.DeleteMovie)

	return &testServer{router: r, repo: repo}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) count(t *testing.T) int {
	t.Helper()
	return s.repo.Movie.Count(context.Background())
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

const newMovie = `{"title":"Jaws","year":1975,"duration":124,"poster":"https://example.com/jaws.jpg","genre":["Thriller","Adventure"]}`

func TestGetMovies(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/movies", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	movies := decode[[]response.MovieResponse](t, rec)
	if len(movies) != 3 || movies[0].ID != "m1" || movies[1].ID != "m2" || movies[2].ID != "m3" {
		t.Errorf("movies = %+v", movies)
	}
}

func TestGetMovies_GenreFilter(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/movies?genre=action", "")
	movies := decode[[]response.MovieResponse](t, rec)
	if len(movies) != 1 || movies[0].ID != "m2" {
		t.Errorf("movies = %+v", movies)
	}

	rec = s.do(t, http.MethodGet, "/movies?genre=Western", "")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("status = %d body = %s, want 200 []", rec.Code, rec.Body.String())
	}
}

func TestGetMovieByID(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/movies/m3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	movie := decode[response.MovieResponse](t, rec)
	if movie.Title != "Up" || movie.Genre[0] != "Adventure" {
		t.Errorf("movie = %+v", movie)
	}

	rec = s.do(t, http.MethodGet, "/movies/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if msg := decode[utils.MessageResponse](t, rec); msg.Message != "movie not found" {
		t.Errorf("message = %q", msg.Message)
	}
}

func TestCreateMovie(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/movies", newMovie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	created := decode[response.MovieResponse](t, rec)
	if created.ID == "" || created.Rate != 5.5 || created.Title != "Jaws" {
		t.Errorf("created = %+v", created)
	}

	rec = s.do(t, http.MethodGet, "/movies/"+created.ID, "")
	if got := decode[response.MovieResponse](t, rec); got.ID != created.ID || got.Title != created.Title {
		t.Errorf("get after create = %+v", got)
	}

	list := decode[[]response.MovieResponse](t, s.do(t, http.MethodGet, "/movies", ""))
	if list[len(list)-1].ID != created.ID {
		t.Error("created movie should be last")
	}
}

func TestCreateMovie_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing title", `{"year":1975,"duration":124,"poster":"https://example.com/jaws.jpg","genre":["Drama"]}`, "title"},
		{"bad year", `{"title":"x","year":1800,"duration":124,"poster":"https://example.com/jaws.jpg","genre":["Drama"]}`, "year"},
		{"empty body", ``, "title"},
		{"array body", `[]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			rec := s.do(t, http.MethodPost, "/movies", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			resp := decode[utils.ValidationResponse](t, rec)
			if len(resp.Error) == 0 || resp.Error[0].Field != tt.wantField {
				t.Errorf("error = %+v, want first field %q", resp.Error, tt.wantField)
			}
			if s.count(t) != 3 {
				t.Errorf("count = %d, want 3", s.count(t))
			}
		})
	}
}

func TestCreateMovie_MalformedJSON(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/movies", `{"title":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if msg := decode[utils.MessageResponse](t, rec); !strings.Contains(msg.Message, "badly-formed JSON") {
		t.Errorf("message = %q", msg.Message)
	}
}

func TestUpdateMovie(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPatch, "/movies/m2", `{"rate":9.0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	updated := decode[response.MovieResponse](t, rec)
	if updated.Rate != 9.0 || updated.Title != "Heat" || updated.Year != 1995 || updated.Duration != 170 || len(updated.Genre) != 2 {
		t.Errorf("updated = %+v", updated)
	}

	list := decode[[]response.MovieResponse](t, s.do(t, http.MethodGet, "/movies", ""))
	if list[1].ID != "m2" || list[1].Rate != 9.0 {
		t.Errorf("list = %+v", list)
	}
}

func TestUpdateMovie_Invalid(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPatch, "/movies/m1", `{"year":1800}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if resp := decode[utils.ValidationResponse](t, rec); len(resp.Error) != 1 || resp.Error[0].Field != "year" {
		t.Errorf("error = %+v", resp.Error)
	}

	movie := decode[response.MovieResponse](t, s.do(t, http.MethodGet, "/movies/m1", ""))
	if movie.Year != 1979 {
		t.Errorf("Year = %d, want unchanged 1979", movie.Year)
	}
}

func TestUpdateMovie_NotFound(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPatch, "/movies/nope", `{"rate":2}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if msg := decode[utils.MessageResponse](t, rec); msg.Message != "movie not found" {
		t.Errorf("message = %q", msg.Message)
	}
}

func TestDeleteMovie(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodDelete, "/movies/m1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if msg := decode[utils.MessageResponse](t, rec); msg.Message != "movie deleted" {
		t.Errorf("message = %q", msg.Message)
	}
	if s.count(t) != 2 {
		t.Errorf("count = %d, want 2", s.count(t))
	}

	if rec := s.do(t, http.MethodGet, "/movies/m1", ""); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}

	rec = s.do(t, http.MethodDelete, "/movies/m1", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if s.count(t) != 2 {
		t.Errorf("count = %d, want 2", s.count(t))
	}
}

func TestRoundTripRestoresStore(t *testing.T) {
	s := newTestServer(t)
	before := s.do(t, http.MethodGet, "/movies", "").Body.String()

	created := decode[response.MovieResponse](t, s.do(t, http.MethodPost, "/movies", newMovie))
	if rec := s.do(t, http.MethodGet, "/movies/"+created.ID, ""); rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	if rec := s.do(t, http.MethodDelete, "/movies/"+created.ID, ""); rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if rec := s.do(t, http.MethodGet, "/movies/"+created.ID, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", rec.Code)
	}

	after := s.do(t, http.MethodGet, "/movies", "").Body.String()
	if before != after {
		t.Errorf("store changed:\nbefore %s\nafter  %s", before, after)
	}
}
