package cinedex

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/movie"
	movieuc "github.com/kailas-cloud/cinedex/internal/usecase/movie"
)

type mockMovieUC struct {
	listAllFn  func(ctx context.Context) ([]movie.Movie, error)
	getFn      func(ctx context.Context, id string) (movie.Movie, error)
	categoryFn func(ctx context.Context, category string) ([]movie.Movie, error)
	searchFn   func(ctx context.Context, query string) (movieuc.Answer, error)
}

func (m *mockMovieUC) ListAll(ctx context.Context) ([]movie.Movie, error) { return m.listAllFn(ctx) }

func (m *mockMovieUC) Get(ctx context.Context, id string) (movie.Movie, error) { return m.getFn(ctx, id) }

func (m *mockMovieUC) ListByCategory(ctx context.Context, category string) ([]movie.Movie, error) {
	return m.categoryFn(ctx, category)
}

func (m *mockMovieUC) Search(ctx context.Context, query string) (movieuc.Answer, error) {
	return m.searchFn(ctx, query)
}

func TestMovieService_ConvertsDomain(t *testing.T) {
	dm := movie.New("s8", "Sankofa", 1993, "Dramas, Independent Movies", "TV-MA", "A model is transported back in time.")
	svc := &MovieService{svc: &mockMovieUC{
		getFn: func(_ context.Context, id string) (movie.Movie, error) {
			if id != "s8" {
				t.Errorf("id = %q", id)
			}
			return dm, nil
		},
	}}

	got, err := svc.Get(context.Background(), "s8")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := Movie{
		ID: "s8", Title: "Sankofa", Year: 1993, Category: "Dramas, Independent Movies",
		Rating: "TV-MA", Overview: "A model is transported back in time.",
	}
	if got != want {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
	if movieToDomain(want) != dm {
		t.Error("movieToDomain must invert movieFromDomain")
	}
}

func TestMovieService_WrapsErrors(t *testing.T) {
	svc := &MovieService{svc: &mockMovieUC{
		listAllFn: func(context.Context) ([]movie.Movie, error) { return nil, domain.ErrEmptyCatalog },
		categoryFn: func(context.Context, string) ([]movie.Movie, error) {
			return nil, context.Canceled
		},
	}}

	if _, err := svc.All(context.Background()); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("All: expected ErrEmptyCatalog, got %v", err)
	}
	if _, err := svc.ByCategory(context.Background(), "drama"); !errors.Is(err, context.Canceled) {
		t.Errorf("ByCategory: expected context.Canceled, got %v", err)
	}
}

func TestClient_ChatbotWrapsErrors(t *testing.T) {
	c := &Client{movieSvc: &mockMovieUC{
		searchFn: func(context.Context, string) (movieuc.Answer, error) {
			return movieuc.Answer{}, context.DeadlineExceeded
		},
	}}

	if _, err := c.Chatbot(context.Background(), "drama"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
}
