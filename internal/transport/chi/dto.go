package chi

import (
	"github.com/kailas-cloud/cinedex/internal/domain/movie"
	movieuc "github.com/kailas-cloud/cinedex/internal/usecase/movie"
)

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Error codes returned in the error envelope.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeMovieNotFound    ErrorCode = "movie_not_found"
	ErrorCodeEmptyCatalog     ErrorCode = "empty_catalog"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeMethodNotAllowed ErrorCode = "method_not_allowed"
	ErrorCodeRateLimited      ErrorCode = "rate_limited"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Movie is the JSON shape of one catalog record.
type Movie struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Category string `json:"category"`
	Rating   string `json:"rating"`
	Overview string `json:"overview"`
}

// ChatbotResponse is the keyword search reply.
type ChatbotResponse struct {
	Respuesta string  `json:"respuesta"`
	Peliculas []Movie `json:"peliculas"`
}

// HealthResponse is the /health body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func movieToResponse(m movie.Movie) Movie {
	return Movie{
		ID:       m.ID(),
		Title:    m.Title(),
		Year:     m.Year(),
		Category: m.Category(),
		Rating:   m.Rating(),
		Overview: m.Overview(),
	}
}

// moviesToResponse never returns nil so empty lists encode as [].
func moviesToResponse(ms []movie.Movie) []Movie {
	out := make([]Movie, len(ms))
	for i, m := range ms {
		out[i] = movieToResponse(m)
	}
	return out
}

func answerToResponse(a movieuc.Answer) ChatbotResponse {
	return ChatbotResponse{
		Respuesta: a.Message,
		Peliculas: moviesToResponse(a.Results),
	}
}
