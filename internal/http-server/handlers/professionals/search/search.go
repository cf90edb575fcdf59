package search

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"school-service/api"
	"school-service/pkg/response"
	"school-service/pkg/sl"
)

type ProfessionalSearcher interface {
	SearchProfessionals(ctx context.Context, query string) ([]*api.ProfessionalResponse, error)
}

type Response struct {
	response.Response
	Professionals []*api.ProfessionalResponse `json:"professionals"`
}

func New(log *slog.Logger, searcher ProfessionalSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.professionals.search.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		query := chi.URLParam(r, "query")
		if query == "" {
			log.Error("query is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "query is required"))
			return
		}

		professionals, err := searcher.SearchProfessionals(r.Context(), query)

		if err != nil {
			log.Error("Failed to search professionals", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to search professionals"))
			return
		}

		log.Info("Professionals searched", slog.String("query", query), slog.Int("count", len(professionals)))
		render.JSON(w, r, Response{
			Professionals: professionals,
		})
	}
}
