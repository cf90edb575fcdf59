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

type EventSearcher interface {
	SearchEvents(ctx context.Context, query string) ([]*api.EventResponse, error)
}

type Response struct {
	response.Response
	Events []*api.EventResponse `json:"events"`
}

func New(log *slog.Logger, searcher EventSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.events.search.New"

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

		events, err := searcher.SearchEvents(r.Context(), query)

		if err != nil {
			log.Error("Failed to search events", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to search events"))
			return
		}

		log.Info("Events searched", slog.String("query", query), slog.Int("count", len(events)))
		render.JSON(w, r, Response{
			Events: events,
		})
	}
}
