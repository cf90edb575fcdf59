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

type UserSearcher interface {
	SearchUsers(ctx context.Context, query string) ([]*api.UserResponse, error)
}

type Response struct {
	response.Response
	Users []*api.UserResponse `json:"users"`
}

func New(log *slog.Logger, searcher UserSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.users.search.New"

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

		users, err := searcher.SearchUsers(r.Context(), query)

		if err != nil {
			log.Error("Failed to search users", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to search users"))
			return
		}

		log.Info("Users searched", slog.String("query", query), slog.Int("count", len(users)))
		render.JSON(w, r, Response{
			Users: users,
		})
	}
}
