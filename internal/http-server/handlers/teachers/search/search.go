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

type TeacherSearcher interface {
	SearchTeachers(ctx context.Context, query string) ([]*api.TeacherResponse, error)
}

type Response struct {
	response.Response
	Teachers []*api.TeacherResponse `json:"teachers"`
}

func New(log *slog.Logger, searcher TeacherSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.teachers.search.New"

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

		teachers, err := searcher.SearchTeachers(r.Context(), query)

		if err != nil {
			log.Error("Failed to search teachers", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to search teachers"))
			return
		}

		log.Info("Teachers searched", slog.String("query", query), slog.Int("count", len(teachers)))
		render.JSON(w, r, Response{
			Teachers: teachers,
		})
	}
}
