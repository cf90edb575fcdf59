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

type StudentSearcher interface {
	SearchStudents(ctx context.Context, query string) ([]*api.StudentResponse, error)
}

type Response struct {
	response.Response
	Students []*api.StudentResponse `json:"students"`
}

func New(log *slog.Logger, searcher StudentSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.students.search.New"

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

		students, err := searcher.SearchStudents(r.Context(), query)

		if err != nil {
			log.Error("Failed to search students", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to search students"))
			return
		}

		log.Info("Students searched", slog.String("query", query), slog.Int("count", len(students)))
		render.JSON(w, r, Response{
			Students: students,
		})
	}
}
