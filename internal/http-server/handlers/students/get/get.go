package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"school-service/api"
	"school-service/pkg/response"
	"school-service/pkg/sl"
)

type StudentGetter interface {
	GetStudent(ctx context.Context, id string) (*api.StudentResponse, error)
	ListStudents(ctx context.Context) ([]*api.StudentResponse, error)
}

type Response struct {
	response.Response
	Students []*api.StudentResponse `json:"students,omitempty"`
	Student   *api.StudentResponse   `json:"student,omitempty"`
}

func New(log *slog.Logger, getter StudentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.students.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			student, err := getter.GetStudent(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("resource not found")
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get student", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get student"))
				return
			}

			log.Info("Student retrieved", slog.String("id", id))
			render.JSON(w, r, Response{
				Student: student,
			})
			return
		}

		students, err := getter.ListStudents(r.Context())

		if err != nil {
			log.Error("Failed to list students", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list students"))
			return
		}

		log.Info("Students retrieved", slog.Int("count", len(students)))
		render.JSON(w, r, Response{
			Students: students,
		})
	}
}
