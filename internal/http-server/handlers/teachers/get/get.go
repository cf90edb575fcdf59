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

type TeacherGetter interface {
	GetTeacher(ctx context.Context, id string) (*api.TeacherResponse, error)
	ListTeachers(ctx context.Context) ([]*api.TeacherResponse, error)
}

type Response struct {
	response.Response
	Teachers []*api.TeacherResponse `json:"teachers,omitempty"`
	Teacher   *api.TeacherResponse   `json:"teacher,omitempty"`
}

func New(log *slog.Logger, getter TeacherGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.teachers.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			teacher, err := getter.GetTeacher(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("resource not found")
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get teacher", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get teacher"))
				return
			}

			log.Info("Teacher retrieved", slog.String("id", id))
			render.JSON(w, r, Response{
				Teacher: teacher,
			})
			return
		}

		teachers, err := getter.ListTeachers(r.Context())

		if err != nil {
			log.Error("Failed to list teachers", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list teachers"))
			return
		}

		log.Info("Teachers retrieved", slog.Int("count", len(teachers)))
		render.JSON(w, r, Response{
			Teachers: teachers,
		})
	}
}
