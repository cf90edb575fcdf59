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

type ProfessionalGetter interface {
	GetProfessional(ctx context.Context, id string) (*api.ProfessionalResponse, error)
	ListProfessionals(ctx context.Context) ([]*api.ProfessionalResponse, error)
}

type Response struct {
	response.Response
	Professionals []*api.ProfessionalResponse `json:"professionals,omitempty"`
	Professional   *api.ProfessionalResponse   `json:"professional,omitempty"`
}

func New(log *slog.Logger, getter ProfessionalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.professionals.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			professional, err := getter.GetProfessional(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("resource not found")
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get professional", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get professional"))
				return
			}

			log.Info("Professional retrieved", slog.String("id", id))
			render.JSON(w, r, Response{
				Professional: professional,
			})
			return
		}

		professionals, err := getter.ListProfessionals(r.Context())

		if err != nil {
			log.Error("Failed to list professionals", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list professionals"))
			return
		}

		log.Info("Professionals retrieved", slog.Int("count", len(professionals)))
		render.JSON(w, r, Response{
			Professionals: professionals,
		})
	}
}
