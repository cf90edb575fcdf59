package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"school-service/api"
	"school-service/pkg/response"
	"school-service/pkg/sl"
	"school-service/pkg/validation"
)

type ProfessionalCreator interface {
	CreateProfessional(ctx context.Context, req *api.ProfessionalRequest) (*api.ProfessionalResponse, error)
}

type Request struct {
	api.ProfessionalRequest
}

type Response struct {
	response.Response
	Professional *api.ProfessionalResponse `json:"professional,omitempty"`
}

func New(log *slog.Logger, creator ProfessionalCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.professionals.create.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		log.Info("Request body decoded", slog.Any("request", req))

		if err := validation.Struct(req.ProfessionalRequest); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("Invalid request", sl.Err(err))
				w.WriteHeader(http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}

			log.Error("Failed to validate request", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "invalid request"))
			return
		}

		professional, err := creator.CreateProfessional(r.Context(), &req.ProfessionalRequest)

		if err != nil {
			log.Error("Failed to create professional", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to create professional"))
			return
		}

		log.Info("Professional created", slog.String("id", professional.ID))

		render.JSON(w, r, Response{
			Professional: professional,
		})
	}
}
