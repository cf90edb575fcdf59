package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"school-service/api"
	"school-service/pkg/response"
	"school-service/pkg/sl"
	"school-service/pkg/validation"
)

type AppointmentUpdater interface {
	UpdateAppointment(ctx context.Context, id string, req *api.AppointmentRequest) (*api.AppointmentResponse, error)
}

type Request struct {
	api.AppointmentRequest
}

type Response struct {
	response.Response
	Appointment *api.AppointmentResponse `json:"appointment,omitempty"`
}

func New(log *slog.Logger, updater AppointmentUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.appointments.update.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("id is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "id is required"))
			return
		}

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		log.Info("Request body decoded", slog.Any("request", req))

		if err := validation.Struct(req.AppointmentRequest); err != nil {
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

		appointment, err := updater.UpdateAppointment(r.Context(), id, &req.AppointmentRequest)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("resource not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
			return
		}

		if err != nil {
			log.Error("Failed to update appointment", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to update appointment"))
			return
		}

		log.Info("Appointment updated", slog.String("id", id))

		render.JSON(w, r, Response{
			Appointment: appointment,
		})
	}
}
