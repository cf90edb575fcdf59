package delete

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

type EventDeleter interface {
	DeleteEvent(ctx context.Context, id string) (*api.EventResponse, error)
}

type Response struct {
	response.Response
	Event *api.EventResponse `json:"event,omitempty"`
}

func New(log *slog.Logger, deleter EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.events.delete.New"

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

		event, err := deleter.DeleteEvent(r.Context(), id)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("resource not found")
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
			return
		}

		if err != nil {
			log.Error("Failed to delete event", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to delete event"))
			return
		}

		log.Info("Event deleted", slog.String("id", id))

		render.JSON(w, r, Response{
			Event: event,
		})
	}
}
