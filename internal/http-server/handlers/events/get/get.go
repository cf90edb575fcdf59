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

type EventGetter interface {
	GetEvent(ctx context.Context, id string) (*api.EventResponse, error)
	ListEvents(ctx context.Context) ([]*api.EventResponse, error)
}

type Response struct {
	response.Response
	Events []*api.EventResponse `json:"events,omitempty"`
	Event   *api.EventResponse   `json:"event,omitempty"`
}

func New(log *slog.Logger, getter EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.events.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			event, err := getter.GetEvent(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("resource not found")
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get event", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get event"))
				return
			}

			log.Info("Event retrieved", slog.String("id", id))
			render.JSON(w, r, Response{
				Event: event,
			})
			return
		}

		events, err := getter.ListEvents(r.Context())

		if err != nil {
			log.Error("Failed to list events", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list events"))
			return
		}

		log.Info("Events retrieved", slog.Int("count", len(events)))
		render.JSON(w, r, Response{
			Events: events,
		})
	}
}
