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

type AppointmentSearcher interface {
	SearchAppointments(ctx context.Context, query string) ([]*api.AppointmentResponse, error)
}

type Response struct {
	response.Response
	Appointments []*api.AppointmentResponse `json:"appointments"`
}

func New(log *slog.Logger, searcher AppointmentSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.appointments.search.New"

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

		appointments, err := searcher.SearchAppointments(r.Context(), query)

		if err != nil {
			log.Error("Failed to search appointments", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to search appointments"))
			return
		}

		log.Info("Appointments searched", slog.String("query", query), slog.Int("count", len(appointments)))
		render.JSON(w, r, Response{
			Appointments: appointments,
		})
	}
}
