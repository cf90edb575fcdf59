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

type UserGetter interface {
	GetUser(ctx context.Context, id string) (*api.UserResponse, error)
	ListUsers(ctx context.Context) ([]*api.UserResponse, error)
}

type Response struct {
	response.Response
	Users []*api.UserResponse `json:"users,omitempty"`
	User   *api.UserResponse   `json:"user,omitempty"`
}

func New(log *slog.Logger, getter UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.users.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			user, err := getter.GetUser(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("resource not found")
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "resource not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get user", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get user"))
				return
			}

			log.Info("User retrieved", slog.String("id", id))
			render.JSON(w, r, Response{
				User: user,
			})
			return
		}

		users, err := getter.ListUsers(r.Context())

		if err != nil {
			log.Error("Failed to list users", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list users"))
			return
		}

		log.Info("Users retrieved", slog.Int("count", len(users)))
		render.JSON(w, r, Response{
			Users: users,
		})
	}
}
