package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"

	appointmentCreate "school-service/internal/http-server/handlers/appointments/create"
	appointmentDelete "school-service/internal/http-server/handlers/appointments/delete"
	appointmentGet "school-service/internal/http-server/handlers/appointments/get"
	appointmentSearch "school-service/internal/http-server/handlers/appointments/search"
	appointmentUpdate "school-service/internal/http-server/handlers/appointments/update"
	eventCreate "school-service/internal/http-server/handlers/events/create"
	eventDelete "school-service/internal/http-server/handlers/events/delete"
	eventGet "school-service/internal/http-server/handlers/events/get"
	eventSearch "school-service/internal/http-server/handlers/events/search"
	eventUpdate "school-service/internal/http-server/handlers/events/update"
	professionalCreate "school-service/internal/http-server/handlers/professionals/create"
	professionalDelete "school-service/internal/http-server/handlers/professionals/delete"
	professionalGet "school-service/internal/http-server/handlers/professionals/get"
	professionalSearch "school-service/internal/http-server/handlers/professionals/search"
	professionalUpdate "school-service/internal/http-server/handlers/professionals/update"
	studentCreate "school-service/internal/http-server/handlers/students/create"
	studentDelete "school-service/internal/http-server/handlers/students/delete"
	studentGet "school-service/internal/http-server/handlers/students/get"
	studentSearch "school-service/internal/http-server/handlers/students/search"
	studentUpdate "school-service/internal/http-server/handlers/students/update"
	teacherCreate "school-service/internal/http-server/handlers/teachers/create"
	teacherDelete "school-service/internal/http-server/handlers/teachers/delete"
	teacherGet "school-service/internal/http-server/handlers/teachers/get"
	teacherSearch "school-service/internal/http-server/handlers/teachers/search"
	teacherUpdate "school-service/internal/http-server/handlers/teachers/update"
	userCreate "school-service/internal/http-server/handlers/users/create"
	userDelete "school-service/internal/http-server/handlers/users/delete"
	userGet "school-service/internal/http-server/handlers/users/get"
	userSearch "school-service/internal/http-server/handlers/users/search"
	userUpdate "school-service/internal/http-server/handlers/users/update"
	svc "school-service/internal/service"
	mwLogger "school-service/pkg/middleware/mwlogger"
)

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func NewRouter(log *slog.Logger, service *svc.Service) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwLogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(CORS)

	// Teachers
	router.Get("/teachers", teacherGet.New(log, service))
	router.Get("/teachers/{id}", teacherGet.New(log, service))
	router.Get("/teachers/search/{query}", teacherSearch.New(log, service))
	router.Post("/teachers", teacherCreate.New(log, service))
	router.Put("/teachers/{id}", teacherUpdate.New(log, service))
	router.Delete("/teachers/{id}", teacherDelete.New(log, service))

	// Students
	router.Get("/students", studentGet.New(log, service))
	router.Get("/students/{id}", studentGet.New(log, service))
	router.Get("/students/search/{query}", studentSearch.New(log, service))
	router.Post("/students", studentCreate.New(log, service))
	router.Put("/students/{id}", studentUpdate.New(log, service))
	router.Delete("/students/{id}", studentDelete.New(log, service))

	// Professionals
	router.Get("/professionals", professionalGet.New(log, service))
	router.Get("/professionals/{id}", professionalGet.New(log, service))
	router.Get("/professionals/search/{query}", professionalSearch.New(log, service))
	router.Post("/professionals", professionalCreate.New(log, service))
	router.Put("/professionals/{id}", professionalUpdate.New(log, service))
	router.Delete("/professionals/{id}", professionalDelete.New(log, service))

	// Events
	router.Get("/events", eventGet.New(log, service))
	router.Get("/events/{id}", eventGet.New(log, service))
	router.Get("/events/search/{query}", eventSearch.New(log, service))
	router.Post("/events", eventCreate.New(log, service))
	router.Put("/events/{id}", eventUpdate.New(log, service))
	router.Delete("/events/{id}", eventDelete.New(log, service))

	// Appointments
	router.Get("/appointments", appointmentGet.New(log, service))
	router.Get("/appointments/{id}", appointmentGet.New(log, service))
	router.Get("/appointments/search/{query}", appointmentSearch.New(log, service))
	router.Post("/appointments", appointmentCreate.New(log, service))
	router.Put("/appointments/{id}", appointmentUpdate.New(log, service))
	router.Delete("/appointments/{id}", appointmentDelete.New(log, service))

	// Users
	router.Get("/users", userGet.New(log, service))
	router.Get("/users/{id}", userGet.New(log, service))
	router.Get("/users/search/{query}", userSearch.New(log, service))
	router.Post("/users", userCreate.New(log, service))
	router.Put("/users/{id}", userUpdate.New(log, service))
	router.Delete("/users/{id}", userDelete.New(log, service))

	return router
}
