package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"school-service/api"
	"school-service/internal/models"
)

func appointmentResponse(a *models.Appointment) *api.AppointmentResponse {
	return &api.AppointmentResponse{
		ID:           a.ID,
		Specialty:    a.Specialty,
		Comments:     a.Comments,
		Date:         a.Date,
		Student:      a.Student,
		Professional: a.Professional,
	}
}

func appointmentRecord(id string, req *api.AppointmentRequest) models.Appointment {
	return models.Appointment{
		ID:           id,
		Specialty:    req.Specialty,
		Comments:     req.Comments,
		Date:         req.Date,
		Student:      req.Student,
		Professional: req.Professional,
	}
}

func (s *Service) ListAppointments(ctx context.Context) ([]*api.AppointmentResponse, error) {
	const op = "service.ListAppointments"

	appointments, err := s.store.ListAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*api.AppointmentResponse, len(appointments))
	for i := range appointments {
		out[i] = appointmentResponse(&appointments[i])
	}

	return out, nil
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*api.AppointmentResponse, error) {
	const op = "service.GetAppointment"

	appointment, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return appointmentResponse(appointment), nil
}

func (s *Service) SearchAppointments(ctx context.Context, query string) ([]*api.AppointmentResponse, error) {
	const op = "service.SearchAppointments"

	appointments, err := s.store.SearchAppointments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*api.AppointmentResponse, len(appointments))
	for i := range appointments {
		out[i] = appointmentResponse(&appointments[i])
	}

	return out, nil
}

func (s *Service) CreateAppointment(ctx context.Context, req *api.AppointmentRequest) (*api.AppointmentResponse, error) {
	const op = "service.CreateAppointment"

	appointment := appointmentRecord(uuid.NewString(), req)

	if err := s.store.CreateAppointment(ctx, appointment); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return appointmentResponse(&appointment), nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id string, req *api.AppointmentRequest) (*api.AppointmentResponse, error) {
	const op = "service.UpdateAppointment"

	appointment, err := s.store.UpdateAppointment(ctx, appointmentRecord(id, req))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return appointmentResponse(appointment), nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) (*api.AppointmentResponse, error) {
	const op = "service.DeleteAppointment"

	appointment, err := s.store.DeleteAppointment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return appointmentResponse(appointment), nil
}
