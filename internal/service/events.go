package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"school-service/api"
	"school-service/internal/models"
)

func eventResponse(e *models.Event) *api.EventResponse {
	return &api.EventResponse{
		ID:          e.ID,
		Description: e.Description,
		Date:        e.Date,
		Comments:    e.Comments,
	}
}

func eventRecord(id string, req *api.EventRequest) models.Event {
	return models.Event{
		ID:          id,
		Description: req.Description,
		Date:        req.Date,
		Comments:    req.Comments,
	}
}

func (s *Service) ListEvents(ctx context.Context) ([]*api.EventResponse, error) {
	const op = "service.ListEvents"

	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*api.EventResponse, len(events))
	for i := range events {
		out[i] = eventResponse(&events[i])
	}

	return out, nil
}

func (s *Service) GetEvent(ctx context.Context, id string) (*api.EventResponse, error) {
	const op = "service.GetEvent"

	event, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return eventResponse(event), nil
}

func (s *Service) SearchEvents(ctx context.Context, query string) ([]*api.EventResponse, error) {
	const op = "service.SearchEvents"

	events, err := s.store.SearchEvents(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*api.EventResponse, len(events))
	for i := range events {
		out[i] = eventResponse(&events[i])
	}

	return out, nil
}

func (s *Service) CreateEvent(ctx context.Context, req *api.EventRequest) (*api.EventResponse, error) {
	const op = "service.CreateEvent"

	event := eventRecord(uuid.NewString(), req)

	if err := s.store.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return eventResponse(&event), nil
}

func (s *Service) UpdateEvent(ctx context.Context, id string, req *api.EventRequest) (*api.EventResponse, error) {
	const op = "service.UpdateEvent"

	event, err := s.store.UpdateEvent(ctx, eventRecord(id, req))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return eventResponse(event), nil
}

func (s *Service) DeleteEvent(ctx context.Context, id string) (*api.EventResponse, error) {
	const op = "service.DeleteEvent"

	event, err := s.store.DeleteEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return eventResponse(event), nil
}
