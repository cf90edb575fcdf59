package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"school-service/api"
	"school-service/internal/models"
)

func professionalResponse(p *models.Professional) *api.ProfessionalResponse {
	return &api.ProfessionalResponse{
		ID:        p.ID,
		Name:      p.Name,
		Specialty: p.Specialty,
		Email:     p.Email,
		Phone:     p.Phone,
		IsActive:  p.IsActive,
	}
}

func professionalRecord(id string, req *api.ProfessionalRequest) models.Professional {
	return models.Professional{
		ID:        id,
		Name:      req.Name,
		Specialty: req.Specialty,
		Email:     req.Email,
		Phone:     req.Phone,
		IsActive:  *req.IsActive,
	}
}

func (s *Service) ListProfessionals(ctx context.Context) ([]*api.ProfessionalResponse, error) {
	const op = "service.ListProfessionals"

	professionals, err := s.store.ListProfessionals(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*api.ProfessionalResponse, len(professionals))
	for i := range professionals {
		out[i] = professionalResponse(&professionals[i])
	}

	return out, nil
}

func (s *Service) GetProfessional(ctx context.Context, id string) (*api.ProfessionalResponse, error) {
	const op = "service.GetProfessional"

	professional, err := s.store.GetProfessional(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return professionalResponse(professional), nil
}

func (s *Service) SearchProfessionals(ctx context.Context, query string) ([]*api.ProfessionalResponse, error) {
	const op = "service.SearchProfessionals"

	professionals, err := s.store.SearchProfessionals(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*api.ProfessionalResponse, len(professionals))
	for i := range professionals {
		out[i] = professionalResponse(&professionals[i])
	}

	return out, nil
}

func (s *Service) CreateProfessional(ctx context.Context, req *api.ProfessionalRequest) (*api.ProfessionalResponse, error) {
	const op = "service.CreateProfessional"

	professional := professionalRecord(uuid.NewString(), req)

	if err := s.store.CreateProfessional(ctx, professional); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return professionalResponse(&professional), nil
}

func (s *Service) UpdateProfessional(ctx context.Context, id string, req *api.ProfessionalRequest) (*api.ProfessionalResponse, error) {
	const op = "service.UpdateProfessional"

	professional, err := s.store.UpdateProfessional(ctx, professionalRecord(id, req))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return professionalResponse(professional), nil
}

func (s *Service) DeleteProfessional(ctx context.Context, id string) (*api.ProfessionalResponse, error) {
	const op = "service.DeleteProfessional"

	professional, err := s.store.DeleteProfessional(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return professionalResponse(professional), nil
}
