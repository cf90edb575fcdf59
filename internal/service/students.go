package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"school-service/api"
	"school-service/internal/models"
)

func studentResponse(st *models.Student) *api.StudentResponse {
	return &api.StudentResponse{
		ID:       st.ID,
		Name:     st.Name,
		Age:      st.Age,
		Phone:    st.Phone,
		IsActive: st.IsActive,
	}
}

func studentRecord(id string, req *api.StudentRequest) models.Student {
	return models.Student{
		ID:       id,
		Name:     req.Name,
		Age:      req.Age,
		Phone:    req.Phone,
		IsActive: *req.IsActive,
	}
}

func (s *Service) ListStudents(ctx context.Context) ([]*api.StudentResponse, error) {
	const op = "service.ListStudents"

	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*api.StudentResponse, len(students))
	for i := range students {
		out[i] = studentResponse(&students[i])
	}

	return out, nil
}

func (s *Service) GetStudent(ctx context.Context, id string) (*api.StudentResponse, error) {
	const op = "service.GetStudent"

	student, err := s.store.GetStudent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return studentResponse(student), nil
}

func (s *Service) SearchStudents(ctx context.Context, query string) ([]*api.StudentResponse, error) {
	const op = "service.SearchStudents"

	students, err := s.store.SearchStudents(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*api.StudentResponse, len(students))
	for i := range students {
		out[i] = studentResponse(&students[i])
	}

	return out, nil
}

func (s *Service) CreateStudent(ctx context.Context, req *api.StudentRequest) (*api.StudentResponse, error) {
	const op = "service.CreateStudent"

	student := studentRecord(uuid.NewString(), req)

	if err := s.store.CreateStudent(ctx, student); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return studentResponse(&student), nil
}

func (s *Service) UpdateStudent(ctx context.Context, id string, req *api.StudentRequest) (*api.StudentResponse, error) {
	const op = "service.UpdateStudent"

	student, err := s.store.UpdateStudent(ctx, studentRecord(id, req))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return studentResponse(student), nil
}

func (s *Service) DeleteStudent(ctx context.Context, id string) (*api.StudentResponse, error) {
	const op = "service.DeleteStudent"

	student, err := s.store.DeleteStudent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return studentResponse(student), nil
}
