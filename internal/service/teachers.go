package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"school-service/api"
	"school-service/internal/models"
)

func teacherResponse(t *models.Teacher) *api.TeacherResponse {
	return &api.TeacherResponse{
		ID:       t.ID,
		Name:     t.Name,
		Subjects: t.Subjects,
		Email:    t.Email,
		Phone:    t.Phone,
		IsActive: t.IsActive,
	}
}

func teacherRecord(id string, req *api.TeacherRequest) models.Teacher {
	return models.Teacher{
		ID:       id,
		Name:     req.Name,
		Subjects: req.Subjects,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: *req.IsActive,
	}
}

func (s *Service) ListTeachers(ctx context.Context) ([]*api.TeacherResponse, error) {
	const op = "service.ListTeachers"

	teachers, err := s.store.ListTeachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*api.TeacherResponse, len(teachers))
	for i := range teachers {
		out[i] = teacherResponse(&teachers[i])
	}

	return out, nil
}

func (s *Service) GetTeacher(ctx context.Context, id string) (*api.TeacherResponse, error) {
	const op = "service.GetTeacher"

	teacher, err := s.store.GetTeacher(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return teacherResponse(teacher), nil
}

func (s *Service) SearchTeachers(ctx context.Context, query string) ([]*api.TeacherResponse, error) {
	const op = "service.SearchTeachers"

	teachers, err := s.store.SearchTeachers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*api.TeacherResponse, len(teachers))
	for i := range teachers {
		out[i] = teacherResponse(&teachers[i])
	}

	return out, nil
}

func (s *Service) CreateTeacher(ctx context.Context, req *api.TeacherRequest) (*api.TeacherResponse, error) {
	const op = "service.CreateTeacher"

	teacher := teacherRecord(uuid.NewString(), req)

	if err := s.store.CreateTeacher(ctx, teacher); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return teacherResponse(&teacher), nil
}

func (s *Service) UpdateTeacher(ctx context.Context, id string, req *api.TeacherRequest) (*api.TeacherResponse, error) {
	const op = "service.UpdateTeacher"

	teacher, err := s.store.UpdateTeacher(ctx, teacherRecord(id, req))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return teacherResponse(teacher), nil
}

func (s *Service) DeleteTeacher(ctx context.Context, id string) (*api.TeacherResponse, error) {
	const op = "service.DeleteTeacher"

	teacher, err := s.store.DeleteTeacher(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return teacherResponse(teacher), nil
}
