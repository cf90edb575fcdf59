package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"school-service/api"
	"school-service/internal/models"
)

func userResponse(u *models.User) *api.UserResponse {
	return &api.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Login:     u.Login,
		Privilege: u.Privilege,
		IsActive:  u.IsActive,
	}
}

// userRecord hashes the password before it reaches any store; the plain
// text never leaves the request.
func userRecord(id string, req *api.UserRequest) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	return models.User{
		ID:           id,
		Name:         req.Name,
		Email:        req.Email,
		Login:        req.Login,
		Privilege:    req.Privilege,
		PasswordHash: string(hash),
		IsActive:     *req.IsActive,
	}, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*api.UserResponse, error) {
	const op = "service.ListUsers"

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*api.UserResponse, len(users))
	for i := range users {
		out[i] = userResponse(&users[i])
	}

	return out, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*api.UserResponse, error) {
	const op = "service.GetUser"

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return userResponse(user), nil
}

func (s *Service) SearchUsers(ctx context.Context, query string) ([]*api.UserResponse, error) {
	const op = "service.SearchUsers"

	users, err := s.store.SearchUsers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*api.UserResponse, len(users))
	for i := range users {
		out[i] = userResponse(&users[i])
	}

	return out, nil
}

func (s *Service) CreateUser(ctx context.Context, req *api.UserRequest) (*api.UserResponse, error) {
	const op = "service.CreateUser"

	user, err := userRecord(uuid.NewString(), req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return userResponse(&user), nil
}

func (s *Service) UpdateUser(ctx context.Context, id string, req *api.UserRequest) (*api.UserResponse, error) {
	const op = "service.UpdateUser"

	record, err := userRecord(id, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.store.UpdateUser(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return userResponse(user), nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) (*api.UserResponse, error) {
	const op = "service.DeleteUser"

	user, err := s.store.DeleteUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return userResponse(user), nil
}
