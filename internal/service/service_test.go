package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"school-service/api"
	"school-service/internal/storage/jsonfile"
	"school-service/pkg/response"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	store, err := jsonfile.New(t.TempDir())
	require.NoError(t, err)

	return NewService(store)
}

func boolPtr(b bool) *bool { return &b }

func TestService_CreateAssignsUniqueIDs(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		student, err := service.CreateStudent(ctx, &api.StudentRequest{
			Name: "Pedro", Age: 12, Phone: "555-0102", IsActive: boolPtr(true),
		})
		require.NoError(t, err)
		require.NotEmpty(t, student.ID)
		assert.False(t, seen[student.ID], "id %q assigned twice", student.ID)
		seen[student.ID] = true
	}
}

func TestService_CreateThenGetRoundTrip(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	date := time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC)

	created, err := service.CreateEvent(ctx, &api.EventRequest{
		Description: "Staff sync",
		Date:        date,
		Comments:    "Q2 goals",
	})
	require.NoError(t, err)

	got, err := service.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestService_UpdateUnknownID(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	_, err := service.UpdateAppointment(ctx, "missing", &api.AppointmentRequest{
		Specialty:    "speech therapy",
		Comments:     "first session",
		Date:         time.Now(),
		Student:      "Pedro Alves",
		Professional: "Dr. Lima",
	})
	assert.ErrorIs(t, err, response.ErrNotFound)

	appointments, err := service.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Empty(t, appointments)
}

func TestService_UpdateKeepsID(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	created, err := service.CreateProfessional(ctx, &api.ProfessionalRequest{
		Name: "Dr. Lima", Specialty: "psychology", Email: "lima@school.test", Phone: "555-0103", IsActive: boolPtr(true),
	})
	require.NoError(t, err)

	updated, err := service.UpdateProfessional(ctx, created.ID, &api.ProfessionalRequest{
		Name: "Dr. Ana Lima", Specialty: "neuropsychology", Email: "ana@school.test", Phone: "555-0104", IsActive: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Dr. Ana Lima", updated.Name)
	assert.False(t, updated.IsActive)
}

func TestService_DeleteReturnsRemovedRecord(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	created, err := service.CreateTeacher(ctx, &api.TeacherRequest{
		Name: "Maria", Subjects: []string{"math"}, Email: "maria@school.test", Phone: "555-0101", IsActive: boolPtr(true),
	})
	require.NoError(t, err)

	removed, err := service.DeleteTeacher(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, removed)

	_, err = service.DeleteTeacher(ctx, created.ID)
	assert.ErrorIs(t, err, response.ErrNotFound)
}

func TestService_UserPasswordIsHashed(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	created, err := service.CreateUser(ctx, &api.UserRequest{
		Name:      "Admin",
		Email:     "admin@school.test",
		Login:     "admin",
		Password:  "s3cret-pass",
		Privilege: "admin",
		IsActive:  boolPtr(true),
	})
	require.NoError(t, err)

	store, err := jsonfileStoreOf(service)
	require.NoError(t, err)

	user, err := store.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
}

func jsonfileStoreOf(s *Service) (*jsonfile.Storage, error) {
	store, ok := s.store.(*jsonfile.Storage)
	if !ok {
		return nil, response.ErrBadRequest
	}
	return store, nil
}
