package jsonfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-service/internal/models"
	"school-service/pkg/response"
)

func setupStorage(t *testing.T) (*Storage, string) {
	t.Helper()

	dir := t.TempDir()
	storage, err := New(dir)
	require.NoError(t, err)

	return storage, dir
}

func TestStorage_CreateAndGetTeacher(t *testing.T) {
	storage, _ := setupStorage(t)
	ctx := context.Background()

	teacher := models.Teacher{
		ID:       "t1",
		Name:     "Maria Souza",
		Subjects: []string{"math", "physics"},
		Email:    "maria@school.test",
		Phone:    "555-0101",
		IsActive: true,
	}

	require.NoError(t, storage.CreateTeacher(ctx, teacher))

	got, err := storage.GetTeacher(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, teacher, *got)
}

func TestStorage_GetTeacher_NotFound(t *testing.T) {
	storage, _ := setupStorage(t)

	_, err := storage.GetTeacher(context.Background(), "missing")
	assert.ErrorIs(t, err, response.ErrNotFound)
}

func TestStorage_UpdateTeacher_UnknownIDLeavesCollectionUnchanged(t *testing.T) {
	storage, _ := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.CreateTeacher(ctx, models.Teacher{ID: "t1", Name: "Maria"}))

	_, err := storage.UpdateTeacher(ctx, models.Teacher{ID: "missing", Name: "Nobody"})
	assert.ErrorIs(t, err, response.ErrNotFound)

	teachers, err := storage.ListTeachers(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "Maria", teachers[0].Name)
}

func TestStorage_UpdateTeacher_ReplacesWholeRecord(t *testing.T) {
	storage, _ := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.CreateTeacher(ctx, models.Teacher{
		ID: "t1", Name: "Maria", Subjects: []string{"math"}, Email: "maria@school.test", Phone: "1", IsActive: true,
	}))

	updated, err := storage.UpdateTeacher(ctx, models.Teacher{
		ID: "t1", Name: "Maria Souza", Subjects: []string{"chemistry"}, Email: "m.souza@school.test", Phone: "2", IsActive: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", updated.Name)
	assert.Equal(t, []string{"chemistry"}, updated.Subjects)

	got, err := storage.GetTeacher(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)
}

func TestStorage_DeleteTeacher(t *testing.T) {
	storage, _ := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.CreateTeacher(ctx, models.Teacher{ID: "t1", Name: "Maria"}))
	require.NoError(t, storage.CreateTeacher(ctx, models.Teacher{ID: "t2", Name: "Joao"}))

	removed, err := storage.DeleteTeacher(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", removed.ID)

	teachers, err := storage.ListTeachers(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "t2", teachers[0].ID)

	_, err = storage.DeleteTeacher(ctx, "t1")
	assert.ErrorIs(t, err, response.ErrNotFound)
}

func TestStorage_SearchTeachers_CaseInsensitive(t *testing.T) {
	storage, _ := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.CreateTeacher(ctx, models.Teacher{ID: "t1", Name: "Maria Souza"}))
	require.NoError(t, storage.CreateTeacher(ctx, models.Teacher{ID: "t2", Name: "Joao Lima"}))
	require.NoError(t, storage.CreateTeacher(ctx, models.Teacher{ID: "t3", Name: "Ana Maria"}))

	found, err := storage.SearchTeachers(ctx, "MARIA")
	require.NoError(t, err)
	require.Len(t, found, 2)

	found, err = storage.SearchTeachers(ctx, "lima")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "t2", found[0].ID)

	found, err = storage.SearchTeachers(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	storage, dir := setupStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.CreateStudent(ctx, models.Student{
		ID: "s1", Name: "Pedro", Age: 12, Phone: "555-0102", IsActive: true,
	}))
	require.NoError(t, storage.CreateEvent(ctx, models.Event{
		ID: "e1", Description: "Staff sync", Comments: "Q2 goals",
	}))

	reopened, err := New(dir)
	require.NoError(t, err)

	student, err := reopened.GetStudent(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Pedro", student.Name)
	assert.Equal(t, 12, student.Age)

	event, err := reopened.GetEvent(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Staff sync", event.Description)
}

func TestStorage_EmptyCollectionsListEmpty(t *testing.T) {
	storage, _ := setupStorage(t)
	ctx := context.Background()

	appointments, err := storage.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Empty(t, appointments)

	users, err := storage.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
