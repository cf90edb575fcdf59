package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-service/api"
	svc "school-service/internal/service"
	"school-service/internal/storage/jsonfile"
	"school-service/pkg/response"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	store, err := jsonfile.New(t.TempDir())
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRouter(log, svc.NewService(store))
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

type eventEnvelope struct {
	Error  response.ResponseError `json:"error"`
	Event  *api.EventResponse     `json:"event"`
	Events []*api.EventResponse   `json:"events"`
}

type teacherEnvelope struct {
	Error    response.ResponseError `json:"error"`
	Teacher  *api.TeacherResponse   `json:"teacher"`
	Teachers []*api.TeacherResponse `json:"teachers"`
}

type userEnvelope struct {
	Error response.ResponseError `json:"error"`
	User  *api.UserResponse      `json:"user"`
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestCreateEvent_RoundTrip(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/events", map[string]interface{}{
		"description": "Staff sync",
		"date":        "2024-05-20T14:30:00Z",
		"comments":    "Q2 goals",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created eventEnvelope
	decodeInto(t, rec, &created)
	require.NotNil(t, created.Event)
	require.NotEmpty(t, created.Event.ID)

	rec = doJSON(t, router, http.MethodGet, "/events/"+created.Event.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched eventEnvelope
	decodeInto(t, rec, &fetched)
	require.NotNil(t, fetched.Event)
	assert.Equal(t, created.Event, fetched.Event)
}

func TestCreateEvent_MissingFieldIsValidationError(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/events", map[string]interface{}{
		"date":     "2024-05-20T14:30:00Z",
		"comments": "Q2 goals",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp eventEnvelope
	decodeInto(t, rec, &resp)
	assert.Equal(t, string(response.VALIDATION_FAILED), resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Field 'description' is required")

	// no partial write
	rec = doJSON(t, router, http.MethodGet, "/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list eventEnvelope
	decodeInto(t, rec, &list)
	assert.Empty(t, list.Events)
}

func TestCreateEvent_MalformedBody(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp eventEnvelope
	decodeInto(t, rec, &resp)
	assert.Equal(t, string(response.BAD_REQUEST), resp.Error.Code)
}

func TestGetEvent_UnknownID(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/events/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp eventEnvelope
	decodeInto(t, rec, &resp)
	assert.Equal(t, string(response.NOT_FOUND), resp.Error.Code)
}

func TestUpdateTeacher_UnknownIDLeavesCollectionUnchanged(t *testing.T) {
	router := setupRouter(t)

	body := map[string]interface{}{
		"name":      "Maria Souza",
		"subjects":  []string{"math"},
		"email":     "maria@school.test",
		"phone":     "555-0101",
		"is_active": true,
	}

	rec := doJSON(t, router, http.MethodPut, "/teachers/missing", body)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/teachers", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list teacherEnvelope
	decodeInto(t, rec, &list)
	assert.Empty(t, list.Teachers)
}

func TestUpdateTeacher_ReplacesRecord(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/teachers", map[string]interface{}{
		"name":      "Maria",
		"subjects":  []string{"math"},
		"email":     "maria@school.test",
		"phone":     "555-0101",
		"is_active": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created teacherEnvelope
	decodeInto(t, rec, &created)
	require.NotNil(t, created.Teacher)

	rec = doJSON(t, router, http.MethodPut, "/teachers/"+created.Teacher.ID, map[string]interface{}{
		"name":      "Maria Souza",
		"subjects":  []string{"chemistry", "biology"},
		"email":     "m.souza@school.test",
		"phone":     "555-0202",
		"is_active": false,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated teacherEnvelope
	decodeInto(t, rec, &updated)
	require.NotNil(t, updated.Teacher)
	assert.Equal(t, created.Teacher.ID, updated.Teacher.ID)
	assert.Equal(t, "Maria Souza", updated.Teacher.Name)
	assert.Equal(t, []string{"chemistry", "biology"}, updated.Teacher.Subjects)
	assert.False(t, updated.Teacher.IsActive)
}

func TestDeleteTeacher_TwiceYieldsNotFound(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/teachers", map[string]interface{}{
		"name":      "Maria",
		"subjects":  []string{"math"},
		"email":     "maria@school.test",
		"phone":     "555-0101",
		"is_active": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created teacherEnvelope
	decodeInto(t, rec, &created)
	require.NotNil(t, created.Teacher)

	rec = doJSON(t, router, http.MethodDelete, "/teachers/"+created.Teacher.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var deleted teacherEnvelope
	decodeInto(t, rec, &deleted)
	require.NotNil(t, deleted.Teacher)
	assert.Equal(t, created.Teacher.ID, deleted.Teacher.ID)

	rec = doJSON(t, router, http.MethodDelete, "/teachers/"+created.Teacher.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchTeachers_CaseInsensitive(t *testing.T) {
	router := setupRouter(t)

	for _, name := range []string{"Maria Souza", "Joao Lima", "Ana Maria"} {
		rec := doJSON(t, router, http.MethodPost, "/teachers", map[string]interface{}{
			"name":      name,
			"subjects":  []string{"math"},
			"email":     "x@school.test",
			"phone":     "555-0101",
			"is_active": true,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/teachers/search/MARIA", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var found teacherEnvelope
	decodeInto(t, rec, &found)
	assert.Len(t, found.Teachers, 2)
}

func TestCreateUser_PasswordNotReturned(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/users", map[string]interface{}{
		"name":      "Admin",
		"email":     "admin@school.test",
		"login":     "admin",
		"password":  "s3cret-pass",
		"privilege": "admin",
		"is_active": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created userEnvelope
	decodeInto(t, rec, &created)
	require.NotNil(t, created.User)
	assert.NotEmpty(t, created.User.ID)
	assert.NotContains(t, rec.Body.String(), "s3cret-pass")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestCreateUser_ShortPasswordRejected(t *testing.T) {
	router := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/users", map[string]interface{}{
		"name":      "Admin",
		"email":     "admin@school.test",
		"login":     "admin",
		"password":  "abc",
		"privilege": "admin",
		"is_active": true,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp userEnvelope
	decodeInto(t, rec, &resp)
	assert.Equal(t, string(response.VALIDATION_FAILED), resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "password")
}
