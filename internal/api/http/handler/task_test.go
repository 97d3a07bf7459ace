package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/mocks"
	"github.com/diaryof/diary-server/internal/model"
	"github.com/diaryof/diary-server/internal/testutil"
)

func newTaskFixture(t *testing.T) (*fiber.App, *mocks.TaskService) {
	t.Helper()

	cm := newContextManager()
	tasks := mocks.NewTaskService(t)
	h := NewTask(tasks, cm, testutil.MakeNoopLogger())

	app := newTestApp()
	app.Use(withPrincipal(cm, model.RoleUser))
	app.Get("/tasks", h.List)
	app.Post("/tasks", h.Create)
	app.Put("/tasks/:id", h.Update)
	app.Delete("/tasks/:id", h.Delete)
	return app, tasks
}

func TestTask_List(t *testing.T) {
	t.Parallel()

	dayID := uuid.New()
	app, tasks := newTaskFixture(t)
	tasks.On("List", mock.Anything, testUserID, &dayID, model.Page{Number: 1, PerPage: 20}).
		Return([]model.Task{{ID: uuid.New(), DayID: dayID}}, nil)

	code, body := do(t, app, jsonRequest(t, http.MethodGet, "/tasks?dayId="+dayID.String()+"&page=1&perPage=20", nil))

	assert.Equal(t, http.StatusOK, code)
	list, ok := body["tasks"].([]any)
	require.True(t, ok)
	assert.Len(t, list, 1)
}

func TestTask_List_AllDays(t *testing.T) {
	t.Parallel()

	app, tasks := newTaskFixture(t)
	tasks.On("List", mock.Anything, testUserID, (*uuid.UUID)(nil), model.Page{}).Return([]model.Task{}, nil)

	code, _ := do(t, app, jsonRequest(t, http.MethodGet, "/tasks", nil))
	assert.Equal(t, http.StatusOK, code)
}

func TestTask_List_MalformedDayID(t *testing.T) {
	t.Parallel()

	app, _ := newTaskFixture(t)
	code, body := do(t, app, jsonRequest(t, http.MethodGet, "/tasks?dayId=xyz", nil))

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Day not found", body["error"])
}

func TestTask_Create(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)
	taskID := uuid.New()

	app, tasks := newTaskFixture(t)
	tasks.On("Create", mock.Anything, testUserID, mock.MatchedBy(func(p model.CreateTaskParams) bool {
		return p.DayID == nil &&
			p.Title != nil && *p.Title == "Standup" &&
			p.Timestamp != nil && p.Timestamp.Equal(ts) &&
			p.Transcription != nil && *p.Transcription == "talked about the release"
	})).Return(model.Task{ID: taskID, Title: strPtr("Standup")}, nil)

	code, body := do(t, app, jsonRequest(t, http.MethodPost, "/tasks", map[string]string{
		"title":         "Standup",
		"timestamp":     "2026-05-04T09:30:00Z",
		"transcription": "talked about the release",
	}))

	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, taskID.String(), body["id"])
	assert.Equal(t, "Standup", body["title"])
}

func TestTask_Create_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body map[string]string
	}{
		{"bad day id", map[string]string{"dayId": "nope"}},
		{"bad day date", map[string]string{"dayDate": "05/04/2026"}},
		{"bad audio url", map[string]string{"audioUrl": "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app, _ := newTaskFixture(t)
			code, _ := do(t, app, jsonRequest(t, http.MethodPost, "/tasks", tt.body))
			assert.Equal(t, http.StatusBadRequest, code)
		})
	}
}

func TestTask_Create_ForeignDay(t *testing.T) {
	t.Parallel()

	dayID := uuid.New()
	app, tasks := newTaskFixture(t)
	tasks.On("Create", mock.Anything, testUserID, mock.MatchedBy(func(p model.CreateTaskParams) bool {
		return p.DayID != nil && *p.DayID == dayID
	})).Return(model.Task{}, apierrors.NewErrNotFound("Day"))

	code, body := do(t, app, jsonRequest(t, http.MethodPost, "/tasks", map[string]string{"dayId": dayID.String()}))

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Day not found", body["error"])
}

func TestTask_Update(t *testing.T) {
	t.Parallel()

	taskID := uuid.New()
	app, tasks := newTaskFixture(t)
	tasks.On("Update", mock.Anything, testUserID, taskID, model.TaskUpdate{
		Title:    model.Some("Retro"),
		Category: model.Null[string](),
	}).Return(model.Task{ID: taskID, Title: strPtr("Retro")}, nil)

	code, body := do(t, app, jsonRequest(t, http.MethodPut, "/tasks/"+taskID.String(),
		`{"title":"Retro","category":null}`))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Retro", body["title"])
}

func TestTask_Update_BadBody(t *testing.T) {
	t.Parallel()

	app, _ := newTaskFixture(t)
	code, _ := do(t, app, jsonRequest(t, http.MethodPut, "/tasks/"+uuid.NewString(), `{"title":42}`))

	assert.Equal(t, http.StatusBadRequest, code)
}

func TestTask_Delete(t *testing.T) {
	t.Parallel()

	taskID := uuid.New()
	app, tasks := newTaskFixture(t)
	tasks.On("Delete", mock.Anything, testUserID, taskID).Return(nil).Once()
	tasks.On("Delete", mock.Anything, testUserID, taskID).Return(apierrors.NewErrNotFound("Task")).Once()

	code, _ := do(t, app, jsonRequest(t, http.MethodDelete, "/tasks/"+taskID.String(), nil))
	assert.Equal(t, http.StatusNoContent, code)

	code, body := do(t, app, jsonRequest(t, http.MethodDelete, "/tasks/"+taskID.String(), nil))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Task not found", body["error"])
}
