package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/service"
	"github.com/taskhive/taskhive/pkg/api"
	"github.com/taskhive/taskhive/pkg/httpx"
	"github.com/taskhive/taskhive/pkg/slogx"
)

type TasksHandler struct {
	TaskService *service.TaskService
}

// HandleList returns every task owned by the authenticated user.
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusForbidden, "token is missing or invalid")
		return
	}

	tasks, err := h.TaskService.ListTasks(ctx, userID)
	if err != nil {
		log.Error("failed to list tasks", "user_id", userID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to fetch tasks")
		return
	}

	out := make([]api.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToAPI(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns a single task by id. A task owned by another user is
// reported exactly like one that does not exist.
func (h *TasksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusForbidden, "token is missing or invalid")
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "task not found")
		return
	}

	task, err := h.TaskService.GetTask(ctx, userID, taskID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			httpx.WriteError(w, http.StatusNotFound, "task not found")
		default:
			log.Error("failed to get task", "user_id", userID, "task_id", taskID, "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to retrieve task")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, taskToAPI(task))
}

// HandleCreate creates a task for the authenticated user. Title is
// required and must be non-blank; description and completed are optional.
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusForbidden, "token is missing or invalid")
		return
	}

	var req api.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Title == nil {
		httpx.WriteError(w, http.StatusBadRequest, "title is required")
		return
	}

	task, err := h.TaskService.CreateTask(ctx, userID,
		*req.Title, deref(req.Description), derefBool(req.Completed))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			httpx.WriteError(w, http.StatusBadRequest, "title is required")
		default:
			log.Error("failed to create task", "user_id", userID, "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to create task")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, taskToAPI(task))
}

// HandleUpdate overwrites a task. Both title and description must be
// present: partial updates are deliberately not supported.
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusForbidden, "token is missing or invalid")
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "task not found")
		return
	}

	var req api.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Title == nil || req.Description == nil {
		httpx.WriteError(w, http.StatusBadRequest, "title and description are required")
		return
	}

	err = h.TaskService.UpdateTask(ctx, userID, taskID,
		*req.Title, *req.Description, derefBool(req.Completed))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			httpx.WriteError(w, http.StatusBadRequest, "title and description are required")
		default:
			log.Error("failed to update task", "user_id", userID, "task_id", taskID, "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to update task")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, api.MessageResponse{Message: "task updated successfully"})
}

// HandleDelete removes a task. Deleting an absent or foreign task still
// returns 200: the end state is the same either way.
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusForbidden, "token is missing or invalid")
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, "task not found")
		return
	}

	if err := h.TaskService.DeleteTask(ctx, userID, taskID); err != nil {
		log.Error("failed to delete task", "user_id", userID, "task_id", taskID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to delete task")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, api.MessageResponse{Message: "task deleted successfully"})
}

func parseTaskID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func taskToAPI(t domain.Task) api.Task {
	return api.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
