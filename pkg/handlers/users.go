package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/routekit/dispatch/pkg/httpwire"
	"github.com/routekit/dispatch/pkg/router"
)

// ListUsers returns the stored users as JSON.
func (h *Handlers) ListUsers(req *httpwire.Request, res *httpwire.Response) {
	users := h.store.List()

	entries := make([]string, len(users))
	for i, u := range users {
		entries[i] = fmt.Sprintf(`{"id": %d, "name": %q, "email": %q}`, u.ID, u.Name, u.Email)
	}
	res.SetJSON(httpwire.StatusOK, fmt.Sprintf(
		`{"users": [%s], "count": %d}`, strings.Join(entries, ", "), len(users)))
}

// CreateUser adds a demo user to the store. Request bodies are logged by the
// caller's middleware but not parsed; JSON decoding is out of scope, so the
// created record carries placeholder fields with a real assigned ID.
func (h *Handlers) CreateUser(req *httpwire.Request, res *httpwire.Response) {
	u := h.store.Create("New User", "newuser@example.com")
	res.SetJSON(httpwire.StatusCreated, fmt.Sprintf(
		`{"id": %d, "name": %q, "email": %q, "created": true}`, u.ID, u.Name, u.Email))
}

// GetUser looks up a user by the trailing path parameter.
func (h *Handlers) GetUser(req *httpwire.Request, res *httpwire.Response) {
	id, ok := userID(req.Path)
	if !ok {
		res.SetJSON(httpwire.StatusNotFound, `{"error": "User not found"}`)
		return
	}

	u, found := h.store.Get(id)
	if !found {
		res.SetJSON(httpwire.StatusNotFound, `{"error": "User not found"}`)
		return
	}
	res.SetJSON(httpwire.StatusOK, fmt.Sprintf(
		`{"id": %d, "name": %q, "email": %q}`, u.ID, u.Name, u.Email))
}

// DeleteUser removes a user by the trailing path parameter.
func (h *Handlers) DeleteUser(req *httpwire.Request, res *httpwire.Response) {
	id, ok := userID(req.Path)
	if !ok {
		res.SetJSON(httpwire.StatusNotFound, `{"error": "User not found"}`)
		return
	}

	deleted := h.store.Delete(id)
	res.SetJSON(httpwire.StatusOK, fmt.Sprintf(
		`{"message": "User %d deleted", "success": %t}`, id, deleted))
}

// userID extracts and parses the :id segment of a user route. The matcher is
// deliberately permissive about extra trailing segments, so a captured value
// like "123/extra" fails integer parsing here and resolves to not-found.
func userID(path string) (int, bool) {
	raw, ok := router.ExtractParam("/api/users/:id", path)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
