package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Entity is the placeholder business record served by the entity endpoints.
type Entity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// handleListEntities returns a window of the generated entity sequence.
// The sequence is deterministic: entity i is named "Entity i".
func (s *Server) handleListEntities(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "skip must be a non-negative integer")
		return
	}
	limit, err := queryInt(r, "limit", defaultListLimit)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	entities := make([]Entity, 0, limit)
	for i := skip; i < skip+limit; i++ {
		entities = append(entities, Entity{ID: i, Name: fmt.Sprintf("Entity %d", i)})
	}

	writeJSON(w, http.StatusOK, entities)
}

type createEntityRequest struct {
	Name string `json:"name"`
}

// handleCreateEntity echoes the submitted entity back with a fresh id.
func (s *Server) handleCreateEntity(w http.ResponseWriter, r *http.Request) {
	var req createEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeMessage(w, http.StatusBadRequest, "name is required")
		return
	}

	entity := Entity{
		ID:   int(s.nextEntityID.Add(1)),
		Name: req.Name,
	}
	writeJSON(w, http.StatusCreated, entity)
}

// queryInt parses a non-negative integer query parameter with a default.
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("api: invalid %s %q", key, raw)
	}
	return v, nil
}
