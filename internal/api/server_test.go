package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/mini-life/internal/entropy"
	"github.com/talgya/mini-life/internal/life"
	"github.com/talgya/mini-life/internal/persistence"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := persistence.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	n := 0
	sim := life.NewSim(life.Options{
		Source: entropy.NewSeeded(7),
		IDGen: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
		BaseYear: 2025,
	})
	return NewServer(sim, db, 0)
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func createLife(t *testing.T, h http.Handler) life.Game {
	t.Helper()
	w := do(t, h, http.MethodPost, "/api/v1/lives", map[string]string{
		"first_name": "Riley", "last_name": "Stone",
		"gender": "female", "country": "Canada",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var g life.Game
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	return g
}

func TestHealth(t *testing.T) {
	h := newTestServer(t).Router()
	w := do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestCreateAndGetLife(t *testing.T) {
	h := newTestServer(t).Router()
	g := createLife(t, h)
	assert.Equal(t, "Riley", g.FirstName)
	assert.Equal(t, 0, g.Age)
	assert.True(t, g.Alive)
	assert.NotEmpty(t, g.Relationships)

	w := do(t, h, http.MethodGet, "/api/v1/lives/"+g.ID+"/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/api/v1/lives/nope/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAgeUpEndpoint(t *testing.T) {
	h := newTestServer(t).Router()
	g := createLife(t, h)

	w := do(t, h, http.MethodPost, "/api/v1/lives/"+g.ID+"/age-up", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var next life.Game
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &next))
	assert.Equal(t, 1, next.Age)

	// The registry now holds the aged snapshot.
	w = do(t, h, http.MethodGet, "/api/v1/lives/"+g.ID+"/", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &next))
	assert.Equal(t, 1, next.Age)
}

func TestActivityRequiresAge(t *testing.T) {
	h := newTestServer(t).Router()
	g := createLife(t, h)
	w := do(t, h, http.MethodPost, "/api/v1/lives/"+g.ID+"/activity",
		map[string]int{"index": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "must be")
}

func TestJobApplyBadIndex(t *testing.T) {
	h := newTestServer(t).Router()
	g := createLife(t, h)
	w := do(t, h, http.MethodPost, "/api/v1/lives/"+g.ID+"/job/apply",
		map[string]int{"index": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidJSONBody(t *testing.T) {
	h := newTestServer(t).Router()
	g := createLife(t, h)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lives/"+g.ID+"/activity",
		bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatEndpoint(t *testing.T) {
	h := newTestServer(t).Router()
	g := createLife(t, h)
	contact := g.Relationships[0]

	w := do(t, h, http.MethodPost, "/api/v1/lives/"+g.ID+"/chat",
		map[string]string{"contact_id": contact.ID, "message": "hello there!"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reply life.Game `json:"life"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	thread := resp.Reply.Threads[contact.ID]
	require.NotNil(t, thread)
	assert.Len(t, thread.Messages, 2)
}

func TestInteractEndpoint(t *testing.T) {
	h := newTestServer(t).Router()
	g := createLife(t, h)
	contact := g.Relationships[0]

	w := do(t, h, http.MethodPost, "/api/v1/lives/"+g.ID+"/interact",
		map[string]string{"contact_id": contact.ID, "action": "talk"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodPost, "/api/v1/lives/"+g.ID+"/interact",
		map[string]string{"contact_id": "ghost", "action": "talk"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveLoadDeleteFlow(t *testing.T) {
	h := newTestServer(t).Router()
	g := createLife(t, h)

	w := do(t, h, http.MethodGet, "/api/v1/saves", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Slots    []persistence.Slot `json:"slots"`
		LastSlot int                `json:"last_slot"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, -1, listing.LastSlot, "nothing saved yet")

	w = do(t, h, http.MethodPost, "/api/v1/lives/"+g.ID+"/saves/2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/api/v1/saves", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing.Slots, persistence.MaxSlots)
	assert.True(t, listing.Slots[2].Occupied)
	assert.Equal(t, "Riley Stone", listing.Slots[2].Name)
	assert.Equal(t, 2, listing.LastSlot)

	w = do(t, h, http.MethodPost, "/api/v1/saves/2/load", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodDelete, "/api/v1/saves/2", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodPost, "/api/v1/saves/2/load", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveBadSlot(t *testing.T) {
	h := newTestServer(t).Router()
	g := createLife(t, h)
	w := do(t, h, http.MethodPost, "/api/v1/lives/"+g.ID+"/saves/9", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteLife(t *testing.T) {
	h := newTestServer(t).Router()
	g := createLife(t, h)

	w := do(t, h, http.MethodDelete, "/api/v1/lives/"+g.ID+"/", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodDelete, "/api/v1/lives/"+g.ID+"/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	h := newTestServer(t).Router()

	for _, name := range []string{
		"jobs", "activities", "crimes", "education", "clubs",
		"businesses", "investments", "vehicles", "properties",
		"rentals", "countries",
	} {
		w := do(t, h, http.MethodGet, "/api/v1/catalog/"+name, nil)
		assert.Equal(t, http.StatusOK, w.Code, name)
		assert.NotEqual(t, "null", w.Body.String(), name)
	}

	w := do(t, h, http.MethodGet, "/api/v1/catalog/spells", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeadLifeConflicts(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Router()
	g := createLife(t, h)

	srv.mu.Lock()
	srv.lives[g.ID].Alive = false
	srv.mu.Unlock()

	w := do(t, h, http.MethodPost, "/api/v1/lives/"+g.ID+"/age-up", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}
