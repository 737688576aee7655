package squad

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/DhavalSuthar-24/squadhub/internal/common"
	"github.com/DhavalSuthar-24/squadhub/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// headerAuth trusts X-User-ID so handlers can be driven without tokens.
func headerAuth(c *gin.Context) {
	id, err := strconv.ParseUint(c.GetHeader("X-User-ID"), 10, 64)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	c.Set(common.ContextUserIDKey, uint(id))
	c.Next()
}

type apiResult struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Kind    string          `json:"kind"`
}

func serve(t *testing.T, r *gin.Engine, method, path string, userID uint, body interface{}) (int, apiResult) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-User-ID", strconv.FormatUint(uint64(userID), 10))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var res apiResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return w.Code, res
}

func TestSquadRoutesInviteFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newFixture(t)
	f.profile(t, 1, "primary")
	f.profile(t, 2, "nader")

	r := gin.New()
	SquadRoutes(r.Group("/api"), f.svc, headerAuth)

	code, res := serve(t, r, http.MethodPost, "/api/squads", 1, CreateSquadRequest{SquadName: "Alpha", Game: "BGMI"})
	require.Equal(t, http.StatusCreated, code, res.Message)
	var created Squad
	require.NoError(t, json.Unmarshal(res.Data, &created))
	assert.Equal(t, "Alpha", created.SquadName)

	code, _ = serve(t, r, http.MethodPost, "/api/squads", 0, CreateSquadRequest{SquadName: "Bravo", Game: "BGMI"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, res = serve(t, r, http.MethodPost, "/api/users/me/squad/invites", 1, InviteRequest{PlayerID: 2})
	require.Equal(t, http.StatusCreated, code, res.Message)
	var invite Invite
	require.NoError(t, json.Unmarshal(res.Data, &invite))

	// Only the addressed player may accept.
	code, res = serve(t, r, http.MethodPost, fmt.Sprintf("/api/invites/%d/accept", invite.ID), 1, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "FORBIDDEN", res.Kind)

	code, res = serve(t, r, http.MethodPost, fmt.Sprintf("/api/invites/%d/accept", invite.ID), 2, nil)
	require.Equal(t, http.StatusOK, code, res.Message)
	var joined Squad
	require.NoError(t, json.Unmarshal(res.Data, &joined))
	assert.Len(t, joined.Members, 2)

	code, res = serve(t, r, http.MethodPost, fmt.Sprintf("/api/invites/%d/accept", invite.ID), 2, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "INVALID_STATE", res.Kind)

	// Public read needs no caller.
	code, res = serve(t, r, http.MethodGet, fmt.Sprintf("/api/squads/%d", created.ID), 0, nil)
	require.Equal(t, http.StatusOK, code, res.Message)

	code, res = serve(t, r, http.MethodGet, "/api/squads/abc", 0, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSquadRoutesLeaveOutcomes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newFixture(t)
	f.squadWith(t, "Solo", 4, 1)

	r := gin.New()
	SquadRoutes(r.Group("/api"), f.svc, headerAuth)

	code, res := serve(t, r, http.MethodPost, "/api/users/me/squad/leave", 1, nil)
	require.Equal(t, http.StatusOK, code, res.Message)
	assert.Equal(t, "Squad disbanded", res.Message)

	code, res = serve(t, r, http.MethodGet, "/api/users/me/squad", 1, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", res.Kind)
}
