package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"biblenow/internal/app/social"
)

func newSocialRouter(t *testing.T, rpc *mockRPC) http.Handler {
	t.Helper()
	return newTestRouter(t, &AppDeps{
		Config: testConfig(),
		Social: social.NewService(rpc),
	})
}

func Test_API_requiresSession(t *testing.T) {
	router := newSocialRouter(t, &mockRPC{})

	w := doJSON(t, router, http.MethodGet, "/api/shields", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, map[string]any{"error": "Please sign in to continue."}, decodeBody(t, w))
}

func Test_API_featureNotConfigured(t *testing.T) {
	router := newTestRouter(t, &AppDeps{Config: testConfig()})

	for _, target := range []string{"/api/shields", "/api/gifts", "/api/avatars/presign"} {
		w := doJSON(t, router, http.MethodPost, target, map[string]any{}, sessionHeader(t, viewerID))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, target)
		assert.Equal(t, map[string]any{"error": "This feature is not available on this server."}, decodeBody(t, w))
	}

	cfg := testConfig()
	cfg.SupabaseJWTSecret = ""
	router = newTestRouter(t, &AppDeps{Config: cfg, Social: social.NewService(&mockRPC{})})

	w := doJSON(t, router, http.MethodGet, "/api/shields", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func Test_HandleShieldUser(t *testing.T) {
	rpc := &mockRPC{result: json.RawMessage(`{"success": true}`)}
	router := newSocialRouter(t, rpc)

	w := doJSON(t, router, http.MethodPost, "/api/shields", map[string]any{"userId": friendID}, sessionHeader(t, viewerID))
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, map[string]any{"success": true}, decodeBody(t, w))
	assert.Equal(t, "shield_user", rpc.name)
	assert.Equal(t, viewerID, rpc.args["p_user_id"])
	assert.Equal(t, friendID, rpc.args["p_shielded_user_id"])

	w = doJSON(t, router, http.MethodPost, "/api/shields", map[string]any{"userId": viewerID}, sessionHeader(t, viewerID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"error": "You cannot shield yourself."}, decodeBody(t, w))

	w = doJSON(t, router, http.MethodPost, "/api/shields", map[string]any{"userId": "not-a-uuid"}, sessionHeader(t, viewerID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"error": "Invalid user id."}, decodeBody(t, w))
}

func Test_HandleUnshieldUser(t *testing.T) {
	rpc := &mockRPC{result: json.RawMessage(`{"success": true, "removed": true}`)}
	router := newSocialRouter(t, rpc)

	w := doJSON(t, router, http.MethodDelete, "/api/shields/"+friendID, nil, sessionHeader(t, viewerID))
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, map[string]any{"success": true, "removed": true}, decodeBody(t, w))
	assert.Equal(t, "unshield_user", rpc.name)
	assert.Equal(t, friendID, rpc.args["p_shielded_user_id"])
}

func Test_HandleListShields(t *testing.T) {
	rpc := &mockRPC{result: json.RawMessage(`[{"user_id": "` + friendID + `", "created_at": "2026-03-01T18:00:00Z"}]`)}
	router := newSocialRouter(t, rpc)

	w := doJSON(t, router, http.MethodGet, "/api/shields", nil, sessionHeader(t, viewerID))
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, map[string]any{
		"shields": []any{
			map[string]any{"user_id": friendID, "created_at": "2026-03-01T18:00:00Z"},
		},
	}, decodeBody(t, w))
	assert.Equal(t, "list_shielded_users", rpc.name)
}

func Test_HandleSendGift(t *testing.T) {
	tests := []struct {
		name       string
		rpc        *mockRPC
		body       map[string]any
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "success",
			rpc:        &mockRPC{result: json.RawMessage(`{"success": true, "gift_id": "gift-1", "new_balance": 90}`)},
			body:       map[string]any{"recipientId": friendID, "amount": 10, "message": "Shalom!"},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"success": true, "giftId": "gift-1", "newBalance": float64(90)},
		},
		{
			name:       "insufficient balance",
			rpc:        &mockRPC{result: json.RawMessage(`{"success": false, "error": "Insufficient shekel balance"}`)},
			body:       map[string]any{"recipientId": friendID, "amount": 1000},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Insufficient shekel balance"},
		},
		{
			name:       "non-positive amount",
			rpc:        &mockRPC{},
			body:       map[string]any{"recipientId": friendID, "amount": 0},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Gift amount must be a positive whole number."},
		},
		{
			name:       "fractional amount",
			rpc:        &mockRPC{},
			body:       map[string]any{"recipientId": friendID, "amount": 1.5},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Request body is not valid JSON."},
		},
		{
			name:       "gift to self",
			rpc:        &mockRPC{},
			body:       map[string]any{"recipientId": viewerID, "amount": 5},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "You cannot send a gift to yourself."},
		},
		{
			name:       "database failure",
			rpc:        &mockRPC{err: errors.New("connection reset by peer")},
			body:       map[string]any{"recipientId": friendID, "amount": 5},
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newSocialRouter(t, tt.rpc)

			w := doJSON(t, router, http.MethodPost, "/api/gifts", tt.body, sessionHeader(t, viewerID))
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Equal(t, tt.wantBody, decodeBody(t, w))
		})
	}
}
