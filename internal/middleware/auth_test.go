package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VipinRD/auctioneer/internal/session"
)

func TestRequireAuth(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	activeID, err := session.GenerateID()
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, session.Session{
		SessionID: activeID,
		UserID:    "user-42",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	tests := []struct {
		name           string
		cookie         *http.Cookie
		expectedStatus int
		expectedUserID string
	}{
		{
			name:           "valid session",
			cookie:         &http.Cookie{Name: session.CookieName, Value: activeID},
			expectedStatus: http.StatusOK,
			expectedUserID: "user-42",
		},
		{
			name:           "no cookie",
			cookie:         nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty cookie value",
			cookie:         &http.Cookie{Name: session.CookieName, Value: ""},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown session id",
			cookie:         &http.Cookie{Name: session.CookieName, Value: "not-a-session"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "http://example.com/restricted", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()

			authMw := NewAuthMiddleware(store)
			handler := authMw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, ok := UserIDFromContext(r.Context())
				require.True(t, ok, "guard must propagate user id through context")
				assert.Equal(t, tt.expectedUserID, userID)
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus != http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, "User not logged in", body["message"])
			}
		})
	}
}

func TestRequireAuthExpiredSession(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	id, err := session.GenerateID()
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, session.Session{
		SessionID: id,
		UserID:    "user-42",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(10 * time.Millisecond),
	}))

	time.Sleep(20 * time.Millisecond)

	req := httptest.NewRequest("POST", "http://example.com/restricted", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: id})
	rr := httptest.NewRecorder()

	authMw := NewAuthMiddleware(store)
	handler := authMw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("expired session must not reach the protected handler")
	}))
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// expired session is removed, not just denied
	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserIDFromContext(t *testing.T) {
	t.Run("no user in context", func(t *testing.T) {
		_, ok := UserIDFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("user in context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), userIDKey, "user-42")
		id, ok := UserIDFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, "user-42", id)
	})
}
