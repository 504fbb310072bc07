package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramNotifier_Send(t *testing.T) {
	var got sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTEST-TOKEN/sendMessage", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(sendMessageResponse{OK: true})
	}))
	defer srv.Close()

	n := NewTelegramNotifier(srv.URL, "TEST-TOKEN")
	err := n.Send(context.Background(), 12345, "<b>hello</b>")
	require.NoError(t, err)

	assert.Equal(t, int64(12345), got.ChatID)
	assert.Equal(t, "<b>hello</b>", got.Text)
	assert.Equal(t, "HTML", got.ParseMode)
}

func TestTelegramNotifier_SendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(sendMessageResponse{
			OK:          false,
			Description: "bot was blocked by the user",
		})
	}))
	defer srv.Close()

	n := NewTelegramNotifier(srv.URL, "TEST-TOKEN")
	err := n.Send(context.Background(), 12345, "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot was blocked by the user")
}
