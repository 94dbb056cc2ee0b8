package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/internal/pkg/retry"
	"github.com/piresc/spendly/services/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ users.UserGW = (*SendGridMailer)(nil)
	_ users.UserGW = (*LogMailer)(nil)
)

func newTestMailer(t *testing.T, handler http.HandlerFunc) *SendGridMailer {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m := NewSendGridMailer(models.MailConfig{
		SendGridAPIKey: "SG.test",
		SenderName:     "Spendly Security",
		SenderEmail:    "security@spendly.app",
	})
	m.client.BaseURL = srv.URL + "/v3/mail/send"
	m.retrier = retry.New(retry.Config{MaxRetries: 2, BaseDelay: time.Millisecond, Multiplier: 2})
	return m
}

func TestSendGridMailer_SendOTPEmail(t *testing.T) {
	var payload map[string]interface{}
	var auth string
	m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &payload)
		w.WriteHeader(http.StatusAccepted)
	})

	err := m.SendOTPEmail(context.Background(), "asha@example.com", "Asha", "482913", 10*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, "Bearer SG.test", auth)
	assert.Equal(t, "Spendly Password Reset OTP", payload["subject"])
	from := payload["from"].(map[string]interface{})
	assert.Equal(t, "security@spendly.app", from["email"])
	content := payload["content"].([]interface{})
	assert.Contains(t, content[0].(map[string]interface{})["value"], "482913. Valid for 10 minutes")
}

func TestSendGridMailer_Rejected(t *testing.T) {
	calls := 0
	m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	})

	err := m.SendOTPEmail(context.Background(), "asha@example.com", "Asha", "482913", 10*time.Minute)

	assert.ErrorContains(t, err, "status 401")
	assert.Equal(t, 1, calls)
}

func TestSendGridMailer_RetriesUnavailable(t *testing.T) {
	calls := 0
	m := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	})

	err := m.SendOTPEmail(context.Background(), "asha@example.com", "Asha", "482913", 10*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestLogMailer(t *testing.T) {
	assert.NoError(t, NewLogMailer().SendOTPEmail(context.Background(), "asha@example.com", "Asha", "482913", time.Minute))
}
