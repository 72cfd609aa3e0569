package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/model"
)

type apiServer struct {
	*httptest.Server
	mu    sync.Mutex
	calls []string
	forms []map[string]string
	reply func(method string) (int, string)
}

func newAPIServer(t *testing.T, reply func(method string) (int, string)) *apiServer {
	t.Helper()

	s := &apiServer{reply: reply}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())

		method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		if method == "getMe" {
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"bot","username":"test_bot"}}`))
			return
		}

		form := make(map[string]string)
		for k := range r.Form {
			form[k] = r.Form.Get(k)
		}

		s.mu.Lock()
		s.calls = append(s.calls, method)
		s.forms = append(s.forms, form)
		s.mu.Unlock()

		status, body := s.reply(method)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)

	return s
}

func (s *apiServer) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.calls...)
}

func (s *apiServer) Forms() []map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]map[string]string(nil), s.forms...)
}

func (s *apiServer) client(t *testing.T) *Client {
	t.Helper()

	c, err := NewClientWithEndpoint("token", s.URL+"/bot%s/%s")
	require.NoError(t, err)

	return c
}

const okMessage = `{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"}}}`

func TestClient_SendText(t *testing.T) {
	srv := newAPIServer(t, func(string) (int, string) { return http.StatusOK, okMessage })
	c := srv.client(t)

	assert.Equal(t, "test_bot", c.Username())

	btn := &model.Button{Text: "Open", URL: "https://app.example.com/?id=42"}
	err := c.SendText(context.Background(), 42, "<b>hi</b>", model.ParseModeHTML, btn)
	require.NoError(t, err)

	require.Equal(t, []string{"sendMessage"}, srv.Calls())
	form := srv.Forms()[0]
	assert.Equal(t, "42", form["chat_id"])
	assert.Equal(t, "<b>hi</b>", form["text"])
	assert.Equal(t, "HTML", form["parse_mode"])

	var markup struct {
		InlineKeyboard [][]struct {
			Text string `json:"text"`
			URL  string `json:"url"`
		} `json:"inline_keyboard"`
	}
	require.NoError(t, json.Unmarshal([]byte(form["reply_markup"]), &markup))
	require.Len(t, markup.InlineKeyboard, 1)
	assert.Equal(t, "Open", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, btn.URL, markup.InlineKeyboard[0][0].URL)
}

func TestClient_SendPhoto(t *testing.T) {
	srv := newAPIServer(t, func(string) (int, string) { return http.StatusOK, okMessage })
	c := srv.client(t)

	err := c.SendPhoto(context.Background(), 42, "https://cdn.example.com/a.jpg", "caption", model.ParseModeHTML, nil)
	require.NoError(t, err)

	require.Equal(t, []string{"sendPhoto"}, srv.Calls())
	assert.Equal(t, "https://cdn.example.com/a.jpg", srv.Forms()[0]["photo"])
	assert.Equal(t, "caption", srv.Forms()[0]["caption"])
}

func TestClient_SendText_APIErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		check      func(*APIError) bool
		retryAfter int
	}{
		{
			name:   "blocked",
			status: http.StatusForbidden,
			body:   `{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`,
			check:  (*APIError).Forbidden,
		},
		{
			name:       "flood",
			status:     http.StatusTooManyRequests,
			body:       `{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 3","parameters":{"retry_after":3}}`,
			check:      (*APIError).TooManyRequests,
			retryAfter: 3,
		},
		{
			name:   "bad request",
			status: http.StatusBadRequest,
			body:   `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`,
			check:  (*APIError).BadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newAPIServer(t, func(string) (int, string) { return tt.status, tt.body })
			c := srv.client(t)

			err := c.SendText(context.Background(), 42, "hi", "", nil)
			require.Error(t, err)

			apiErr, ok := AsAPIError(err)
			require.True(t, ok)
			assert.True(t, tt.check(apiErr))
			assert.Equal(t, tt.retryAfter, apiErr.RetryAfter)
		})
	}
}

func TestClient_Send_InvalidChatID(t *testing.T) {
	srv := newAPIServer(t, func(string) (int, string) { return http.StatusOK, okMessage })
	c := srv.client(t)

	err := c.Send("not-a-number", "report")
	assert.Error(t, err)
	assert.Empty(t, srv.Calls())
}

func TestClient_SendText_CancelledContext(t *testing.T) {
	srv := newAPIServer(t, func(string) (int, string) { return http.StatusOK, okMessage })
	c := srv.client(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.SendText(ctx, 42, "hi", "", nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, srv.Calls())
}
