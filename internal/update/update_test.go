package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func releaseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckURL(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		current string
		want    string
	}{
		{"newer", http.StatusOK, `{"tag_name":"v1.2.0","html_url":"https://example.com/r"}`, "v1.1.0", "1.2.0"},
		{"same", http.StatusOK, `{"tag_name":"v1.2.0"}`, "1.2.0", ""},
		{"dev build", http.StatusOK, `{"tag_name":"v1.2.0"}`, "dev", ""},
		{"server error", http.StatusInternalServerError, ``, "v1.0.0", ""},
		{"bad json", http.StatusOK, `{`, "v1.0.0", ""},
		{"empty tag", http.StatusOK, `{}`, "v1.0.0", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := releaseServer(t, tt.status, tt.body)
			got := CheckURL(context.Background(), srv.URL, tt.current)
			if tt.want == "" {
				if got != nil {
					t.Errorf("expected no update, got %+v", got)
				}
				return
			}
			if got == nil || got.LatestVersion != tt.want {
				t.Fatalf("expected %s, got %+v", tt.want, got)
			}
			if got.URL == "" {
				t.Error("expected release URL")
			}
		})
	}
}

func TestCheckURLUnreachable(t *testing.T) {
	if got := CheckURL(context.Background(), "http://127.0.0.1:0", "v1.0.0"); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}
