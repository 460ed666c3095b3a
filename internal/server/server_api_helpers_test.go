package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sonicdash/sonic/internal/store"
	"github.com/sonicdash/sonic/internal/theme"
)

func testThemeConfig() theme.Config {
	return theme.Config{
		SelectedProfile: "p1",
		Profiles: map[string]theme.Profile{
			"p1": {
				Primary:  &theme.RegionStyle{Color: "#111"},
				TitleBar: &theme.RegionStyle{Color: "#222"},
			},
			"p2": {
				Primary:   &theme.RegionStyle{Color: "#abcdef"},
				Wallpaper: &theme.RegionStyle{Image: "images/space_wall2.jpg", Color: "#000"},
			},
		},
	}
}

func newTestState(t *testing.T) *stateStore {
	t.Helper()

	tmp := t.TempDir()
	db, err := store.Open(filepath.Join(tmp, "sonic.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	staticDir := filepath.Join(tmp, "static")
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		t.Fatalf("create static dir: %v", err)
	}
	return newStateStore(db, staticDir)
}

func seedTheme(t *testing.T, s *stateStore, cfg theme.Config) {
	t.Helper()
	if err := s.db.SaveThemeConfig(context.Background(), cfg); err != nil {
		t.Fatalf("save theme config: %v", err)
	}
}

func newTestHTTPServer(t *testing.T) (*httptest.Server, *stateStore) {
	t.Helper()
	s := newTestState(t)
	seedTheme(t, s, testThemeConfig())
	ts := httptest.NewServer(buildRouter(s))
	t.Cleanup(ts.Close)
	return ts, s
}

func mustJSONRequest(t *testing.T, client *http.Client, method, url string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request JSON: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

func mustRawJSONRequest(t *testing.T, client *http.Client, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

func decodeJSONBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("decode response body: %v, tail=%q", err, string(raw))
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return string(data)
}

func requireContainsAll(t *testing.T, content, subject string, needles ...string) {
	t.Helper()
	for _, needle := range needles {
		if strings.Contains(content, needle) {
			continue
		}
		t.Fatalf("%s missing %q", subject, needle)
	}
}

func requireNotContainsAll(t *testing.T, content, subject string, needles ...string) {
	t.Helper()
	for _, needle := range needles {
		if !strings.Contains(content, needle) {
			continue
		}
		t.Fatalf("%s should not contain %q", subject, needle)
	}
}
