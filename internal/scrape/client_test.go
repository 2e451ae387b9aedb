package scrape

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDoJSONResponse(t *testing.T) {
	var gotMethod, gotHeader, gotCookie string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header.Get("X-Token")
		if ck, err := r.Cookie("session"); err == nil {
			gotCookie = ck.Value
		}
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"items":[1,2]}`))
	}))
	defer srv.Close()

	var buf strings.Builder
	c := NewClient(&buf)
	err := c.Do(context.Background(), Request{
		Method:  http.MethodPost,
		URL:     srv.URL + "/api",
		Headers: map[string]string{"X-Token": "abc"},
		Cookies: map[string]string{"session": "s1"},
		Body:    map[string]string{"query": "btc"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q", gotMethod)
	}
	if gotHeader != "abc" {
		t.Errorf("header = %q", gotHeader)
	}
	if gotCookie != "s1" {
		t.Errorf("cookie = %q", gotCookie)
	}
	if !strings.Contains(string(gotBody), `"query":"btc"`) {
		t.Errorf("body = %s", gotBody)
	}

	out := buf.String()
	if !strings.Contains(out, "status: 200") {
		t.Errorf("output missing status:\n%s", out)
	}
	// Indented JSON, not the compact original.
	if !strings.Contains(out, "\"ok\": true") {
		t.Errorf("output not pretty-printed:\n%s", out)
	}
}

func TestDoNonJSONBodyDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream down</html>"))
	}))
	defer srv.Close()

	var buf strings.Builder
	c := NewClient(&buf)
	if err := c.Do(context.Background(), Request{URL: srv.URL}); err != nil {
		t.Fatalf("non-JSON body must not be an error, got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "status: 502") {
		t.Errorf("output missing status:\n%s", out)
	}
	if !strings.Contains(out, "<html>upstream down</html>") {
		t.Errorf("output missing raw body:\n%s", out)
	}
}

func TestDoConnectionError(t *testing.T) {
	var buf strings.Builder
	c := NewClient(&buf)
	if err := c.Do(context.Background(), Request{URL: "http://127.0.0.1:0/"}); err == nil {
		t.Fatal("want error for unreachable host")
	}
}
