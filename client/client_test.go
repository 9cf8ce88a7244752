// client_test.go
//go:build !integration
// +build !integration

package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListArticlesQuery(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		_ = json.NewEncoder(w).Encode([]Article{})
	}))
	defer srv.Close()

	c := Client{Addr: srv.URL}
	if _, err := c.ListArticles("go", "2021-01-01"); err != nil {
		t.Fatal(err)
	}

	if gotPath != "/articles?date_after=2021-01-01&tag=go" {
		t.Fatalf("unexpected query: %s", gotPath)
	}
}

func TestDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "User not found"})
	}))
	defer srv.Close()

	c := Client{Addr: srv.URL}
	if _, err := c.GetUser(42); err == nil {
		t.Fatal("expected an error")
	}
}
