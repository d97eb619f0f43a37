package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/testutil"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	testConfig := &config.Config{
		TVMazeBaseURL:   server.URL,
		MissingImageURL: config.DefaultMissingImageURL,
		ClientTimeout:   "10s",
	}
	c := NewClient(testConfig)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClient_SearchShows(t *testing.T) {
	body := testutil.SearchResponseJSON(
		testutil.ShowFixture{ID: 2287, Name: "Bunk'd", Summary: testutil.StringPtr("<p>Camp Kikiwaka</p>"), Image: "https://static.tvmaze.com/2287.jpg"},
		testutil.ShowFixture{ID: 41414, Name: "Bunker", Summary: testutil.StringPtr("<p>Underground</p>")},
		testutil.ShowFixture{ID: 9, Name: "Bunkd Again", NoImage: true},
	)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/shows" {
			t.Errorf("Expected path /search/shows, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "bunk" {
			t.Errorf("Expected q=bunk, got %q", got)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("Expected a User-Agent header")
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	})

	shows, err := c.SearchShows(context.Background(), "bunk")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(shows) != 3 {
		t.Fatalf("Expected 3 shows, got %d", len(shows))
	}

	// Catalog order is kept
	if shows[0].ID != 2287 || shows[1].ID != 41414 || shows[2].ID != 9 {
		t.Errorf("Unexpected order: %+v", shows)
	}
	if shows[0].Name != "Bunk'd" || shows[0].Summary != "<p>Camp Kikiwaka</p>" {
		t.Errorf("Unexpected first show: %+v", shows[0])
	}
	if shows[0].ImageURL != "https://static.tvmaze.com/2287.jpg" {
		t.Errorf("Expected original image, got %q", shows[0].ImageURL)
	}
	if shows[1].ImageURL != config.DefaultMissingImageURL {
		t.Errorf("Expected placeholder for null original, got %q", shows[1].ImageURL)
	}
	if shows[2].ImageURL != config.DefaultMissingImageURL {
		t.Errorf("Expected placeholder for null image, got %q", shows[2].ImageURL)
	}
}

func TestClient_SearchShows_AbsentImageKey(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testutil.SearchResponseJSON(testutil.ShowFixture{ID: 1, Name: "Bare", OmitKeys: true})))
	})

	shows, err := c.SearchShows(context.Background(), "bare")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(shows) != 1 {
		t.Fatalf("Expected 1 show, got %d", len(shows))
	}
	if shows[0].ImageURL != config.DefaultMissingImageURL {
		t.Errorf("Expected placeholder, got %q", shows[0].ImageURL)
	}
	if shows[0].Summary != "" {
		t.Errorf("Expected empty summary, got %q", shows[0].Summary)
	}
}

func TestClient_SearchShows_CustomPlaceholder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testutil.SearchResponseJSON(testutil.ShowFixture{ID: 1, Name: "A", NoImage: true})))
	}))
	defer server.Close()

	c := NewClient(&config.Config{
		TVMazeBaseURL:   server.URL + "/",
		MissingImageURL: "https://example.com/none.png",
	})

	shows, err := c.SearchShows(context.Background(), "a")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if shows[0].ImageURL != "https://example.com/none.png" {
		t.Errorf("Expected configured placeholder, got %q", shows[0].ImageURL)
	}
}

func TestClient_SearchShows_Empty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	shows, err := c.SearchShows(context.Background(), "zzzzqqq")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if shows == nil || len(shows) != 0 {
		t.Errorf("Expected an empty, non-nil slice, got %#v", shows)
	}
}

func TestClient_SearchShows_TermSentVerbatim(t *testing.T) {
	var received string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		received = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(`[]`))
	})

	if _, err := c.SearchShows(context.Background(), "  law & order "); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if received != "  law & order " {
		t.Errorf("Expected the term to be sent untrimmed, got %q", received)
	}
}

func TestClient_SearchShows_Latin1Charset(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=iso-8859-1")
		// "Amélie" with é encoded as a single ISO-8859-1 byte
		_, _ = w.Write([]byte("[{\"show\":{\"id\":1,\"name\":\"Am\xe9lie\"}}]"))
	})

	shows, err := c.SearchShows(context.Background(), "amelie")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if shows[0].Name != "Amélie" {
		t.Errorf("Expected name transcoded to UTF-8, got %q", shows[0].Name)
	}
}
