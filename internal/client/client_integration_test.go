package client

import (
	"context"
	"os"
	"testing"

	"github.com/Belphemur/ShowSearch/internal/config"
)

// TestClient_Bunk_Integration calls the real TVmaze API.
// This test is skipped in CI environments to avoid external dependencies
func TestClient_Bunk_Integration(t *testing.T) {
	if os.Getenv("CI") != "" {
		t.Skip("Skipping integration test in CI environment")
	}
	if os.Getenv("SKIP_INTEGRATION_TESTS") != "" {
		t.Skip("Skipping integration test due to SKIP_INTEGRATION_TESTS environment variable")
	}

	c := NewClient(&config.Config{
		TVMazeBaseURL: config.DefaultTVMazeBaseURL,
		ClientTimeout: "30s",
	})
	defer c.Close()

	ctx := context.Background()
	shows, err := c.SearchShows(ctx, "bunk")
	if err != nil {
		t.Fatalf("SearchShows returned error: %v", err)
	}
	if len(shows) == 0 {
		t.Fatal("Expected at least one show for 'bunk'")
	}

	bunkd := shows[0]
	for _, show := range shows {
		if show.Name == "Bunk'd" {
			bunkd = show
			break
		}
	}
	t.Logf("Using show %d %q", bunkd.ID, bunkd.Name)

	if bunkd.Summary == "" {
		t.Error("Expected a non-empty summary")
	}
	if bunkd.ImageURL == "" {
		t.Error("Expected a resolvable image URL")
	}

	episodes, err := c.ListEpisodes(ctx, bunkd.ID)
	if err != nil {
		t.Fatalf("ListEpisodes returned error: %v", err)
	}
	if len(episodes) == 0 {
		t.Fatal("Expected a non-empty episode list")
	}
	if episodes[0].Season != 1 || episodes[0].Number != 1 {
		t.Errorf("Expected first episode to be S1E1, got season %d number %d", episodes[0].Season, episodes[0].Number)
	}
}
