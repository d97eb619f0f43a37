package testutil

import (
	"encoding/json"
	"fmt"
)

// ShowFixture describes one entry of a fake show search response
type ShowFixture struct {
	ID       int
	Name     string
	Summary  *string
	Image    string // original image URL, empty omits the "original" field
	NoImage  bool   // true writes "image": null
	OmitKeys bool   // true drops the "image" and "summary" keys entirely
}

// EpisodeFixture describes one entry of a fake episode listing
type EpisodeFixture struct {
	ID     int
	Name   string
	Season int
	Number int
}

// StringPtr is a helper for creating *string values in tests
func StringPtr(v string) *string {
	return &v
}

// SearchResponseJSON renders a TVmaze-shaped show search response
func SearchResponseJSON(shows ...ShowFixture) string {
	entries := make([]map[string]any, 0, len(shows))
	for i, s := range shows {
		show := map[string]any{
			"id":   s.ID,
			"name": s.Name,
			"url":  fmt.Sprintf("https://www.tvmaze.com/shows/%d", s.ID),
		}
		if !s.OmitKeys {
			show["summary"] = s.Summary
			switch {
			case s.NoImage:
				show["image"] = nil
			case s.Image != "":
				show["image"] = map[string]any{"medium": s.Image + "?medium", "original": s.Image}
			default:
				show["image"] = map[string]any{"medium": nil, "original": nil}
			}
		}
		entries = append(entries, map[string]any{
			"score": 1.0 - float64(i)*0.1,
			"show":  show,
		})
	}
	return mustJSON(entries)
}

// EpisodesResponseJSON renders a TVmaze-shaped episode listing
func EpisodesResponseJSON(episodes ...EpisodeFixture) string {
	entries := make([]map[string]any, 0, len(episodes))
	for _, e := range episodes {
		entries = append(entries, map[string]any{
			"id":      e.ID,
			"name":    e.Name,
			"season":  e.Season,
			"number":  e.Number,
			"airdate": "2015-07-31",
		})
	}
	return mustJSON(entries)
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
