package models

import "fmt"

// Episode represents a single installment of a show
type Episode struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season int    `json:"season"`
	Number int    `json:"number"`
}

// String formats the episode the way the episode list displays it.
func (e Episode) String() string {
	return fmt.Sprintf("%s (season %d, number %d)", e.Name, e.Season, e.Number)
}

// EpisodePayload is one entry of the TVmaze episode listing
type EpisodePayload struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Season int    `json:"season"`
	Number *int   `json:"number"`
}

// ToEpisode converts the payload into an Episode. Specials have a null
// number and are reported as number 0.
func (p EpisodePayload) ToEpisode() Episode {
	episode := Episode{
		ID:     p.ID,
		Name:   p.Name,
		Season: p.Season,
	}
	if p.Number != nil {
		episode.Number = *p.Number
	}
	return episode
}
