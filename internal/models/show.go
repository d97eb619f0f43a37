package models

// Show represents a TV show as displayed by the widget
type Show struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Summary  string `json:"summary"`
	ImageURL string `json:"imageUrl"`
}

// SearchResult is one entry of the TVmaze show search response.
// Each entry wraps the matching show next to its relevance score.
type SearchResult struct {
	Score float64     `json:"score"`
	Show  ShowPayload `json:"show"`
}

// ShowPayload is the subset of a TVmaze show object the widget reads
type ShowPayload struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Summary *string       `json:"summary"`
	Image   *ImagePayload `json:"image"`
}

// ImagePayload holds the poster variants TVmaze returns for a show.
// Either field may be null, and the whole object may be null or absent.
type ImagePayload struct {
	Medium   *string `json:"medium"`
	Original *string `json:"original"`
}

// ToShow converts the payload into a Show, substituting placeholder when
// the payload carries no original image.
func (p ShowPayload) ToShow(placeholder string) Show {
	show := Show{
		ID:       p.ID,
		Name:     p.Name,
		ImageURL: placeholder,
	}
	if p.Summary != nil {
		show.Summary = *p.Summary
	}
	if p.Image != nil && p.Image.Original != nil && *p.Image.Original != "" {
		show.ImageURL = *p.Image.Original
	}
	return show
}
