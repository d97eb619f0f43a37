package view

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
)

const (
	// ShowIDAttr carries a show's identifier on its block and on its Episodes control.
	ShowIDAttr = "data-show-id"
	// EpisodesControlClass marks the control that requests a show's episodes.
	EpisodesControlClass = "Show-getEpisodes"
)

// Renderer turns shows and episodes into DOM nodes inside the two containers
// it was built with. Every call replaces the container's previous content.
type Renderer struct {
	shows    *Container
	episodes *Container
}

// NewRenderer creates a renderer bound to the show and episode containers
func NewRenderer(shows, episodes *Container) *Renderer {
	return &Renderer{
		shows:    shows,
		episodes: episodes,
	}
}

// RenderShows replaces the show container's content with one block per show, in order.
func (r *Renderer) RenderShows(shows []models.Show) {
	r.shows.Empty()
	for _, show := range shows {
		r.shows.Append(ShowBlock(show))
	}

	logger := config.GetLogger()
	logger.Debug().Int("shows", len(shows)).Msg("Rendered shows")
}

// RenderEpisodes replaces the episode list with one entry per episode, in order.
func (r *Renderer) RenderEpisodes(episodes []models.Episode) {
	r.episodes.Empty()
	for _, episode := range episodes {
		r.episodes.Append(element(atom.Li, nil, textNode(episode.String())))
	}

	logger := config.GetLogger()
	logger.Debug().Int("episodes", len(episodes)).Msg("Rendered episodes")
}

// ShowBlock builds the markup of a single show:
//
//	div.Show[data-show-id]
//	  div.media
//	    img
//	    div.media-body
//	      h5 name
//	      div.Show-summary > small > summary
//	      form[action=/shows/{id}/episodes] > button.Show-getEpisodes[data-show-id]
func ShowBlock(show models.Show) *html.Node {
	id := strconv.Itoa(show.ID)

	summary := element(atom.Small, nil, sanitizeSummary(show.Summary)...)

	control := element(atom.Button, []html.Attribute{
		{Key: "type", Val: "submit"},
		{Key: "class", Val: "btn btn-outline-light btn-sm " + EpisodesControlClass},
		{Key: ShowIDAttr, Val: id},
	}, textNode("Episodes"))

	body := element(atom.Div, []html.Attribute{{Key: "class", Val: "media-body"}},
		element(atom.H5, []html.Attribute{{Key: "class", Val: "text-primary"}}, textNode(show.Name)),
		element(atom.Div, []html.Attribute{{Key: "class", Val: "Show-summary"}}, summary),
		element(atom.Form, []html.Attribute{
			{Key: "method", Val: "post"},
			{Key: "action", Val: EpisodesPath(show.ID)},
		}, control),
	)

	media := element(atom.Div, []html.Attribute{{Key: "class", Val: "media"}},
		element(atom.Img, []html.Attribute{
			{Key: "src", Val: show.ImageURL},
			{Key: "alt", Val: "image for " + show.Name},
			{Key: "class", Val: "w-25 me-3"},
		}),
		body,
	)

	return element(atom.Div, []html.Attribute{
		{Key: ShowIDAttr, Val: id},
		{Key: "class", Val: "Show col-md-12 col-lg-6 mb-4"},
	}, media)
}

// EpisodesPath is the form action of a show's Episodes control.
func EpisodesPath(showID int) string {
	return fmt.Sprintf("/shows/%d/episodes", showID)
}

func element(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     attrs,
	}
	for _, child := range children {
		n.AppendChild(child)
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
