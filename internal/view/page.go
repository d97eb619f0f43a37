package view

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

//go:embed index.html
var pageTemplate []byte

// Selectors of the elements the widget drives.
const (
	SearchFormSelector   = "#searchForm"
	SearchTermSelector   = "#searchForm-term"
	ShowsListSelector    = "#showsList"
	EpisodesAreaSelector = "#episodesArea"
	EpisodesListSelector = "#episodesList"
)

// Page is the widget's document together with handles on the containers
// the renderer and the controller mutate.
type Page struct {
	doc          *html.Node
	searchTerm   *html.Node
	Shows        *Container
	EpisodesArea *Container
	Episodes     *Container
}

// NewPage returns a fresh copy of the widget page: empty show list and a
// hidden episode area.
func NewPage() *Page {
	page, err := ParsePage(bytes.NewReader(pageTemplate))
	if err != nil {
		// The template is embedded, a parse failure is a build defect.
		panic(fmt.Sprintf("view: embedded page template is invalid: %v", err))
	}
	return page
}

// ParsePage parses a serialized widget page, such as a session snapshot.
func ParsePage(r io.Reader) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	query := goquery.NewDocumentFromNode(doc)
	lookup := func(selector string) (*html.Node, error) {
		sel := query.Find(selector)
		if sel.Length() == 0 {
			return nil, fmt.Errorf("page has no element matching %q", selector)
		}
		return sel.Get(0), nil
	}

	searchTerm, err := lookup(SearchTermSelector)
	if err != nil {
		return nil, err
	}
	page := &Page{doc: doc, searchTerm: searchTerm}

	containers := []struct {
		selector string
		target   **Container
	}{
		{ShowsListSelector, &page.Shows},
		{EpisodesAreaSelector, &page.EpisodesArea},
		{EpisodesListSelector, &page.Episodes},
	}
	for _, c := range containers {
		node, err := lookup(c.selector)
		if err != nil {
			return nil, err
		}
		*c.target = NewContainer(node)
	}

	return page, nil
}

// SetSearchTerm fills the search input so the page echoes the last query.
func (p *Page) SetSearchTerm(term string) {
	setAttr(p.searchTerm, "value", term)
}

// Query exposes the page to goquery selectors.
func (p *Page) Query() *goquery.Document {
	return goquery.NewDocumentFromNode(p.doc)
}

// EpisodeControl finds the "Episodes" control rendered for showID.
func (p *Page) EpisodeControl(showID int) (*html.Node, bool) {
	sel := p.Query().Find(fmt.Sprintf(`%s button.%s[data-show-id="%d"]`, ShowsListSelector, EpisodesControlClass, showID))
	if sel.Length() == 0 {
		return nil, false
	}
	return sel.Get(0), true
}

// Render writes the page as HTML.
func (p *Page) Render(w io.Writer) error {
	return html.Render(w, p.doc)
}

// Bytes serializes the page.
func (p *Page) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
