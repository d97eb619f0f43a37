package view

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
)

// ShowIDFrom recovers the show identifier for an activated element. The
// element's own data-show-id wins; otherwise the closest ancestor carrying
// one is used, however deep the element sits inside the show block.
func ShowIDFrom(node *html.Node) (int, error) {
	for n := node; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		raw, ok := attr(n, ShowIDAttr)
		if !ok {
			continue
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			return 0, &apperrors.ErrMissingShowID{Value: raw}
		}
		return id, nil
	}
	return 0, &apperrors.ErrMissingShowID{}
}
