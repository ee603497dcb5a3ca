package usecase

import (
	"context"

	"github.com/sahilm/fuzzy"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// SearchPanelsUseCase finds panels in a layout by fuzzy name.
type SearchPanelsUseCase struct{}

// NewSearchPanelsUseCase creates a new SearchPanelsUseCase.
func NewSearchPanelsUseCase() *SearchPanelsUseCase {
	return &SearchPanelsUseCase{}
}

// SearchPanelsInput contains the query and the layout to search.
type SearchPanelsInput struct {
	Tree  *entity.LayoutTree
	Query string
	Limit int // 0 = no limit
}

// PanelMatch is one search hit.
type PanelMatch struct {
	Panel          entity.PanelID
	Leaf           entity.ContainerID
	Active         bool
	Docked         bool
	Score          int
	MatchedIndexes []int
}

// SearchPanelsOutput lists hits, best first.
type SearchPanelsOutput struct {
	Matches []PanelMatch
}

// Execute runs the search. An empty query lists every panel in tree order.
func (uc *SearchPanelsUseCase) Execute(ctx context.Context, input SearchPanelsInput) (*SearchPanelsOutput, error) {
	if input.Tree == nil {
		return &SearchPanelsOutput{}, nil
	}

	panels := input.Tree.Panels()
	names := make([]string, len(panels))
	for i, p := range panels {
		names[i] = string(p)
	}

	var matches []PanelMatch
	if input.Query == "" {
		for _, p := range panels {
			matches = append(matches, uc.describe(input.Tree, p, 0, nil))
		}
	} else {
		for _, m := range fuzzy.Find(input.Query, names) {
			matches = append(matches, uc.describe(input.Tree, panels[m.Index], m.Score, m.MatchedIndexes))
		}
	}

	if input.Limit > 0 && len(matches) > input.Limit {
		matches = matches[:input.Limit]
	}

	logging.FromContext(ctx).Debug().
		Str("query", input.Query).
		Int("panel_count", len(panels)).
		Int("match_count", len(matches)).
		Msg("panel search")

	return &SearchPanelsOutput{Matches: matches}, nil
}

func (*SearchPanelsUseCase) describe(tree *entity.LayoutTree, panel entity.PanelID, score int, idx []int) PanelMatch {
	leaf, _ := tree.FindLeafContaining(panel)
	c, _ := tree.Container(leaf)
	return PanelMatch{
		Panel:          panel,
		Leaf:           leaf,
		Active:         c.ActivePanel() == panel,
		Docked:         tree.IsDocked(leaf),
		Score:          score,
		MatchedIndexes: idx,
	}
}
