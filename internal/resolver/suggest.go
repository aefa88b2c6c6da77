package resolver

import (
	"context"
	"sort"

	"github.com/hbollon/go-edlib"

	"github.com/vmunix/arrhub/internal/media"
)

// Suggestion is a near-miss title offered when resolution finds nothing.
type Suggestion struct {
	Title string  `json:"title"`
	Year  int     `json:"year,omitempty"`
	Score float64 `json:"score"`
}

// Suggest returns up to n lookup titles closest to the query, ranked by
// Jaro-Winkler similarity over normalized titles. It is advisory only and
// never influences which record Resolve selects.
func (r *Resolver) Suggest(ctx context.Context, title string, n int) ([]Suggestion, error) {
	recs, err := r.svc.Lookup(ctx, title)
	if err != nil {
		return nil, err
	}

	normalized := media.Normalize(title)
	suggestions := make([]Suggestion, 0, len(recs))
	for i := range recs {
		candidate := media.Normalize(recs[i].Title)
		if candidate == "" {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Title: recs[i].Title,
			Year:  recs[i].Year,
			Score: float64(edlib.JaroWinklerSimilarity(normalized, candidate)),
		})
	}

	// Stable sort keeps lookup order for equal scores.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if n > 0 && len(suggestions) > n {
		suggestions = suggestions[:n]
	}
	return suggestions, nil
}
