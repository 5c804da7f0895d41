package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/tabdash/tabdash/internal/model"
)

// Result represents a fuzzy search match.
type Result struct {
	Bookmark       model.FlatBookmark
	MatchedIndexes []int
	Score          int
}

// bookmarkTitles implements fuzzy.Source for a flat bookmark slice.
type bookmarkTitles []model.FlatBookmark

func (bt bookmarkTitles) String(i int) string {
	return bt[i].Title
}

func (bt bookmarkTitles) Len() int {
	return len(bt)
}

// Bookmarks searches the flattened bookmark list by title using fuzzy
// matching. Returns results sorted by match score (best first).
func Bookmarks(bookmarks []model.FlatBookmark, query string) []Result {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, bookmarkTitles(bookmarks))

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Bookmark:       bookmarks[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
