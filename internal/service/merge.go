package service

import (
	"cmp"
	"slices"

	"board_syncer/internal/domain"
)

// Reconcile picks the posts of a "since marker" response that still have to be
// displayed, in ascending order.
//
// When the response contains the marker post, only posts newer than it are
// kept. When it does not, the board has dropped the marker from its window and
// the whole response is returned; found is false in that case.
func Reconcile(marker domain.PostID, posts []domain.Post) (fresh []domain.Post, found bool) {
	ordered := ascending(posts)

	for i, p := range ordered {
		if p.ID == marker {
			return ordered[i+1:], true
		}
	}

	return ordered, false
}

// ascending returns a sorted copy of posts with duplicate IDs removed.
func ascending(posts []domain.Post) []domain.Post {
	ordered := slices.Clone(posts)
	slices.SortStableFunc(ordered, func(a, b domain.Post) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return slices.CompactFunc(ordered, func(a, b domain.Post) bool {
		return a.ID == b.ID
	})
}

func withoutDisplayed(posts []domain.Post, display Display) []domain.Post {
	return slices.DeleteFunc(posts, func(p domain.Post) bool {
		return display.Contains(p.ID)
	})
}
