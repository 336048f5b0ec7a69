package fragmen

import (
	"slices"
	"strings"
)

// RelatedScore scores how related candidate is to target.
// Sharing a category is worth 3, each distinct shared tag 2, and a name that
// contains the other name 1.
func RelatedScore(target, candidate *Fragment) int {
	score := 0
	if candidate.Category == target.Category {
		score += 3
	}
	seen := make(map[string]bool, len(candidate.Tags))
	for _, tag := range candidate.Tags {
		if !seen[tag] && slices.Contains(target.Tags, tag) {
			score += 2
		}
		seen[tag] = true
	}
	if strings.Contains(candidate.Name, target.Name) || strings.Contains(target.Name, candidate.Name) {
		score++
	}
	return score
}

// FindRelated returns up to limit fragments from all that relate to target,
// best first. The target itself and candidates scoring zero are never
// returned. Equal scores keep the order in which they appear in all.
func FindRelated(target *Fragment, all []*Fragment, limit int) []*Fragment {
	if target == nil || limit <= 0 {
		return nil
	}

	type scored struct {
		fragment *Fragment
		score    int
	}

	var candidates []scored
	for _, f := range all {
		if f == nil || f.Slug == target.Slug {
			continue
		}
		if s := RelatedScore(target, f); s > 0 {
			candidates = append(candidates, scored{fragment: f, score: s})
		}
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		return b.score - a.score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	related := make([]*Fragment, 0, len(candidates))
	for _, c := range candidates {
		related = append(related, c.fragment)
	}
	return related
}
