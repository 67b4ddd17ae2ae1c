package stats

import (
	"sort"

	"keydrill/internal/model"
)

// TopMissed ranks characters by miss count for the results screen. Characters
// that were never missed are excluded; ties break toward lower hit counts,
// then alphabetically.
func TopMissed(tallies map[rune]model.KeyTally, top int) []model.KeyMiss {
	if len(tallies) == 0 {
		return nil
	}
	missed := make([]model.KeyMiss, 0, len(tallies))
	for ch, tally := range tallies {
		if tally.Misses == 0 {
			continue
		}
		missed = append(missed, model.KeyMiss{Char: ch, Misses: tally.Misses, Hits: tally.Hits})
	}
	sort.Slice(missed, func(i, j int) bool {
		if missed[i].Misses != missed[j].Misses {
			return missed[i].Misses > missed[j].Misses
		}
		if missed[i].Hits != missed[j].Hits {
			return missed[i].Hits < missed[j].Hits
		}
		return missed[i].Char < missed[j].Char
	})
	if top > 0 && top < len(missed) {
		missed = missed[:top]
	}
	return missed
}
