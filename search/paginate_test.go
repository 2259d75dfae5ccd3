package search

import (
	"testing"

	"mandap/models"

	"github.com/stretchr/testify/assert"
)

func rankedSet(n int) []RankedVenue {
	out := make([]RankedVenue, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, RankedVenue{Venue: models.Venue{VenueID: string(rune('A' + i))}})
	}
	return out
}

func TestPaginateSecondPageOfThree(t *testing.T) {
	items, pg := Paginate(rankedSet(3), 2, 1)

	assert.Len(t, items, 1)
	assert.Equal(t, "B", items[0].VenueID)
	assert.Equal(t, Pagination{Total: 3, Page: 2, Limit: 1, Pages: 3}, pg)
}

func TestPaginateBeyondLastPage(t *testing.T) {
	items, pg := Paginate(rankedSet(3), 9, 10)

	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Equal(t, 3, pg.Total)
	assert.Equal(t, 1, pg.Pages)
}

func TestPaginateEmptyResult(t *testing.T) {
	items, pg := Paginate(nil, 1, 10)
	assert.Empty(t, items)
	assert.Equal(t, Pagination{Total: 0, Page: 1, Limit: 10, Pages: 0}, pg)
}

func TestPaginateInvariant(t *testing.T) {
	for _, total := range []int{0, 1, 5, 10, 23} {
		set := rankedSet(total)
		for _, limit := range []int{1, 3, 10} {
			for page := 1; page <= 6; page++ {
				items, pg := Paginate(set, page, limit)

				wantPages := (total + limit - 1) / limit
				assert.Equal(t, wantPages, pg.Pages)

				remaining := total - (page-1)*limit
				if remaining < 0 {
					remaining = 0
				}
				wantLen := limit
				if remaining < limit {
					wantLen = remaining
				}
				assert.Len(t, items, wantLen, "total=%d page=%d limit=%d", total, page, limit)
			}
		}
	}
}
