package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunFilterSortPaginate(t *testing.T) {
	items := []int{5, 3, 8, 1, 9, 2, 7, 4, 6, 10, 11}

	result := Run(items, Spec[int]{
		Match:    func(n int) bool { return n > 2 },
		Priority: func(n int) int { return n },
		Page:     1,
		Limit:    5,
	})

	assert.Equal(t, []int{3, 4, 5, 6, 7}, result.Data)
	assert.Equal(t, 9, result.Total)
	assert.Equal(t, 2, result.TotalPages)

	page2 := Run(items, Spec[int]{
		Match:    func(n int) bool { return n > 2 },
		Priority: func(n int) int { return n },
		Page:     2,
		Limit:    5,
	})
	assert.Equal(t, []int{8, 9, 10, 11}, page2.Data)
}

func TestRunDefaults(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	// zero page and limit fall back to page 1, limit 10
	result := Run(items, Spec[int]{})
	assert.Len(t, result.Data, 10)
	assert.Equal(t, 25, result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 0, result.Data[0])
}

func TestRunPageBeyondEnd(t *testing.T) {
	result := Run([]int{1, 2, 3}, Spec[int]{Page: 5, Limit: 10})
	assert.Empty(t, result.Data)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 1, result.TotalPages)
}

func TestRunStableForEqualPriorities(t *testing.T) {
	type row struct {
		id       int
		priority int
	}
	items := []row{{1, 2}, {2, 1}, {3, 2}, {4, 1}}

	result := Run(items, Spec[row]{
		Priority: func(r row) int { return r.priority },
	})

	ids := make([]int, len(result.Data))
	for i, r := range result.Data {
		ids[i] = r.id
	}
	assert.Equal(t, []int{2, 4, 1, 3}, ids)
}

func TestRunDoesNotMutateInput(t *testing.T) {
	items := []int{3, 1, 2}
	Run(items, Spec[int]{Priority: func(n int) int { return n }})
	assert.Equal(t, []int{3, 1, 2}, items)
}

func TestContainsFoldTurkish(t *testing.T) {
	tests := []struct {
		haystack string
		needle   string
		want     bool
	}{
		{"İstanbul Merkez Arsa", "istanbul", true},
		{"ISPARTA", "ısparta", true},
		{"Diyarbakır", "DİYARBAKIR", true},
		{"Merkez", "kiralık", false},
		{"herhangi", "", true},
		{"herhangi", "   ", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ContainsFold(tt.haystack, tt.needle),
			"ContainsFold(%q, %q)", tt.haystack, tt.needle)
	}
}
