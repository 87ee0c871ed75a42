package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStatsAddIsCommutativeAndAssociative(t *testing.T) {
	t.Parallel()

	a := FileStats{Files: 1, Blank: 2, Comment: 3, Code: 4}
	b := FileStats{Files: 1, Blank: 10, Comment: 0, Code: 7}
	c := FileStats{Files: 2, Blank: 0, Comment: 5, Code: 1}

	assert.Equal(t, a.Add(b), b.Add(a))
	assert.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))
	assert.Equal(t, a, a.Add(FileStats{}))
}

func TestAggregateStatsMergeAndTotal(t *testing.T) {
	t.Parallel()

	stats := AggregateStats{}
	stats.Merge("Go", FileStats{Files: 1, Code: 10, Comment: 2})
	stats.Merge("Go", FileStats{Files: 1, Code: 5, Blank: 1})
	stats.Merge("Python", FileStats{Files: 1, Code: 3})

	assert.Equal(t, FileStats{Files: 2, Blank: 1, Comment: 2, Code: 15}, stats["Go"])
	assert.Equal(t, FileStats{Files: 3, Blank: 1, Comment: 2, Code: 18}, stats.Total())
	assert.Equal(t, int64(21), stats.Total().Lines())
}

func TestAggregateStatsSortedByCodeDescending(t *testing.T) {
	t.Parallel()

	stats := AggregateStats{
		"Shell":  {Files: 1, Code: 4},
		"Go":     {Files: 1, Code: 40},
		"Python": {Files: 1, Code: 4},
	}

	sorted := stats.Sorted()
	names := make([]string, 0, len(sorted))
	for _, item := range sorted {
		names = append(names, item.Language)
	}

	assert.Equal(t, []string{"Go", "Python", "Shell"}, names)
}
