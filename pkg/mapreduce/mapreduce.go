package mapreduce

import "github.com/dtnitsch/hashtag-tally/models"

// Reduce aggregates a slice of tables into a single table.
func Reduce(intermediate []models.Table) models.Table {
	finalResults := make(models.Table)

	for _, table := range intermediate {
		finalResults.Merge(table)
	}

	return finalResults
}
