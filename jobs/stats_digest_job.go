package jobs

import (
	"log"

	"github.com/anjiri1684/gradebook/services"
)

// AverageRecorder receives the per-test averages computed by the digest.
type AverageRecorder interface {
	SetTestAverage(testID int, avg float64)
	ClearTestAverage(testID int)
}

// StatsDigest returns a cron job that logs a summary line per test and
// refreshes the recorded averages.
func StatsDigest(stats *services.StatsService, rec AverageRecorder) func() {
	return func() {
		log.Println("Running job: StatsDigest...")

		digest := stats.Digest()
		if len(digest) == 0 {
			log.Println("No tests registered.")
			return
		}

		graded := 0
		for _, d := range digest {
			if d.Count == 0 {
				rec.ClearTestAverage(d.TestID)
				log.Printf("Test %d (%s): no results", d.TestID, d.Name)
				continue
			}
			graded++
			rec.SetTestAverage(d.TestID, d.Average)
			log.Printf("Test %d (%s): %d result(s), average %.2f, highest %d/%d",
				d.TestID, d.Name, d.Count, d.Average, d.Highest, d.MaxScore)
		}

		log.Printf("Digest covered %d test(s), %d with results.", len(digest), graded)
	}
}
