package stations

import "github.com/radiopassport/radio-passport/internal/models"

// Health status labels attached to curated stations.
const (
	HealthGood    = "good"
	HealthWarning = "warning"
	HealthError   = "error"
)

// AnnotateHealth computes a composite health score per station from bitrate,
// community votes, and the directory's last reachability check, and grades it
// into good/warning/error. Existing annotations are overwritten; the input
// slice is not mutated.
func AnnotateHealth(list []models.Station) []models.Station {
	annotated := make([]models.Station, 0, len(list))
	for _, station := range list {
		lastCheckOK := station.LastCheckOK == nil || *station.LastCheckOK

		bitrateScore := min(float64(station.Bitrate)/256, 1)
		voteScore := min(float64(station.Votes)/100, 1)
		reliability := 1.0
		if !lastCheckOK {
			reliability = 0.5
		}

		composite := (bitrateScore*0.5 + voteScore*0.1 + reliability*0.4) * 100
		score := int(composite + 0.5)

		status := HealthWarning
		switch {
		case score >= 70:
			status = HealthGood
		case score <= 40:
			status = HealthError
		}

		station.HealthScore = &score
		station.HealthStatus = status
		station.IsLikelyUp = &lastCheckOK
		annotated = append(annotated, station)
	}
	return annotated
}
