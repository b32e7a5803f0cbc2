package analytics

// ImprovementDelta compares newScore with the score of the immediately preceding
// attempt. A nil previous score means this is the first attempt and yields nil,
// which is distinct from a zero delta.
func ImprovementDelta(previousScore *int, newScore int) *int {
	if previousScore == nil {
		return nil
	}
	delta := newScore - *previousScore
	return &delta
}
