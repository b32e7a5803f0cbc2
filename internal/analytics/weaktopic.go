package analytics

import (
	"sort"
	"strings"
)

const DefaultTopic = "General"

// Observation is one question a learner saw in an attempt and whether they got it right.
type Observation struct {
	Topic   string
	Correct bool
}

type WeakTopic struct {
	Topic    string  `json:"topic"`
	Misses   int     `json:"misses"`
	Seen     int     `json:"seen"`
	MissRate float64 `json:"miss_rate"`
}

// RankWeakTopics aggregates observations per topic and returns the topics with at
// least one miss, ordered by miss rate, then raw misses, then topic name.
func RankWeakTopics(observations []Observation) []WeakTopic {
	byTopic := make(map[string]*WeakTopic)
	for _, o := range observations {
		topic := strings.TrimSpace(o.Topic)
		if topic == "" {
			topic = DefaultTopic
		}
		wt, ok := byTopic[topic]
		if !ok {
			wt = &WeakTopic{Topic: topic}
			byTopic[topic] = wt
		}
		wt.Seen++
		if !o.Correct {
			wt.Misses++
		}
	}

	ranked := make([]WeakTopic, 0, len(byTopic))
	for _, wt := range byTopic {
		if wt.Misses == 0 {
			continue
		}
		wt.MissRate = float64(wt.Misses) / float64(wt.Seen)
		ranked = append(ranked, *wt)
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.MissRate != b.MissRate {
			return a.MissRate > b.MissRate
		}
		if a.Misses != b.Misses {
			return a.Misses > b.Misses
		}
		return a.Topic < b.Topic
	})
	return ranked
}

func TopWeakTopics(ranked []WeakTopic, n int) []WeakTopic {
	if n < len(ranked) {
		return ranked[:n]
	}
	return ranked
}
