package analytics

import (
	"sort"
	"time"

	util "github.com/NowarkCodes/EduAble-sub000/internal/utils"
)

// Streak counts consecutive UTC calendar days with at least one completion,
// anchored to today or yesterday. Order and duplicates in completions do not matter.
func Streak(completions []time.Time, now time.Time) int {
	seen := make(map[time.Time]struct{}, len(completions))
	days := make([]time.Time, 0, len(completions))
	for _, c := range completions {
		d := util.StartOfUTCDay(c)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	yesterday := util.StartOfUTCDay(now).Add(-util.Day)
	if days[0].Before(yesterday) {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) != util.Day {
			break
		}
		streak++
	}
	return streak
}
