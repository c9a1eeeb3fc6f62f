package insights

import (
	"sort"
	"strconv"
	"strings"

	"github.com/socialpulse/insights-api/internal/models"
)

type HashtagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type TimeSlotStat struct {
	Slot           string  `json:"slot"`
	Posts          int     `json:"posts"`
	MeanEngagement float64 `json:"mean_engagement"`
}

type PostTypeShare struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type Breakdowns struct {
	TopHashtags  []HashtagCount  `json:"top_hashtags"`
	TimeSlots    []TimeSlotStat  `json:"time_slots"`
	BestTimeSlot *string         `json:"best_time_slot"`
	PostTypes    []PostTypeShare `json:"post_types"`
}

const topHashtagLimit = 5

// Six fixed slots; the late-night slot wraps across midnight.
var timeSlots = []struct {
	name       string
	start, end int // [start, end) in hours; wraps when start > end
}{
	{"early_morning", 6, 9},
	{"morning", 9, 12},
	{"afternoon", 12, 15},
	{"evening", 15, 18},
	{"night", 18, 21},
	{"late_night", 21, 6},
}

// AnalyzeBreakdowns runs the three secondary analyses over one
// filtered record set.
func AnalyzeBreakdowns(records []*models.MetricRecord, postTypes map[int64]string) Breakdowns {
	slots := timeSlotProfile(records)
	return Breakdowns{
		TopHashtags:  TopHashtags(records),
		TimeSlots:    slots,
		BestTimeSlot: bestTimeSlot(slots),
		PostTypes:    PostTypeDistribution(records, postTypes),
	}
}

// TopHashtags counts hashtag occurrences across all records and
// returns the five most frequent. Ties keep first-seen order.
func TopHashtags(records []*models.MetricRecord) []HashtagCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		for _, tag := range r.Hashtags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	ranked := make([]HashtagCount, 0, len(order))
	for _, tag := range order {
		ranked = append(ranked, HashtagCount{Tag: tag, Count: counts[tag]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topHashtagLimit {
		ranked = ranked[:topHashtagLimit]
	}
	return ranked
}

func timeSlotProfile(records []*models.MetricRecord) []TimeSlotStat {
	stats := make([]TimeSlotStat, len(timeSlots))
	sums := make([]int, len(timeSlots))
	for i, slot := range timeSlots {
		stats[i].Slot = slot.name
	}

	for _, r := range records {
		hour, ok := publishedHour(r)
		if !ok {
			continue
		}
		for i, slot := range timeSlots {
			if !hourInSlot(hour, slot.start, slot.end) {
				continue
			}
			stats[i].Posts++
			sums[i] += r.Likes + r.Comments + r.Shares
			break
		}
	}

	for i := range stats {
		if stats[i].Posts > 0 {
			stats[i].MeanEngagement = float64(sums[i]) / float64(stats[i].Posts)
		}
	}
	return stats
}

func bestTimeSlot(stats []TimeSlotStat) *string {
	best := -1
	for i, s := range stats {
		if s.Posts == 0 {
			continue
		}
		if best == -1 || s.MeanEngagement > stats[best].MeanEngagement {
			best = i
		}
	}
	if best == -1 {
		return nil
	}
	return &stats[best].Slot
}

// PostTypeDistribution counts records per resolved category and the
// share of each over the categorized total.
func PostTypeDistribution(records []*models.MetricRecord, postTypes map[int64]string) []PostTypeShare {
	counts := map[string]int{}
	total := 0
	for _, r := range records {
		category := resolveCategory(r, postTypes)
		if !validCategory(category) {
			continue
		}
		counts[category]++
		total++
	}

	shares := make([]PostTypeShare, 0, 3)
	for _, category := range []string{models.CategoryFeed, models.CategoryReel, models.CategoryStory} {
		share := PostTypeShare{Category: category, Count: counts[category]}
		if total > 0 {
			share.Percentage = float64(counts[category]) / float64(total) * 100
		}
		shares = append(shares, share)
	}
	return shares
}

// publishedHour parses the hour out of the record's "HH:MM" time of
// day. Records without one are excluded from every slot.
func publishedHour(r *models.MetricRecord) (int, bool) {
	if r.PublishedTime == nil {
		return 0, false
	}
	parts := strings.SplitN(*r.PublishedTime, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

func hourInSlot(hour, start, end int) bool {
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}
