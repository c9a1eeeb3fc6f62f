package insights

import "github.com/socialpulse/insights-api/internal/models"

// AudienceReachAverages carries the per-field means of the optional
// demographic and reach-source distributions, plus how many records
// contributed to each.
type AudienceReachAverages struct {
	Audience           models.AudienceDistribution    `json:"audience"`
	AudienceSamples    int                            `json:"audience_samples"`
	ReachSource        models.ReachSourceDistribution `json:"reach_source"`
	ReachSourceSamples int                            `json:"reach_source_samples"`
}

// AverageAudienceReach averages the two distributions independently:
// a record contributes to one average only when it carries that
// distribution. Fields are averaged as-is and not renormalized to sum
// to 100. Zero qualifying records leave the all-zero struct in place.
func AverageAudienceReach(records []*models.MetricRecord) AudienceReachAverages {
	var out AudienceReachAverages

	for _, r := range records {
		if r.Audience != nil {
			a := r.Audience
			out.Audience.GenderMale += a.GenderMale
			out.Audience.GenderFemale += a.GenderFemale
			out.Audience.GenderOther += a.GenderOther
			out.Audience.Age13To17 += a.Age13To17
			out.Audience.Age18To24 += a.Age18To24
			out.Audience.Age25To34 += a.Age25To34
			out.Audience.Age35To44 += a.Age35To44
			out.Audience.Age45To54 += a.Age45To54
			out.Audience.Age55To64 += a.Age55To64
			out.Audience.Age65Plus += a.Age65Plus
			out.AudienceSamples++
		}
		if r.ReachSource != nil {
			s := r.ReachSource
			out.ReachSource.FromPosts += s.FromPosts
			out.ReachSource.FromProfile += s.FromProfile
			out.ReachSource.FromExplore += s.FromExplore
			out.ReachSource.FromSearch += s.FromSearch
			out.ReachSource.FromOther += s.FromOther
			out.ReachSource.Followers += s.Followers
			out.ReachSource.NonFollowers += s.NonFollowers
			out.ReachSourceSamples++
		}
	}

	if n := float64(out.AudienceSamples); n > 0 {
		out.Audience.GenderMale /= n
		out.Audience.GenderFemale /= n
		out.Audience.GenderOther /= n
		out.Audience.Age13To17 /= n
		out.Audience.Age18To24 /= n
		out.Audience.Age25To34 /= n
		out.Audience.Age35To44 /= n
		out.Audience.Age45To54 /= n
		out.Audience.Age55To64 /= n
		out.Audience.Age65Plus /= n
	}
	if n := float64(out.ReachSourceSamples); n > 0 {
		out.ReachSource.FromPosts /= n
		out.ReachSource.FromProfile /= n
		out.ReachSource.FromExplore /= n
		out.ReachSource.FromSearch /= n
		out.ReachSource.FromOther /= n
		out.ReachSource.Followers /= n
		out.ReachSource.NonFollowers /= n
	}

	return out
}
