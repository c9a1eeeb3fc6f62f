package insights

import "github.com/socialpulse/insights-api/internal/models"

// PeriodReport is the full analytics payload for one period: totals,
// comparison against the previous period, the weighted score and the
// secondary breakdowns.
type PeriodReport struct {
	Kind              PeriodKind            `json:"kind"`
	Anchor            string                `json:"anchor"`
	PreviousAnchor    string                `json:"previous_anchor"`
	Window            Window                `json:"window"`
	PreviousWindow    Window                `json:"previous_window"`
	Aggregate         PeriodAggregate       `json:"aggregate"`
	PreviousAggregate PeriodAggregate       `json:"previous_aggregate"`
	Deltas            AggregateDeltas       `json:"deltas"`
	Score             PerformanceScore      `json:"score"`
	Breakdowns        Breakdowns            `json:"breakdowns"`
	AudienceReach     AudienceReachAverages `json:"audience_reach"`
}

// ReportInput carries everything ComputePeriodReport needs. Records
// must cover both the requested and the previous window; the engine
// filters them itself. PostTypes maps linked post ids to their
// category, supplied by the caller because post type is owned by the
// post entity.
type ReportInput struct {
	Records   []*models.MetricRecord
	Kind      PeriodKind
	Anchor    string
	Category  string
	PostTypes map[int64]string
}

// ComputePeriodReport resolves the requested and previous windows,
// filters the supplied records into each, and assembles the report.
// It is a pure function: deterministic for identical inputs, no clock
// reads, no I/O.
func ComputePeriodReport(in ReportInput) (*PeriodReport, error) {
	window, err := ResolvePeriod(in.Kind, in.Anchor)
	if err != nil {
		return nil, err
	}

	prevAnchor, err := PreviousAnchor(in.Kind, in.Anchor)
	if err != nil {
		return nil, err
	}
	prevWindow, err := ResolvePeriod(in.Kind, prevAnchor)
	if err != nil {
		return nil, err
	}

	current, err := FilterRecords(in.Records, window, in.Category, in.PostTypes)
	if err != nil {
		return nil, err
	}
	previous, err := FilterRecords(in.Records, prevWindow, in.Category, in.PostTypes)
	if err != nil {
		return nil, err
	}

	agg := Aggregate(current)
	prevAgg := Aggregate(previous)

	return &PeriodReport{
		Kind:              in.Kind,
		Anchor:            in.Anchor,
		PreviousAnchor:    prevAnchor,
		Window:            window,
		PreviousWindow:    prevWindow,
		Aggregate:         agg,
		PreviousAggregate: prevAgg,
		Deltas:            Deltas(agg, prevAgg),
		Score:             ScorePeriod(agg, agg.AverageReach(), in.Kind),
		Breakdowns:        AnalyzeBreakdowns(current, in.PostTypes),
		AudienceReach:     AverageAudienceReach(current),
	}, nil
}
