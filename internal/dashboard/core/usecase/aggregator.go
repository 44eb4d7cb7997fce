package usecase

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"time"

	"fleet-dashboard-service/internal/dashboard/core/domain"
)

const (
	topEventTypes = 6
	topDrivers    = 5
	topBehaviors  = 5
	recentMonths  = 6
)

// Aggregator turns a fetched batch of event rows into the dashboard views.
// It keeps no state between calls.
type Aggregator struct {
	policy  RiskPolicy
	catalog Catalog
	loc     *time.Location
}

type AggregatorOption func(*Aggregator)

func WithRiskPolicy(p RiskPolicy) AggregatorOption {
	return func(a *Aggregator) { a.policy = p }
}

func WithCatalog(c Catalog) AggregatorOption {
	return func(a *Aggregator) { a.catalog = c }
}

// WithLocation sets the zone used for hour and month buckets.
func WithLocation(loc *time.Location) AggregatorOption {
	return func(a *Aggregator) {
		if loc != nil {
			a.loc = loc
		}
	}
}

func NewAggregator(opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		policy:  DefaultRiskPolicy(),
		catalog: catalogs[LocaleEnglish],
		loc:     time.UTC,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// counter keeps counts in first-seen order so that stable sorts break ties by
// input order.
type counter struct {
	index map[string]int
	items []labelCount
}

type labelCount struct {
	label string
	count int
}

func newCounter() *counter {
	return &counter{index: map[string]int{}}
}

func (c *counter) add(label string) {
	if i, ok := c.index[label]; ok {
		c.items[i].count++
		return
	}
	c.index[label] = len(c.items)
	c.items = append(c.items, labelCount{label: label, count: 1})
}

func (c *counter) ranked() []labelCount {
	out := slices.Clone(c.items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].count > out[j].count })
	return out
}

type driverTally struct {
	name   string
	events int
	labels *counter
}

type monthTally struct {
	key    string
	label  string
	events int
	latest time.Time
}

type behaviorCounts [behaviorNone]int

func (a *Aggregator) Aggregate(rows []domain.EventRow) *domain.Dashboard {
	if len(rows) == 0 {
		return domain.EmptyDashboard()
	}

	total := len(rows)
	events := newCounter()

	var hourly, fatigueHourly [24]int

	drivers := map[string]*driverTally{}
	var driverOrder []*driverTally

	months := map[string]*monthTally{}
	var monthOrder []*monthTally

	var behaviors behaviorCounts
	var fatigueAlerts, speeding, panics int

	for _, row := range rows {
		label, ok := row.EventLabel()
		if !ok {
			label = a.catalog.UnidentifiedEvent
		}
		events.add(label)

		if raw, ok := row.RawTimestamp(); ok {
			if ts, ok := parseTimestamp(raw, a.loc); ok {
				hour := ts.Hour()
				hourly[hour]++
				if row.IsFatigue() {
					fatigueHourly[hour]++
				}

				key := fmt.Sprintf("%04d-%02d", ts.Year(), int(ts.Month()))
				m, seen := months[key]
				if !seen {
					m = &monthTally{key: key, label: a.catalog.monthName(ts.Month()), latest: ts}
					months[key] = m
					monthOrder = append(monthOrder, m)
				}
				m.events++
				if ts.After(m.latest) {
					m.latest = ts
				}
			}
		}

		name, ok := row.Driver()
		if !ok {
			name = a.catalog.UnidentifiedDriver
		}
		d, seen := drivers[name]
		if !seen {
			d = &driverTally{name: name, labels: newCounter()}
			drivers[name] = d
			driverOrder = append(driverOrder, d)
		}
		d.events++
		d.labels.add(label)

		if row.IsFatigue() {
			fatigueAlerts++
		}
		if domain.IsSet(row.Speeding) {
			speeding++
		}
		if domain.IsSet(row.Panic) {
			panics++
		}
		behaviors.observe(row)
	}

	sort.SliceStable(monthOrder, func(i, j int) bool {
		return monthOrder[i].latest.After(monthOrder[j].latest)
	})

	return &domain.Dashboard{
		Events:         a.eventSummary(events, total),
		HourlyEvents:   hourlySeries(hourly),
		TopDrivers:     a.driverRanking(driverOrder),
		FatigueByHour:  fatigueSeries(fatigueHourly),
		Behaviors:      a.behaviorSummary(behaviors),
		MonthlyRanking: monthlyRanking(monthOrder),
		Metrics: domain.Metrics{
			TotalEvents:     total,
			ActiveDrivers:   len(driverOrder),
			PeakHour:        peakHour(hourly),
			RiskScore:       a.policy.Score(fatigueAlerts, speeding, panics, total),
			MonthlyIncrease: monthlyIncrease(monthOrder),
			FatigueAlerts:   fatigueAlerts,
		},
	}
}

func (a *Aggregator) eventSummary(events *counter, total int) []domain.EventTypeSummary {
	ranked := events.ranked()
	if len(ranked) > topEventTypes {
		ranked = ranked[:topEventTypes]
	}
	out := make([]domain.EventTypeSummary, 0, len(ranked))
	for _, e := range ranked {
		out = append(out, domain.EventTypeSummary{
			Name:       e.label,
			Count:      e.count,
			Percentage: round1(float64(e.count) / float64(total) * 100),
		})
	}
	return out
}

func (a *Aggregator) driverRanking(order []*driverTally) []domain.DriverRanking {
	ranked := slices.Clone(order)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].events > ranked[j].events })
	if len(ranked) > topDrivers {
		ranked = ranked[:topDrivers]
	}

	out := make([]domain.DriverRanking, 0, len(ranked))
	for _, d := range ranked {
		main := a.catalog.UnidentifiedEvent
		if labels := d.labels.ranked(); len(labels) > 0 {
			main = labels[0].label
		}
		badge := a.policy.DriverBadge(d.events)
		out = append(out, domain.DriverRanking{
			Name:       d.name,
			Events:     d.events,
			MainEvent:  main,
			Badge:      badge,
			BadgeLabel: a.catalog.Badges[badge],
		})
	}
	return out
}

func (b *behaviorCounts) observe(row domain.EventRow) {
	if domain.IsSet(row.PhoneDetected) {
		b[behaviorPhoneUse]++
	}
	if domain.IsSet(row.EyesClosed) {
		b[behaviorEyesClosed]++
	}
	if domain.IsSet(row.Yawn) {
		b[behaviorYawn]++
	}
	if domain.IsSet(row.PersonDetected) {
		b[behaviorPersonDetected]++
	}
	if row.IncorrectPosture() {
		b[behaviorIncorrectPosture]++
	}
	if domain.IsSet(row.Panic) {
		b[behaviorPanic]++
	}
	if domain.IsSet(row.FalsePositive) {
		b[behaviorFalsePositive]++
	}
}

func (a *Aggregator) behaviorSummary(counts behaviorCounts) []domain.BehaviorSummary {
	out := make([]domain.BehaviorSummary, 0, topBehaviors)
	for kind := behaviorPhoneUse; kind < behaviorNone; kind++ {
		n := counts[kind]
		if n == 0 {
			continue
		}
		tier := a.policy.behaviorTier(kind, n)
		out = append(out, domain.BehaviorSummary{
			Type:      a.catalog.Behaviors[kind],
			Count:     n,
			Risk:      tier,
			RiskLabel: a.catalog.Risks[tier],
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > topBehaviors {
		out = out[:topBehaviors]
	}

	if len(out) == 0 {
		return []domain.BehaviorSummary{{
			Type:      a.catalog.Behaviors[behaviorNone],
			Count:     0,
			Risk:      domain.RiskLow,
			RiskLabel: a.catalog.Risks[domain.RiskLow],
		}}
	}
	return out
}

// monthlyRanking expects months sorted newest first.
func monthlyRanking(months []*monthTally) []domain.MonthlyRanking {
	if len(months) == 0 {
		return []domain.MonthlyRanking{}
	}

	byEvents := slices.Clone(months)
	sort.SliceStable(byEvents, func(i, j int) bool { return byEvents[i].events > byEvents[j].events })
	positions := make(map[string]int, len(byEvents))
	for i, m := range byEvents {
		positions[m.key] = i + 1
	}

	n := min(len(months), recentMonths)
	out := make([]domain.MonthlyRanking, 0, n)
	for i := 0; i < n; i++ {
		m := months[i]
		diff := 0
		if i+1 < len(months) {
			diff = m.events - months[i+1].events
		}
		change := domain.ChangeSame
		switch {
		case diff > 0:
			change = domain.ChangeUp
		case diff < 0:
			change = domain.ChangeDown
		}
		out = append(out, domain.MonthlyRanking{
			Month:       m.label,
			Events:      m.events,
			Position:    positions[m.key],
			Change:      change,
			ChangeValue: abs(diff),
		})
	}
	return out
}

// monthlyIncrease compares the two most recent months.
func monthlyIncrease(months []*monthTally) float64 {
	if len(months) < 2 {
		return 0
	}
	current, previous := months[0], months[1]
	if previous.events == 0 {
		if current.events > 0 {
			return 100
		}
		return 0
	}
	return round1(float64(current.events-previous.events) / float64(previous.events) * 100)
}

func hourlySeries(counts [24]int) []domain.HourlyBucket {
	out := []domain.HourlyBucket{}
	for h, n := range counts {
		if n > 0 {
			out = append(out, domain.HourlyBucket{Hour: hourLabel(h), Events: n})
		}
	}
	return out
}

func fatigueSeries(counts [24]int) []domain.FatigueBucket {
	out := []domain.FatigueBucket{}
	for h, n := range counts {
		if n > 0 {
			out = append(out, domain.FatigueBucket{Hour: hourLabel(h), Fatigue: n})
		}
	}
	return out
}

// peakHour picks the earliest hour holding the maximum count.
func peakHour(counts [24]int) string {
	best := -1
	for h, n := range counts {
		if n > 0 && (best < 0 || n > counts[best]) {
			best = h
		}
	}
	if best < 0 {
		return domain.NoPeakHour
	}
	return hourLabel(best)
}

func hourLabel(h int) string {
	return fmt.Sprintf("%02d:00", h)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
