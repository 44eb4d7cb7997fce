package domain

// NoPeakHour is reported when no row carried a parseable timestamp.
const NoPeakHour = "--:--"

type Badge string

const (
	BadgeCritical  Badge = "critical"
	BadgeHighRisk  Badge = "high risk"
	BadgeAttention Badge = "attention"
	BadgeModerate  Badge = "moderate"
)

type RiskTier string

const (
	RiskCritical  RiskTier = "critical"
	RiskHigh      RiskTier = "high"
	RiskAttention RiskTier = "attention"
	RiskModerate  RiskTier = "moderate"
	RiskLow       RiskTier = "low"
)

type Change string

const (
	ChangeUp   Change = "up"
	ChangeDown Change = "down"
	ChangeSame Change = "same"
)

type EventTypeSummary struct {
	Name       string
	Count      int
	Percentage float64
}

type HourlyBucket struct {
	Hour   string // "HH:00"
	Events int
}

type DriverRanking struct {
	Name       string
	Events     int
	MainEvent  string
	Badge      Badge
	BadgeLabel string
}

type FatigueBucket struct {
	Hour    string
	Fatigue int
}

type BehaviorSummary struct {
	Type      string
	Count     int
	Risk      RiskTier
	RiskLabel string
}

type MonthlyRanking struct {
	Month       string
	Events      int
	Position    int
	Change      Change
	ChangeValue int
}

type Metrics struct {
	TotalEvents     int
	ActiveDrivers   int
	PeakHour        string
	RiskScore       float64
	MonthlyIncrease float64
	FatigueAlerts   int
}

// Dashboard holds every derived view. It is rebuilt wholesale from the rows of
// one fetch.
type Dashboard struct {
	Events         []EventTypeSummary
	HourlyEvents   []HourlyBucket
	TopDrivers     []DriverRanking
	FatigueByHour  []FatigueBucket
	Behaviors      []BehaviorSummary
	MonthlyRanking []MonthlyRanking
	Metrics        Metrics
}

func EmptyDashboard() *Dashboard {
	return &Dashboard{
		Events:         []EventTypeSummary{},
		HourlyEvents:   []HourlyBucket{},
		TopDrivers:     []DriverRanking{},
		FatigueByHour:  []FatigueBucket{},
		Behaviors:      []BehaviorSummary{},
		MonthlyRanking: []MonthlyRanking{},
		Metrics:        Metrics{PeakHour: NoPeakHour},
	}
}
