package fiber

type EventTypeResponse struct {
	Name       string  `json:"name" example:"Frenagem Brusca"`
	Count      int     `json:"count" example:"342"`
	Percentage float64 `json:"percentage" example:"28.5"`
}

type HourlyEventResponse struct {
	Hour   string `json:"hour" example:"08:00"`
	Events int    `json:"events" example:"92"`
}

type DriverResponse struct {
	Name       string `json:"name"`
	Events     int    `json:"events"`
	MainEvent  string `json:"main_event"`
	Badge      string `json:"badge" example:"attention"`
	BadgeLabel string `json:"badge_label" example:"Attention"`
}

type FatigueResponse struct {
	Hour    string `json:"hour" example:"22:00"`
	Fatigue int    `json:"fatigue" example:"28"`
}

type BehaviorResponse struct {
	Type      string `json:"type" example:"Phone use"`
	Count     int    `json:"count"`
	Risk      string `json:"risk" example:"critical"`
	RiskLabel string `json:"risk_label" example:"Critical"`
}

type MonthlyRankingResponse struct {
	Month       string `json:"month" example:"January"`
	Events      int    `json:"events"`
	Position    int    `json:"position"`
	Change      string `json:"change" example:"up"`
	ChangeValue int    `json:"change_value"`
}

type MetricsResponse struct {
	TotalEvents     int     `json:"total_events"`
	ActiveDrivers   int     `json:"active_drivers"`
	PeakHour        string  `json:"peak_hour" example:"18:00"`
	RiskScore       float64 `json:"risk_score" example:"3.2"`
	MonthlyIncrease float64 `json:"monthly_increase" example:"12.5"`
	FatigueAlerts   int     `json:"fatigue_alerts"`
}

type DashboardResponse struct {
	Events         []EventTypeResponse      `json:"events"`
	HourlyEvents   []HourlyEventResponse    `json:"hourly_events"`
	TopDrivers     []DriverResponse         `json:"top_drivers"`
	FatigueByHour  []FatigueResponse        `json:"fatigue_by_hour"`
	Behaviors      []BehaviorResponse       `json:"behaviors"`
	MonthlyRanking []MonthlyRankingResponse `json:"monthly_ranking"`
	Metrics        MetricsResponse          `json:"metrics"`
}

// DashboardErrorResponse carries the empty dashboard so clients can keep
// rendering the zeroed views next to the message.
type DashboardErrorResponse struct {
	Error   string            `json:"error" example:"dashboard_unavailable"`
	Message string            `json:"message" example:"could not load dashboard data"`
	Data    DashboardResponse `json:"data"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"request_cancelled"`
	Message string `json:"message,omitempty" example:"request was cancelled"`
}
