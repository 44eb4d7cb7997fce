package fiber

// CreateEventRequest represents a vehicle event as reported by the on-board unit
// @Description Vehicle event ingestion DTO
type CreateEventRequest struct {
	Timestamp        int64  `json:"timestamp" example:"1714563000"`
	TimeZone         string `json:"time_zone" example:"America/Sao_Paulo"`
	DriverName       string `json:"driver_name" example:"Ana Souza"`
	DriverCPF        string `json:"driver_cpf"`
	OperationType    string `json:"operation_type"`
	CurrentOperation string `json:"current_operation"`
	EventType        string `json:"event_type" example:"Celular"`

	PersonDetected *bool `json:"person_detected"`
	EyesClosed     *bool `json:"eyes_closed"`
	Yawn           *bool `json:"yawn"`
	PhoneDetected  *bool `json:"phone_detected"`
	CorrectPosture *bool `json:"correct_posture"`
	FalsePositive  *bool `json:"false_positive"`
	Speeding       *bool `json:"speeding"`
	Panic          *bool `json:"panic"`
}

type CreateEventResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events"`
}

type BulkCreateEventsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message,omitempty" example:"invalid event: timestamp is required"`
}
