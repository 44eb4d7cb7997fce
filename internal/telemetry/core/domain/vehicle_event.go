package domain

import "time"

// Flags mirrors the detector columns of a vehicle event row. A nil flag is
// stored as NULL.
type Flags struct {
	PersonDetected *bool
	EyesClosed     *bool
	Yawn           *bool
	PhoneDetected  *bool
	CorrectPosture *bool
	FalsePositive  *bool
	Speeding       *bool
	Panic          *bool
}

type VehicleEvent struct {
	OccurredAt time.Time // UTC
	// LocalTime is OccurredAt as seen on the vehicle's wall clock.
	LocalTime        time.Time
	DriverName       string
	DriverCPF        string
	OperationType    string
	CurrentOperation string
	EventType        string
	Flags            Flags
	DedupeKey        string
}
