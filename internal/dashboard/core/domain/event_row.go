package domain

import (
	"strings"
)

// EventRow is one vehicle/driver event as read from dados_veiculo.
// Nil pointers mean the column was NULL.
type EventRow struct {
	LocalTime *string
	UTCTime   *string

	DriverName *string
	DriverCPF  *string

	OperationType    *string
	CurrentOperation *string
	LastEventType    *string

	PersonDetected *bool
	EyesClosed     *bool
	Yawn           *bool
	PhoneDetected  *bool
	CorrectPosture *bool
	FalsePositive  *bool
	Speeding       *bool
	Panic          *bool
}

var truthyStrings = map[string]struct{}{
	"true": {}, "t": {}, "1": {}, "sim": {}, "yes": {}, "y": {},
}

// ParseFlag normalizes a detector column. The column may hold a boolean, a
// number or a text value depending on how the device wrote it.
func ParseFlag(v any) *bool {
	var b bool
	switch t := v.(type) {
	case nil:
		return nil
	case bool:
		b = t
	case int64:
		b = t != 0
	case int32:
		b = t != 0
	case int:
		b = t != 0
	case float64:
		b = t != 0
	case float32:
		b = t != 0
	case []byte:
		b = isTruthy(string(t))
	case string:
		b = isTruthy(t)
	default:
		b = false
	}
	return &b
}

func isTruthy(s string) bool {
	_, ok := truthyStrings[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// IsSet reports whether the flag was present and true.
func IsSet(f *bool) bool {
	return f != nil && *f
}

// nonBlank returns the trimmed value when it has content.
func nonBlank(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}

// EventLabel returns the first non-blank of last event type, operation type and
// current operation.
func (r EventRow) EventLabel() (string, bool) {
	for _, c := range []*string{r.LastEventType, r.OperationType, r.CurrentOperation} {
		if v, ok := nonBlank(c); ok {
			return v, true
		}
	}
	return "", false
}

// Driver returns the trimmed driver name when present.
func (r EventRow) Driver() (string, bool) {
	return nonBlank(r.DriverName)
}

// RawTimestamp prefers the local timestamp and falls back to UTC.
func (r EventRow) RawTimestamp() (string, bool) {
	if v, ok := nonBlank(r.LocalTime); ok {
		return v, true
	}
	return nonBlank(r.UTCTime)
}

// IsFatigue is true for eyes-closed or yawn detections.
func (r EventRow) IsFatigue() bool {
	return IsSet(r.EyesClosed) || IsSet(r.Yawn)
}

// IncorrectPosture needs the posture column to be present and false.
func (r EventRow) IncorrectPosture() bool {
	return r.CorrectPosture != nil && !*r.CorrectPosture
}
