package events

import "time"

const EmployeeCreatedTopic = "payledger.employee.created"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID int64     `json:"employee_id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	OccurredAt time.Time `json:"occurred_at"`
}
