package entity

import "time"

type ChangeAction string

const (
	ActionCreated ChangeAction = "created"
	ActionUpdated ChangeAction = "updated"
	ActionDeleted ChangeAction = "deleted"
)

// ChangeEvent describes a committed mutation of one entity.
type ChangeEvent struct {
	Entity     string       `json:"entity"`
	Action     ChangeAction `json:"action"`
	ID         int64        `json:"id"`
	OccurredAt time.Time    `json:"occurred_at"`
	Payload    any          `json:"payload,omitempty"`
}

func (e ChangeEvent) Type() string {
	return e.Entity + "." + string(e.Action)
}
