package types

import "time"

type ChatEventKind string

const (
	ChatEventMessageCreated       ChatEventKind = "message.created"
	ChatEventAppointmentCreated   ChatEventKind = "appointment.created"
	ChatEventAppointmentConfirmed ChatEventKind = "appointment.confirmed"
	ChatEventItemStatusChanged    ChatEventKind = "item.status_changed"
	ChatEventRead                 ChatEventKind = "chat.read"
)

// ChatEvent is published after a committed change to a chat.
type ChatEvent struct {
	Kind          ChatEventKind `msgpack:"kind" json:"kind"`
	ChatID        int64         `msgpack:"chat_id" json:"chat_id"`
	ActorID       int64         `msgpack:"actor_id" json:"actor_id"`
	MessageID     *int64        `msgpack:"message_id,omitempty" json:"message_id,omitempty"`
	AppointmentID *int64        `msgpack:"appointment_id,omitempty" json:"appointment_id,omitempty"`
	ItemStatus    *ItemStatus   `msgpack:"item_status,omitempty" json:"item_status,omitempty"`
	OccurredAt    time.Time     `msgpack:"occurred_at" json:"occurred_at"`
}
