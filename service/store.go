package service

import (
	"context"

	"github.com/taemindang/taemindang/types"
)

//go:generate go tool moq -out ../mock/store.go -pkg mock . Store ImageStore Publisher Subscriber

// Store is the persistence the service runs on.
type Store interface {
	Ping(ctx context.Context) error

	ItemSellerID(ctx context.Context, itemID int64) (int64, error)
	Item(ctx context.Context, itemID int64) (types.Item, error)
	UpdateItemStatus(ctx context.Context, in types.UpdateItemStatus) error

	SendFirstMessage(ctx context.Context, in types.SendFirstMessage) (types.FirstMessageSent, error)
	Chat(ctx context.Context, chatID int64) (types.Chat, error)
	ChatDetail(ctx context.Context, in types.RetrieveChat) (types.ChatDetail, error)
	Chats(ctx context.Context, in types.ListChats) (types.Page[types.ChatSummary], error)
	UnreadCount(ctx context.Context, chatID, viewerID int64) (int, error)

	Messages(ctx context.Context, in types.ListMessages) ([]types.Message, error)
	CreateMessage(ctx context.Context, in types.SendMessage) (types.Created, error)

	CreateAppointment(ctx context.Context, in types.ProposeAppointment) (types.AppointmentProposed, error)
	Appointment(ctx context.Context, in types.RetrieveAppointment) (types.Appointment, error)
	ConfirmAppointment(ctx context.Context, in types.ConfirmAppointment) error
}

// ImageStore keeps uploaded chat images. The returned func removes the
// upload again.
type ImageStore interface {
	Upload(ctx context.Context, bucket string, file types.Attachment) (func(), error)
}

// Publisher fans out chat events.
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// Subscriber streams the payloads published under a subject. The channel
// closes once ctx ends.
type Subscriber interface {
	Subscribe(ctx context.Context, subject string) (<-chan []byte, error)
}
