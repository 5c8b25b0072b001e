package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taemindang/taemindang/mock"
	"github.com/taemindang/taemindang/service"
	"github.com/taemindang/taemindang/types"
	"github.com/vmihailenco/msgpack/v5"
)

func TestService_SubscribeChat(t *testing.T) {
	chat := types.Chat{ID: 3, ItemID: 7, SellerID: 1, BuyerID: 2}

	t.Run("disabled", func(t *testing.T) {
		svc := newTestService(t, chatStore(chat))
		_, err := svc.SubscribeChat(asMember(1), 3)
		if !errors.Is(err, service.ErrChatEventsDisabled) {
			t.Errorf("err = %v, want %v", err, service.ErrChatEventsDisabled)
		}
	})

	t.Run("outsider", func(t *testing.T) {
		subscriber := &mock.SubscriberMock{}
		svc := newTestService(t, chatStore(chat), func(cfg *service.Config) {
			cfg.Subscriber = subscriber
		})

		_, err := svc.SubscribeChat(asMember(9), 3)
		if !errors.Is(err, service.ErrNotChatParticipant) {
			t.Errorf("err = %v, want %v", err, service.ErrNotChatParticipant)
		}
		if len(subscriber.SubscribeCalls()) != 0 {
			t.Error("outsider should not subscribe")
		}
	})

	t.Run("decodes_events", func(t *testing.T) {
		payloads := make(chan []byte, 2)
		payloads <- []byte("garbage")

		msgID := int64(10)
		b, err := msgpack.Marshal(types.ChatEvent{
			Kind:      types.ChatEventMessageCreated,
			ChatID:    3,
			ActorID:   2,
			MessageID: &msgID,
		})
		if err != nil {
			t.Fatal(err)
		}
		payloads <- b
		close(payloads)

		subscriber := &mock.SubscriberMock{
			SubscribeFunc: func(ctx context.Context, subject string) (<-chan []byte, error) {
				return payloads, nil
			},
		}
		svc := newTestService(t, chatStore(chat), func(cfg *service.Config) {
			cfg.Subscriber = subscriber
		})

		ctx, cancel := context.WithTimeout(asMember(1), 5*time.Second)
		defer cancel()

		events, err := svc.SubscribeChat(ctx, 3)
		if err != nil {
			t.Fatal(err)
		}

		if got := subscriber.SubscribeCalls()[0].Subject; got != "chats.3" {
			t.Errorf("subject = %q", got)
		}

		var got []types.ChatEvent
		for ev := range events {
			got = append(got, ev)
		}

		if len(got) != 1 {
			t.Fatalf("got %d events, want 1", len(got))
		}
		if got[0].Kind != types.ChatEventMessageCreated || got[0].MessageID == nil || *got[0].MessageID != 10 {
			t.Errorf("unexpected event %+v", got[0])
		}
	})
}
