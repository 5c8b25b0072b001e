package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nicolasparada/go-errs"
	"github.com/taemindang/taemindang/types"
	"github.com/vmihailenco/msgpack/v5"
)

var ErrChatEventsDisabled = errs.NotFoundError("실시간 이벤트를 사용할 수 없습니다")

// ChatSubject is the subject chat events are published under.
func ChatSubject(chatID int64) string {
	return fmt.Sprintf("chats.%d", chatID)
}

// publish sends the event in the background. It is a no-op without a
// publisher.
func (svc *Service) publish(ev types.ChatEvent) {
	if svc.Publisher == nil {
		return
	}

	ev.OccurredAt = time.Now().UTC()

	svc.background(func(ctx context.Context) error {
		b, err := msgpack.Marshal(ev)
		if err != nil {
			return fmt.Errorf("msgpack marshal chat event: %w", err)
		}

		if err := svc.Publisher.Publish(ctx, ChatSubject(ev.ChatID), b); err != nil {
			return fmt.Errorf("publish %s: %w", ev.Kind, err)
		}

		return nil
	})
}

// SubscribeChat streams the events of a chat the logged-in member takes part
// in. The channel closes once ctx ends. Payloads that fail to decode are
// skipped.
func (svc *Service) SubscribeChat(ctx context.Context, chatID int64) (<-chan types.ChatEvent, error) {
	if _, _, _, err := svc.authorizeParticipant(ctx, chatID); err != nil {
		return nil, err
	}

	if svc.Subscriber == nil {
		return nil, ErrChatEventsDisabled
	}

	payloads, err := svc.Subscriber.Subscribe(ctx, ChatSubject(chatID))
	if err != nil {
		return nil, fmt.Errorf("subscribe chat events: %w", err)
	}

	events := make(chan types.ChatEvent)
	go func() {
		defer close(events)

		for {
			select {
			case <-ctx.Done():
				return
			case b, ok := <-payloads:
				if !ok {
					return
				}

				var ev types.ChatEvent
				if err := msgpack.Unmarshal(b, &ev); err != nil {
					continue
				}

				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}
