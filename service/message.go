package service

import (
	"context"
	"fmt"
	"time"

	"github.com/taemindang/taemindang/auth"
	"github.com/taemindang/taemindang/types"
)

// Messages returns the ledger of the chat and marks it read for the
// logged-in member.
func (svc *Service) Messages(ctx context.Context, in types.ListMessages) (types.ChatMessages, error) {
	var out types.ChatMessages

	if _, ok := auth.MemberIDFromContext(ctx); !ok {
		return out, ErrLoginRequired
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	_, memberID, role, err := svc.authorizeParticipant(ctx, in.ChatID)
	if err != nil {
		return out, err
	}

	in.SetViewer(memberID, role)

	msgs, err := svc.Store.Messages(ctx, in)
	if err != nil {
		return out, err
	}

	for i := range msgs {
		msgs[i].SetImageURL(svc.mediaURLPrefix)
	}

	out.ChatID = in.ChatID
	out.Messages = msgs

	if len(msgs) != 0 {
		last := msgs[len(msgs)-1].ID
		svc.publish(types.ChatEvent{
			Kind:      types.ChatEventRead,
			ChatID:    in.ChatID,
			ActorID:   memberID,
			MessageID: &last,
		})
	}

	return out, nil
}

// SendMessage appends a text or image message from the logged-in member.
func (svc *Service) SendMessage(ctx context.Context, in types.SendMessage) (types.MessageSent, error) {
	var out types.MessageSent

	if _, ok := auth.MemberIDFromContext(ctx); !ok {
		return out, ErrLoginRequired
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	_, memberID, role, err := svc.authorizeParticipant(ctx, in.ChatID)
	if err != nil {
		return out, err
	}

	in.SetSender(memberID, role)

	cleanup := func() {}
	if in.Image != nil {
		attachment, err := processChatImage(in.Image, time.Now())
		if err != nil {
			return out, err
		}

		if svc.Images == nil {
			return out, fmt.Errorf("send message: no image store configured")
		}

		cleanup, err = svc.Images.Upload(ctx, ChatImagesBucket, attachment)
		if err != nil {
			return out, fmt.Errorf("upload chat image: %w", err)
		}

		in.SetImageURL(ChatImagesBucket + "/" + attachment.Path)
	}

	created, err := svc.Store.CreateMessage(ctx, in)
	if err != nil {
		go cleanup()
		return out, err
	}

	out.MessageID = created.ID
	if imageURL := in.ImageURL(); imageURL != nil {
		out.ImageURL = new(types.JoinURL(svc.mediaURLPrefix, *imageURL))
	}

	svc.publish(types.ChatEvent{
		Kind:      types.ChatEventMessageCreated,
		ChatID:    in.ChatID,
		ActorID:   memberID,
		MessageID: &out.MessageID,
	})

	return out, nil
}
