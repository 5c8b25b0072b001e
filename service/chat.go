package service

import (
	"context"

	"github.com/nicolasparada/go-errs"
	"github.com/taemindang/taemindang/auth"
	"github.com/taemindang/taemindang/id"
	"github.com/taemindang/taemindang/types"
	"golang.org/x/sync/errgroup"
)

var ErrNotChatParticipant = errs.PermissionDeniedError("이 채팅방에 접근할 권한이 없습니다")

// SendFirstMessage opens, or reuses, the chat between the logged-in member
// and the seller of the item and appends the message to it.
func (svc *Service) SendFirstMessage(ctx context.Context, in types.SendFirstMessage) (types.FirstMessageSent, error) {
	var out types.FirstMessageSent

	memberID, ok := auth.MemberIDFromContext(ctx)
	if !ok {
		return out, ErrLoginRequired
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	sellerID, err := svc.itemSellerID(ctx, in.ItemID)
	if err != nil {
		return out, err
	}

	in.SetBuyerID(memberID)
	in.SetSellerID(sellerID)

	out, err = svc.Store.SendFirstMessage(ctx, in)
	if err != nil {
		return out, err
	}

	svc.publish(types.ChatEvent{
		Kind:      types.ChatEventMessageCreated,
		ChatID:    out.ChatID,
		ActorID:   memberID,
		MessageID: &out.MessageID,
	})

	return out, nil
}

// itemSellerID is cached since the seller of an item never changes.
func (svc *Service) itemSellerID(ctx context.Context, itemID int64) (int64, error) {
	if sellerID, ok := svc.sellers.Get(itemID); ok {
		return sellerID, nil
	}

	sellerID, err := svc.Store.ItemSellerID(ctx, itemID)
	if err != nil {
		return 0, err
	}

	svc.sellers.Add(itemID, sellerID)
	return sellerID, nil
}

// authorizeParticipant loads the chat and the role the logged-in member has
// in it. Members that are neither seller nor buyer are rejected.
func (svc *Service) authorizeParticipant(ctx context.Context, chatID int64) (types.Chat, int64, types.ChatRole, error) {
	memberID, ok := auth.MemberIDFromContext(ctx)
	if !ok {
		return types.Chat{}, 0, "", ErrLoginRequired
	}

	if !id.Valid(chatID) {
		return types.Chat{}, 0, "", errs.InvalidArgumentError("잘못된 채팅방 번호입니다")
	}

	chat, err := svc.Store.Chat(ctx, chatID)
	if err != nil {
		return chat, 0, "", err
	}

	role, ok := chat.RoleOf(memberID)
	if !ok {
		return chat, 0, "", ErrNotChatParticipant
	}

	return chat, memberID, role, nil
}

// Chats lists the chats of the logged-in member, newest first.
func (svc *Service) Chats(ctx context.Context, in types.ListChats) (types.Page[types.ChatSummary], error) {
	var out types.Page[types.ChatSummary]

	memberID, ok := auth.MemberIDFromContext(ctx)
	if !ok {
		return out, ErrLoginRequired
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	in.SetViewerID(memberID)

	out, err := svc.Store.Chats(ctx, in)
	if err != nil {
		return out, err
	}

	for i := range out.Items {
		out.Items[i].SetURLs(svc.assetsURLPrefix)
	}

	return out, nil
}

// Chat returns the chat header as seen by the logged-in member.
func (svc *Service) Chat(ctx context.Context, in types.RetrieveChat) (types.ChatDetail, error) {
	var out types.ChatDetail

	if _, ok := auth.MemberIDFromContext(ctx); !ok {
		return out, ErrLoginRequired
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	chat, memberID, _, err := svc.authorizeParticipant(ctx, in.ChatID)
	if err != nil {
		return out, err
	}

	in.SetViewerID(memberID)

	var unread int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out, err = svc.Store.ChatDetail(gctx, in)
		return err
	})
	g.Go(func() error {
		var err error
		unread, err = svc.Store.UnreadCount(gctx, chat.ID, memberID)
		return err
	})
	if err := g.Wait(); err != nil {
		return types.ChatDetail{}, err
	}

	out.UnreadCount = unread
	out.SetURLs(svc.assetsURLPrefix)

	return out, nil
}
