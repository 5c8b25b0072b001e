package service

import (
	"context"

	"github.com/nicolasparada/go-errs"
	"github.com/taemindang/taemindang/auth"
	"github.com/taemindang/taemindang/types"
)

var (
	ErrSellerOnly     = errs.PermissionDeniedError("판매자만 거래 상태를 변경할 수 있습니다")
	ErrNotItemsSeller = errs.PermissionDeniedError("본인 상품만 상태를 변경할 수 있습니다")
)

// SetItemStatus lets the seller of a chat mark its item as sold to the chat's
// buyer or put it back on sale.
func (svc *Service) SetItemStatus(ctx context.Context, in types.UpdateItemStatus) (types.ItemStatusUpdated, error) {
	var out types.ItemStatusUpdated

	memberID, ok := auth.MemberIDFromContext(ctx)
	if !ok {
		return out, ErrLoginRequired
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	chat, err := svc.Store.Chat(ctx, in.ChatID)
	if err != nil {
		return out, err
	}

	if chat.SellerID != memberID {
		return out, ErrSellerOnly
	}

	item, err := svc.Store.Item(ctx, chat.ItemID)
	if err != nil {
		return out, err
	}

	if item.SellerID != memberID {
		return out, ErrNotItemsSeller
	}

	in.SetTarget(item.ID, chat.BuyerID)

	if err := svc.Store.UpdateItemStatus(ctx, in); err != nil {
		return out, err
	}

	out.Status = in.Status

	svc.publish(types.ChatEvent{
		Kind:       types.ChatEventItemStatusChanged,
		ChatID:     chat.ID,
		ActorID:    memberID,
		ItemStatus: &out.Status,
	})

	return out, nil
}
