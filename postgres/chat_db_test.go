package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/nicolasparada/go-errs"
	"github.com/taemindang/taemindang/types"
)

func TestPostgres_SendFirstMessage(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	seller := genMember(t, "seller")
	buyer := genMember(t, "buyer")
	item := genItem(t, seller, "자전거")

	send := func(text string) types.FirstMessageSent {
		t.Helper()

		in := types.SendFirstMessage{ItemID: item, Message: text}
		in.SetBuyerID(buyer)
		in.SetSellerID(seller)
		out, err := testPostgres.SendFirstMessage(ctx, in)
		if err != nil {
			t.Fatalf("SendFirstMessage() error = %v", err)
		}
		return out
	}

	first := send("hi")
	second := send("still there?")

	if first.ChatID != second.ChatID {
		t.Fatalf("expected the same chat, got %d and %d", first.ChatID, second.ChatID)
	}

	if second.MessageID <= first.MessageID {
		t.Errorf("message ids must grow, got %d then %d", first.MessageID, second.MessageID)
	}

	chat, err := testPostgres.Chat(ctx, first.ChatID)
	if err != nil {
		t.Fatal(err)
	}

	if chat.SellerID != seller || chat.BuyerID != buyer || chat.ItemID != item {
		t.Errorf("unexpected chat %+v", chat)
	}

	if chat.BuyerLastReadMsgID == nil || *chat.BuyerLastReadMsgID != second.MessageID {
		t.Errorf("buyer pointer = %v, want %d", chat.BuyerLastReadMsgID, second.MessageID)
	}

	if chat.SellerLastReadMsgID != nil {
		t.Errorf("seller pointer = %d, want nil", *chat.SellerLastReadMsgID)
	}

	unread, err := testPostgres.UnreadCount(ctx, chat.ID, seller)
	if err != nil {
		t.Fatal(err)
	}

	if unread != 2 {
		t.Errorf("seller unread = %d, want 2", unread)
	}
}

func TestPostgres_SendFirstMessage_concurrent(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	seller := genMember(t, "seller")
	buyer := genMember(t, "buyer")
	item := genItem(t, seller, "책상")

	const n = 8
	chatIDs := make([]int64, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Go(func() {
			in := types.SendFirstMessage{ItemID: item, Message: "안녕하세요"}
			in.SetBuyerID(buyer)
			in.SetSellerID(seller)
			out, err := testPostgres.SendFirstMessage(ctx, in)
			if err != nil {
				t.Errorf("SendFirstMessage() error = %v", err)
				return
			}
			chatIDs[i] = out.ChatID
		})
	}
	wg.Wait()

	for _, id := range chatIDs[1:] {
		if id != chatIDs[0] {
			t.Fatalf("expected a single chat, got %v", chatIDs)
		}
	}
}

func TestPostgres_SendFirstMessage_itemNotFound(t *testing.T) {
	requireDB(t)

	buyer := genMember(t, "buyer")
	in := types.SendFirstMessage{ItemID: 1 << 40, Message: "hi"}
	in.SetBuyerID(buyer)
	in.SetSellerID(buyer)

	_, err := testPostgres.SendFirstMessage(context.Background(), in)
	if !errors.Is(err, errs.NotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPostgres_Chat_notFound(t *testing.T) {
	requireDB(t)

	_, err := testPostgres.Chat(context.Background(), 1<<40)
	if !errors.Is(err, errs.NotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPostgres_Chats(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	seller := genMember(t, "seller")
	itemA := genItem(t, seller, "의자")
	itemB := genItem(t, seller, "책상")

	var chatIDs []int64
	for i, item := range []int64{itemA, itemB, itemA} {
		buyer := genMember(t, "buyer"+string(rune('a'+i)))
		in := types.SendFirstMessage{ItemID: item, Message: "구매할게요"}
		in.SetBuyerID(buyer)
		in.SetSellerID(seller)
		out, err := testPostgres.SendFirstMessage(ctx, in)
		if err != nil {
			t.Fatal(err)
		}
		chatIDs = append(chatIDs, out.ChatID)
	}

	list := types.ListChats{PageArgs: types.PageArgs{First: new(uint(2))}}
	list.SetViewerID(seller)
	page, err := testPostgres.Chats(ctx, list)
	if err != nil {
		t.Fatal(err)
	}

	if len(page.Items) != 2 || !page.PageInfo.HasNextPage {
		t.Fatalf("unexpected first page: %d items, info %+v", len(page.Items), page.PageInfo)
	}

	if page.Items[0].ID != chatIDs[2] || page.Items[1].ID != chatIDs[1] {
		t.Errorf("expected newest first, got %d, %d", page.Items[0].ID, page.Items[1].ID)
	}

	got := page.Items[0]
	if !got.IsSeller || got.UnreadCount != 1 {
		t.Errorf("is_seller = %v, unread = %d", got.IsSeller, got.UnreadCount)
	}
	if got.LatestMessage == nil || *got.LatestMessage != "구매할게요" {
		t.Errorf("latest message = %v", got.LatestMessage)
	}
	if got.ItemTitle == nil || *got.ItemTitle != "의자" {
		t.Errorf("item title = %v", got.ItemTitle)
	}
	if got.ItemImageURL == nil || *got.ItemImageURL != "/uploads/thumb.jpg" {
		t.Errorf("item image = %v", got.ItemImageURL)
	}
	if got.OtherUser.Nickname != "buyerc" {
		t.Errorf("other user = %+v", got.OtherUser)
	}

	list.PageArgs = types.PageArgs{First: new(uint(2)), After: page.PageInfo.EndCursor}
	page, err = testPostgres.Chats(ctx, list)
	if err != nil {
		t.Fatal(err)
	}

	if len(page.Items) != 1 || page.Items[0].ID != chatIDs[0] || page.PageInfo.HasNextPage {
		t.Fatalf("unexpected second page: %+v", page)
	}
}

func TestPostgres_Chats_imageLatestMessage(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	chat := setupChat(t)

	image := types.SendMessage{ChatID: chat.ID}
	image.SetSender(chat.BuyerID, types.ChatRoleBuyer)
	image.SetImageURL("chat-images/photo.jpg")
	photo, err := testPostgres.CreateMessage(ctx, image)
	if err != nil {
		t.Fatal(err)
	}

	list := types.ListChats{}
	list.SetViewerID(chat.SellerID)
	page, err := testPostgres.Chats(ctx, list)
	if err != nil {
		t.Fatal(err)
	}

	if len(page.Items) != 1 {
		t.Fatalf("expected a single chat, got %d", len(page.Items))
	}

	got := page.Items[0]
	if got.LatestMessage != nil {
		t.Errorf("latest message = %q, want nil", *got.LatestMessage)
	}
	if got.LatestMessageTime == nil || !got.LatestMessageTime.Equal(photo.CreatedAt) {
		t.Errorf("latest message time = %v, want %v", got.LatestMessageTime, photo.CreatedAt)
	}
}
