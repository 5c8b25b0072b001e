package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nicolasparada/go-db"
	"github.com/nicolasparada/go-errs"
	"github.com/taemindang/taemindang/types"
)

var ErrChatNotFound = errs.NotFoundError("채팅방을 찾을 수 없습니다")

const (
	sqlChatCols = `
		  chats.id
		, chats.item_id
		, chats.seller_id
		, chats.buyer_id
		, chats.buyer_last_read_msg_id
		, chats.seller_last_read_msg_id
		, chats.created_at
	`
	// other is the counterpart of @viewer_id.
	sqlOtherUserJSON = `
		json_build_object(
			'id', other.id,
			'nickname', other.nickname,
			'profile_image', other.profile_image,
			'temperature', other.temperature
		) AS other_user
	`
	sqlJoinOtherUser = `
		INNER JOIN members AS other ON other.id = CASE
			WHEN chats.seller_id = @viewer_id THEN chats.buyer_id
			ELSE chats.seller_id
		END
	`
	// Unread messages for @viewer_id: newer than their own pointer and sent by
	// someone else. A null pointer counts from zero.
	sqlSelectUnreadCount = `
		(
			SELECT COUNT(*)
			FROM chat_messages
			WHERE chat_messages.chat_id = chats.id
				AND chat_messages.id > COALESCE(CASE
					WHEN chats.seller_id = @viewer_id THEN chats.seller_last_read_msg_id
					ELSE chats.buyer_last_read_msg_id
				END, 0)
				AND chat_messages.sender_id != @viewer_id
		) AS unread_count
	`
)

// SendFirstMessage resolves the chat for the item and buyer, creating it if
// needed, and appends the buyer's text message to it.
func (p *Postgres) SendFirstMessage(ctx context.Context, in types.SendFirstMessage) (types.FirstMessageSent, error) {
	var out types.FirstMessageSent
	err := p.db.RunTx(ctx, func(ctx context.Context) error {
		chatID, err := p.upsertChat(ctx, in.ItemID, in.SellerID(), in.BuyerID())
		if err != nil {
			return err
		}

		msg, err := p.insertMessage(ctx, chatID, in.BuyerID(), types.TextContent{Body: in.Message})
		if err != nil {
			return err
		}

		if err := p.advanceReadPointer(ctx, chatID, types.ChatRoleBuyer, msg.ID); err != nil {
			return err
		}

		out.ChatID = chatID
		out.MessageID = msg.ID
		return nil
	})
	return out, err
}

// upsertChat relies on the (item_id, seller_id, buyer_id) unique constraint so
// that concurrent first messages end up in the same chat.
func (p *Postgres) upsertChat(ctx context.Context, itemID, sellerID, buyerID int64) (int64, error) {
	const query = `
		INSERT INTO chats (item_id, seller_id, buyer_id)
		VALUES (@item_id, @seller_id, @buyer_id)
		ON CONFLICT (item_id, seller_id, buyer_id) DO UPDATE
			SET item_id = EXCLUDED.item_id
		RETURNING id
	`
	args := pgx.StrictNamedArgs{
		"item_id":   itemID,
		"seller_id": sellerID,
		"buyer_id":  buyerID,
	}
	chatID, err := pgxutil.SelectRow(ctx, p.db, query, []any{args}, pgx.RowTo[int64])
	if db.IsForeignKeyViolationError(err) {
		return 0, ErrItemNotFound
	}

	if err != nil {
		return 0, fmt.Errorf("sql upsert chat: %w", err)
	}

	return chatID, nil
}

func (p *Postgres) Chat(ctx context.Context, chatID int64) (types.Chat, error) {
	query := `SELECT ` + sqlChatCols + ` FROM chats WHERE chats.id = @chat_id`
	args := pgx.StrictNamedArgs{
		"chat_id": chatID,
	}
	chat, err := pgxutil.SelectRow(ctx, p.db, query, []any{args}, pgx.RowToStructByNameLax[types.Chat])
	if errors.Is(err, pgx.ErrNoRows) {
		return chat, ErrChatNotFound
	}

	if err != nil {
		return chat, fmt.Errorf("sql select chat: %w", err)
	}

	return chat, nil
}

func (p *Postgres) ChatDetail(ctx context.Context, in types.RetrieveChat) (types.ChatDetail, error) {
	query := `
		SELECT chats.id
			, chats.item_id
			, chats.seller_id
			, chats.buyer_id
			, (chats.seller_id = @viewer_id) AS is_seller
			, ` + sqlOtherUserJSON + `
		FROM chats
		` + sqlJoinOtherUser + `
		WHERE chats.id = @chat_id
	`
	args := pgx.StrictNamedArgs{
		"chat_id":   in.ChatID,
		"viewer_id": in.ViewerID(),
	}
	detail, err := pgxutil.SelectRow(ctx, p.db, query, []any{args}, pgx.RowToStructByNameLax[types.ChatDetail])
	if errors.Is(err, pgx.ErrNoRows) {
		return detail, ErrChatNotFound
	}

	if err != nil {
		return detail, fmt.Errorf("sql select chat detail: %w", err)
	}

	return detail, nil
}

// UnreadCount counts the messages of the chat that viewerID has not read yet.
func (p *Postgres) UnreadCount(ctx context.Context, chatID, viewerID int64) (int, error) {
	query := `SELECT ` + sqlSelectUnreadCount + ` FROM chats WHERE chats.id = @chat_id`
	args := pgx.StrictNamedArgs{
		"chat_id":   chatID,
		"viewer_id": viewerID,
	}
	count, err := pgxutil.SelectRow(ctx, p.db, query, []any{args}, pgx.RowTo[int])
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrChatNotFound
	}

	if err != nil {
		return 0, fmt.Errorf("sql select unread count: %w", err)
	}

	return count, nil
}

// Chats lists the chats where the viewer is either seller or buyer, newest
// first.
func (p *Postgres) Chats(ctx context.Context, in types.ListChats) (types.Page[types.ChatSummary], error) {
	var out types.Page[types.ChatSummary]

	args := pgx.StrictNamedArgs{
		"viewer_id": in.ViewerID(),
	}
	selects := []string{
		`chats.id`,
		`chats.item_id`,
		`chats.created_at`,
		`items.title AS item_title`,
		`thumbnail.image_url AS item_image`,
		`(chats.seller_id = @viewer_id) AS is_seller`,
		sqlOtherUserJSON,
		sqlSelectUnreadCount,
		`NULLIF(latest.message, '') AS latest_message`, // image messages have no text
		`latest.created_at AS latest_message_time`,
	}
	joins := []string{
		`LEFT JOIN items ON items.id = chats.item_id`,
		`LEFT JOIN LATERAL (
			SELECT item_images.image_url
			FROM item_images
			WHERE item_images.item_id = chats.item_id AND item_images.is_thumbnail
			ORDER BY item_images.id
			LIMIT 1
		) AS thumbnail ON true`,
		sqlJoinOtherUser,
		`LEFT JOIN LATERAL (
			SELECT chat_messages.message, chat_messages.created_at
			FROM chat_messages
			WHERE chat_messages.chat_id = chats.id
			ORDER BY chat_messages.created_at DESC, chat_messages.id DESC
			LIMIT 1
		) AS latest ON true`,
	}
	filters := []string{"(chats.seller_id = @viewer_id OR chats.buyer_id = @viewer_id)"}

	pageArgs, err := ParsePageArgs[time.Time](in.PageArgs)
	if err != nil {
		return out, err
	}

	if pageArgs.After != nil {
		filters = append(filters, "(chats.created_at, chats.id) < (@after_created_at, @after_id)")
		args["after_created_at"] = pageArgs.After.Value
		args["after_id"] = pageArgs.After.ID
	} else if pageArgs.Before != nil {
		filters = append(filters, "(chats.created_at, chats.id) > (@before_created_at, @before_id)")
		args["before_created_at"] = pageArgs.Before.Value
		args["before_id"] = pageArgs.Before.ID
	}

	var order, limit string
	if pageArgs.IsBackwards() {
		order = "ORDER BY chats.created_at ASC, chats.id ASC"
		limit = fmt.Sprintf("LIMIT %d", or(pageArgs.Last, defaultPageSize)+1) // +1 to check if there's a previous page
	} else {
		order = "ORDER BY chats.created_at DESC, chats.id DESC"
		limit = fmt.Sprintf("LIMIT %d", or(pageArgs.First, defaultPageSize)+1) // +1 to check if there's a next page
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM chats
		%s
		%s
		%s
		%s`,
		strings.Join(selects, ",\n\t\t"),
		strings.Join(joins, "\n\t\t"),
		where(filters),
		order,
		limit,
	)

	chats, err := pgxutil.Select(ctx, p.db, query, []any{args}, pgx.RowToStructByNameLax[types.ChatSummary])
	if err != nil {
		return out, fmt.Errorf("sql select chats: %w", err)
	}

	out.Items = chats
	if err := applyPageInfo(&out, pageArgs, func(s types.ChatSummary) Cursor[time.Time] {
		return Cursor[time.Time]{ID: s.ID, Value: s.CreatedAt}
	}); err != nil {
		return out, err
	}

	return out, nil
}
