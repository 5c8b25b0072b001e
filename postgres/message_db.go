package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/taemindang/taemindang/types"
)

type messageRow struct {
	ID                int64                    `db:"id"`
	ChatID            int64                    `db:"chat_id"`
	SenderID          int64                    `db:"sender_id"`
	SenderNickname    *string                  `db:"sender_nickname"`
	MsgType           types.MessageType        `db:"msg_type"`
	Message           string                   `db:"message"`
	ImageURL          *string                  `db:"image_url"`
	AppointmentID     *int64                   `db:"appointment_id"`
	MeetDate          *string                  `db:"meet_date"`
	MeetTime          *string                  `db:"meet_time"`
	Place             *string                  `db:"place"`
	AppointmentStatus *types.AppointmentStatus `db:"appointment_status"`
	Mine              bool                     `db:"mine"`
	CreatedAt         time.Time                `db:"created_at"`
}

func (row messageRow) toMessage() (types.Message, error) {
	content, err := types.ContentFromColumns(types.MessageColumns{
		MsgType:           row.MsgType,
		Message:           row.Message,
		ImageURL:          row.ImageURL,
		AppointmentID:     row.AppointmentID,
		MeetDate:          row.MeetDate,
		MeetTime:          row.MeetTime,
		Place:             row.Place,
		AppointmentStatus: row.AppointmentStatus,
	})
	if err != nil {
		return types.Message{}, fmt.Errorf("message %d: %w", row.ID, err)
	}

	nickname := types.DefaultNickname
	if row.SenderNickname != nil {
		nickname = *row.SenderNickname
	}

	return types.Message{
		ID:             row.ID,
		ChatID:         row.ChatID,
		SenderID:       row.SenderID,
		SenderNickname: nickname,
		Content:        content,
		CreatedAt:      row.CreatedAt,
		Mine:           row.Mine,
	}, nil
}

// Messages returns the whole ledger of the chat in ascending order and, in the
// same transaction, moves the viewer's read pointer to the last message.
func (p *Postgres) Messages(ctx context.Context, in types.ListMessages) ([]types.Message, error) {
	var out []types.Message
	err := p.db.RunTx(ctx, func(ctx context.Context) error {
		const query = `
			SELECT chat_messages.id
				, chat_messages.chat_id
				, chat_messages.sender_id
				, members.nickname AS sender_nickname
				, chat_messages.msg_type
				, chat_messages.message
				, chat_messages.image_url
				, chat_messages.appointment_id
				, to_char(chat_appointments.meet_date, 'YYYY-MM-DD') AS meet_date
				, to_char(chat_appointments.meet_time, 'HH24:MI') AS meet_time
				, chat_appointments.place
				, chat_appointments.status AS appointment_status
				, (chat_messages.sender_id = @viewer_id) AS mine
				, chat_messages.created_at
			FROM chat_messages
			LEFT JOIN members ON members.id = chat_messages.sender_id
			LEFT JOIN chat_appointments ON chat_appointments.id = chat_messages.appointment_id
			WHERE chat_messages.chat_id = @chat_id
			ORDER BY chat_messages.created_at ASC, chat_messages.id ASC
		`
		args := pgx.StrictNamedArgs{
			"chat_id":   in.ChatID,
			"viewer_id": in.ViewerID(),
		}
		rows, err := pgxutil.Select(ctx, p.db, query, []any{args}, pgx.RowToStructByNameLax[messageRow])
		if err != nil {
			return fmt.Errorf("sql select messages: %w", err)
		}

		out = make([]types.Message, 0, len(rows))
		for _, row := range rows {
			msg, err := row.toMessage()
			if err != nil {
				return err
			}
			out = append(out, msg)
		}

		if len(out) == 0 {
			return nil
		}

		return p.advanceReadPointer(ctx, in.ChatID, in.Role(), out[len(out)-1].ID)
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// CreateMessage appends a message and moves the sender's own read pointer to
// it.
func (p *Postgres) CreateMessage(ctx context.Context, in types.SendMessage) (types.Created, error) {
	var out types.Created
	err := p.db.RunTx(ctx, func(ctx context.Context) error {
		msg, err := p.insertMessage(ctx, in.ChatID, in.SenderID(), in.Content())
		if err != nil {
			return err
		}

		if err := p.advanceReadPointer(ctx, in.ChatID, in.Role(), msg.ID); err != nil {
			return err
		}

		out = msg
		return nil
	})
	return out, err
}

func (p *Postgres) insertMessage(ctx context.Context, chatID, senderID int64, content types.MessageContent) (types.Created, error) {
	cols := types.ColumnsFromContent(content)

	const query = `
		INSERT INTO chat_messages (chat_id, sender_id, msg_type, message, image_url, appointment_id)
		VALUES (@chat_id, @sender_id, @msg_type, @message, @image_url, @appointment_id)
		RETURNING id, created_at
	`
	args := pgx.StrictNamedArgs{
		"chat_id":        chatID,
		"sender_id":      senderID,
		"msg_type":       cols.MsgType,
		"message":        cols.Message,
		"image_url":      cols.ImageURL,
		"appointment_id": cols.AppointmentID,
	}
	created, err := pgxutil.SelectRow(ctx, p.db, query, []any{args}, pgx.RowToStructByNameLax[types.Created])
	if err != nil {
		return created, fmt.Errorf("sql insert message: %w", err)
	}

	return created, nil
}

// advanceReadPointer sets the read pointer that belongs to role. The pointer
// never moves backwards.
func (p *Postgres) advanceReadPointer(ctx context.Context, chatID int64, role types.ChatRole, messageID int64) error {
	column := "buyer_last_read_msg_id"
	if role == types.ChatRoleSeller {
		column = "seller_last_read_msg_id"
	}

	query := fmt.Sprintf(`
		UPDATE chats
		SET %[1]s = GREATEST(COALESCE(%[1]s, 0), @message_id)
		WHERE id = @chat_id
	`, column)

	_, err := p.db.Exec(ctx, query, pgx.StrictNamedArgs{
		"message_id": messageID,
		"chat_id":    chatID,
	})
	if err != nil {
		return fmt.Errorf("sql update %s: %w", column, err)
	}

	return nil
}
