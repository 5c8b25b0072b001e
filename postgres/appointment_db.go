package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nicolasparada/go-errs"
	"github.com/taemindang/taemindang/types"
)

var ErrAppointmentNotFound = errs.NotFoundError("약속을 찾을 수 없습니다")

// CreateAppointment stores a requested appointment together with the
// APPOINTMENT message that announces it.
func (p *Postgres) CreateAppointment(ctx context.Context, in types.ProposeAppointment) (types.AppointmentProposed, error) {
	var out types.AppointmentProposed
	err := p.db.RunTx(ctx, func(ctx context.Context) error {
		const query = `
			INSERT INTO chat_appointments (chat_id, created_by, meet_date, meet_time, place, status)
			VALUES (@chat_id, @created_by, @meet_date::text::date, @meet_time::text::time, @place, @status)
			RETURNING id
		`
		args := pgx.StrictNamedArgs{
			"chat_id":    in.ChatID,
			"created_by": in.ProposerID(),
			"meet_date":  in.MeetDate,
			"meet_time":  in.MeetTime,
			"place":      in.Place,
			"status":     types.AppointmentStatusRequested,
		}
		appointmentID, err := pgxutil.SelectRow(ctx, p.db, query, []any{args}, pgx.RowTo[int64])
		if err != nil {
			return fmt.Errorf("sql insert appointment: %w", err)
		}

		msg, err := p.insertMessage(ctx, in.ChatID, in.ProposerID(), types.AppointmentContent{
			Body:          types.AppointmentCreatedText,
			AppointmentID: appointmentID,
		})
		if err != nil {
			return err
		}

		out.AppointmentID = appointmentID
		out.MessageID = msg.ID
		return nil
	})
	return out, err
}

func (p *Postgres) Appointment(ctx context.Context, in types.RetrieveAppointment) (types.Appointment, error) {
	const query = `
		SELECT chat_appointments.id
			, chat_appointments.chat_id
			, chat_appointments.created_by
			, COALESCE(members.nickname, @default_nickname) AS created_by_nickname
			, to_char(chat_appointments.meet_date, 'YYYY-MM-DD') AS meet_date
			, to_char(chat_appointments.meet_time, 'HH24:MI') AS meet_time
			, chat_appointments.place
			, chat_appointments.status
			, chat_appointments.created_at
		FROM chat_appointments
		LEFT JOIN members ON members.id = chat_appointments.created_by
		WHERE chat_appointments.id = @appointment_id
			AND chat_appointments.chat_id = @chat_id
	`
	args := pgx.StrictNamedArgs{
		"appointment_id":   in.AppointmentID,
		"chat_id":          in.ChatID,
		"default_nickname": types.DefaultNickname,
	}
	appointment, err := pgxutil.SelectRow(ctx, p.db, query, []any{args}, pgx.RowToStructByNameLax[types.Appointment])
	if errors.Is(err, pgx.ErrNoRows) {
		return appointment, ErrAppointmentNotFound
	}

	if err != nil {
		return appointment, fmt.Errorf("sql select appointment: %w", err)
	}

	return appointment, nil
}

// ConfirmAppointment marks the appointment as confirmed. Confirmed
// appointments are left as they are.
func (p *Postgres) ConfirmAppointment(ctx context.Context, in types.ConfirmAppointment) error {
	const query = `
		UPDATE chat_appointments
		SET status = @confirmed
		WHERE id = @appointment_id
			AND chat_id = @chat_id
			AND status = @requested
	`
	_, err := p.db.Exec(ctx, query, pgx.StrictNamedArgs{
		"confirmed":      types.AppointmentStatusConfirmed,
		"requested":      types.AppointmentStatusRequested,
		"appointment_id": in.AppointmentID,
		"chat_id":        in.ChatID,
	})
	if err != nil {
		return fmt.Errorf("sql confirm appointment: %w", err)
	}

	return nil
}
