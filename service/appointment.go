package service

import (
	"context"

	"github.com/nicolasparada/go-errs"
	"github.com/taemindang/taemindang/auth"
	"github.com/taemindang/taemindang/types"
)

var ErrSelfConfirm = errs.InvalidArgumentError("본인이 만든 약속은 확인할 수 없습니다")

// ProposeAppointment creates a requested appointment in the chat along with
// the message that announces it.
func (svc *Service) ProposeAppointment(ctx context.Context, in types.ProposeAppointment) (types.AppointmentProposed, error) {
	var out types.AppointmentProposed

	if _, ok := auth.MemberIDFromContext(ctx); !ok {
		return out, ErrLoginRequired
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	_, memberID, _, err := svc.authorizeParticipant(ctx, in.ChatID)
	if err != nil {
		return out, err
	}

	in.SetProposerID(memberID)

	out, err = svc.Store.CreateAppointment(ctx, in)
	if err != nil {
		return out, err
	}

	svc.publish(types.ChatEvent{
		Kind:          types.ChatEventAppointmentCreated,
		ChatID:        in.ChatID,
		ActorID:       memberID,
		MessageID:     &out.MessageID,
		AppointmentID: &out.AppointmentID,
	})

	return out, nil
}

func (svc *Service) Appointment(ctx context.Context, in types.RetrieveAppointment) (types.Appointment, error) {
	var out types.Appointment

	if _, ok := auth.MemberIDFromContext(ctx); !ok {
		return out, ErrLoginRequired
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	if _, _, _, err := svc.authorizeParticipant(ctx, in.ChatID); err != nil {
		return out, err
	}

	return svc.Store.Appointment(ctx, in)
}

// ConfirmAppointment lets the participant that did not propose the
// appointment confirm it. Confirming twice is not an error.
func (svc *Service) ConfirmAppointment(ctx context.Context, in types.ConfirmAppointment) (types.Appointment, error) {
	var out types.Appointment

	if _, ok := auth.MemberIDFromContext(ctx); !ok {
		return out, ErrLoginRequired
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	_, memberID, _, err := svc.authorizeParticipant(ctx, in.ChatID)
	if err != nil {
		return out, err
	}

	out, err = svc.Store.Appointment(ctx, types.RetrieveAppointment{
		ChatID:        in.ChatID,
		AppointmentID: in.AppointmentID,
	})
	if err != nil {
		return out, err
	}

	if out.CreatedBy == memberID {
		return out, ErrSelfConfirm
	}

	if out.Status == types.AppointmentStatusConfirmed {
		return out, nil
	}

	if !out.Status.CanBecome(types.AppointmentStatusConfirmed) {
		return out, errs.ConflictError("확인할 수 없는 약속입니다")
	}

	if err := svc.Store.ConfirmAppointment(ctx, in); err != nil {
		return out, err
	}

	out.Status = types.AppointmentStatusConfirmed

	svc.publish(types.ChatEvent{
		Kind:          types.ChatEventAppointmentConfirmed,
		ChatID:        in.ChatID,
		ActorID:       memberID,
		AppointmentID: &out.ID,
	})

	return out, nil
}
