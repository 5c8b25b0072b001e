package http

import (
	"net/http"

	"github.com/taemindang/taemindang/types"
)

func (h *handler) proposeAppointment(w http.ResponseWriter, r *http.Request) {
	chatID, err := pathID(r, "chat_id")
	if err != nil {
		h.respondErr(w, err, "")
		return
	}

	var in types.ProposeAppointment
	if err := decodeJSON(w, r, &in); err != nil {
		h.respondErr(w, err, "")
		return
	}

	in.ChatID = chatID

	ctx := r.Context()
	out, err := h.svc.ProposeAppointment(ctx, in)
	if err != nil {
		h.respondErr(w, err, "약속 등록 중 오류가 발생했습니다")
		return
	}

	h.respond(w, out, "약속이 등록되었습니다", http.StatusCreated)
}

func (h *handler) appointment(w http.ResponseWriter, r *http.Request) {
	in, err := appointmentPath(r)
	if err != nil {
		h.respondErr(w, err, "")
		return
	}

	ctx := r.Context()
	out, err := h.svc.Appointment(ctx, in)
	if err != nil {
		h.respondErr(w, err, "약속 정보를 불러오는 중 오류가 발생했습니다")
		return
	}

	h.respond(w, out, "", http.StatusOK)
}

func (h *handler) confirmAppointment(w http.ResponseWriter, r *http.Request) {
	path, err := appointmentPath(r)
	if err != nil {
		h.respondErr(w, err, "")
		return
	}

	ctx := r.Context()
	out, err := h.svc.ConfirmAppointment(ctx, types.ConfirmAppointment{
		ChatID:        path.ChatID,
		AppointmentID: path.AppointmentID,
	})
	if err != nil {
		h.respondErr(w, err, "약속 확인 중 오류가 발생했습니다")
		return
	}

	h.respond(w, out, "약속을 확인했습니다", http.StatusOK)
}

func appointmentPath(r *http.Request) (types.RetrieveAppointment, error) {
	var out types.RetrieveAppointment

	chatID, err := pathID(r, "chat_id")
	if err != nil {
		return out, err
	}

	appointmentID, err := pathID(r, "appointment_id")
	if err != nil {
		return out, err
	}

	out.ChatID = chatID
	out.AppointmentID = appointmentID
	return out, nil
}
