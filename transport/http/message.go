package http

import (
	"errors"
	"mime"
	"net/http"

	"github.com/taemindang/taemindang/service"
	"github.com/taemindang/taemindang/types"
)

func (h *handler) messages(w http.ResponseWriter, r *http.Request) {
	chatID, err := pathID(r, "chat_id")
	if err != nil {
		h.respondErr(w, err, "")
		return
	}

	ctx := r.Context()
	out, err := h.svc.Messages(ctx, types.ListMessages{ChatID: chatID})
	if err != nil {
		h.respondErr(w, err, "메시지를 불러오는 중 오류가 발생했습니다")
		return
	}

	if out.Messages == nil {
		out.Messages = []types.Message{} // non null array
	}

	h.respond(w, out, "", http.StatusOK)
}

// sendMessage takes a multipart form with optional "message" and "image"
// fields. A JSON body with just a message is accepted too.
func (h *handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	chatID, err := pathID(r, "chat_id")
	if err != nil {
		h.respondErr(w, err, "")
		return
	}

	in := types.SendMessage{ChatID: chatID}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		r.Body = http.MaxBytesReader(w, r.Body, service.MaxChatImageBytes+maxMultipartOverhead)
		if err := r.ParseMultipartForm(service.MaxChatImageBytes); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.respondErr(w, requestErr(r, service.ErrImageTooLarge), "")
				return
			}

			h.respondErr(w, requestErr(r, errBadRequest), "")
			return
		}

		defer r.MultipartForm.RemoveAll()

		in.Message = r.FormValue("message")

		f, _, err := r.FormFile("image")
		if err != nil && !errors.Is(err, http.ErrMissingFile) {
			h.respondErr(w, requestErr(r, errBadRequest), "")
			return
		}

		if err == nil {
			defer f.Close()
			in.Image = f
		}
	} else if err := decodeJSON(w, r, &in); err != nil {
		h.respondErr(w, err, "")
		return
	}

	ctx := r.Context()
	out, err := h.svc.SendMessage(ctx, in)
	if err != nil {
		h.respondErr(w, err, "메시지 전송 중 오류가 발생했습니다")
		return
	}

	h.respond(w, out, "메시지가 전송되었습니다", http.StatusCreated)
}
