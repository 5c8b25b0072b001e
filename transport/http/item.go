package http

import (
	"net/http"

	"github.com/taemindang/taemindang/types"
)

func (h *handler) setItemStatus(w http.ResponseWriter, r *http.Request) {
	chatID, err := pathID(r, "chat_id")
	if err != nil {
		h.respondErr(w, err, "")
		return
	}

	var in types.UpdateItemStatus
	if err := decodeJSON(w, r, &in); err != nil {
		h.respondErr(w, err, "")
		return
	}

	in.ChatID = chatID

	ctx := r.Context()
	out, err := h.svc.SetItemStatus(ctx, in)
	if err != nil {
		h.respondErr(w, err, "상품 상태 변경 중 오류가 발생했습니다")
		return
	}

	h.respond(w, out, out.Notice(), http.StatusOK)
}
