package http

import (
	"net/http"

	"github.com/taemindang/taemindang/types"
)

func (h *handler) sendFirstMessage(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "item_id")
	if err != nil {
		h.respondErr(w, err, "")
		return
	}

	var in types.SendFirstMessage
	if err := decodeJSON(w, r, &in); err != nil {
		h.respondErr(w, err, "")
		return
	}

	in.ItemID = itemID

	ctx := r.Context()
	out, err := h.svc.SendFirstMessage(ctx, in)
	if err != nil {
		h.respondErr(w, err, "메시지 전송 중 오류가 발생했습니다")
		return
	}

	h.respond(w, out, "메시지가 전송되었습니다", http.StatusCreated)
}

func (h *handler) chats(w http.ResponseWriter, r *http.Request) {
	pageArgs, err := parsePageArgs(r.URL.Query())
	if err != nil {
		h.respondErr(w, requestErr(r, err), "")
		return
	}

	ctx := r.Context()
	page, err := h.svc.Chats(ctx, types.ListChats{PageArgs: pageArgs})
	if err != nil {
		h.respondErr(w, err, "채팅 목록을 불러오는 중 오류가 발생했습니다")
		return
	}

	if page.Items == nil {
		page.Items = []types.ChatSummary{} // non null array
	}

	h.respondPage(w, page.Items, page.PageInfo)
}

func (h *handler) chat(w http.ResponseWriter, r *http.Request) {
	chatID, err := pathID(r, "chat_id")
	if err != nil {
		h.respondErr(w, err, "")
		return
	}

	ctx := r.Context()
	out, err := h.svc.Chat(ctx, types.RetrieveChat{ChatID: chatID})
	if err != nil {
		h.respondErr(w, err, "채팅방 정보를 불러오는 중 오류가 발생했습니다")
		return
	}

	h.respond(w, out, "", http.StatusOK)
}
