package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nicolasparada/go-errs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/taemindang/taemindang/mock"
	"github.com/taemindang/taemindang/service"
	httptransport "github.com/taemindang/taemindang/transport/http"
	"github.com/taemindang/taemindang/types"
)

const testTokenKey = "supersecretkeyyoushouldnotcommit"

type envelope struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	PageInfo *types.PageInfo `json:"page_info"`
	Error    string          `json:"error"`
}

type testServer struct {
	t       *testing.T
	svc     *service.Service
	handler http.Handler
}

func newTestServer(t *testing.T, store *mock.StoreMock, production bool) *testServer {
	t.Helper()

	svc := service.New(&service.Config{
		Store: store,
		Images: &mock.ImageStoreMock{
			UploadFunc: func(ctx context.Context, bucket string, file types.Attachment) (func(), error) {
				return func() {}, nil
			},
		},
		TokenKey:       testTokenKey,
		MediaURLPrefix: "http://localhost:9000",
		BaseCtx:        context.Background(),
	})
	t.Cleanup(func() {
		_ = svc.Close()
	})

	reg := prometheus.NewRegistry()
	return &testServer{
		t:   t,
		svc: svc,
		handler: httptransport.New(httptransport.Config{
			Service:    svc,
			Production: production,
			Registerer: reg,
			Gatherer:   reg,
		}),
	}
}

func (ts *testServer) token(memberID int64) string {
	ts.t.Helper()

	out, err := ts.svc.IssueToken(memberID)
	if err != nil {
		ts.t.Fatal(err)
	}
	return out.Token
}

func (ts *testServer) do(req *http.Request, memberID int64) (int, envelope) {
	ts.t.Helper()

	if memberID != 0 {
		req.Header.Set("Authorization", "Bearer "+ts.token(memberID))
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	var body envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			ts.t.Fatalf("could not decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec.Code, body
}

func jsonRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func chatStore(chat types.Chat) *mock.StoreMock {
	return &mock.StoreMock{
		ChatFunc: func(ctx context.Context, chatID int64) (types.Chat, error) {
			if chatID != chat.ID {
				return types.Chat{}, errs.NotFoundError("채팅방을 찾을 수 없습니다")
			}
			return chat, nil
		},
	}
}

func TestSendFirstMessage(t *testing.T) {
	store := &mock.StoreMock{
		ItemSellerIDFunc: func(ctx context.Context, itemID int64) (int64, error) {
			if itemID != 7 {
				return 0, errs.NotFoundError("상품을 찾을 수 없습니다")
			}
			return 1, nil
		},
		SendFirstMessageFunc: func(ctx context.Context, in types.SendFirstMessage) (types.FirstMessageSent, error) {
			return types.FirstMessageSent{ChatID: 3, MessageID: 10}, nil
		},
	}
	ts := newTestServer(t, store, false)

	tt := []struct {
		name     string
		target   string
		body     string
		memberID int64
		wantCode int
		wantMsg  string
	}{
		{"anonymous", "/items/7/messages", `{"message":"hi"}`, 0, http.StatusUnauthorized, "로그인이 필요합니다"},
		{"anonymous_bad_path", "/items/abc/messages", `{"message":"hi"}`, 0, http.StatusUnauthorized, "로그인이 필요합니다"},
		{"bad_path", "/items/abc/messages", `{"message":"hi"}`, 2, http.StatusBadRequest, "잘못된 요청입니다"},
		{"zero_path", "/items/0/messages", `{"message":"hi"}`, 2, http.StatusBadRequest, "잘못된 요청입니다"},
		{"malformed_json", "/items/7/messages", `{"message":`, 2, http.StatusBadRequest, "잘못된 요청입니다"},
		{"blank", "/items/7/messages", `{"message":"   "}`, 2, http.StatusBadRequest, "메시지를 입력해주세요"},
		{"unknown_item", "/items/8/messages", `{"message":"hi"}`, 2, http.StatusNotFound, "상품을 찾을 수 없습니다"},
		{"ok", "/items/7/messages", `{"message":"hi"}`, 2, http.StatusCreated, "메시지가 전송되었습니다"},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			code, body := ts.do(jsonRequest(http.MethodPost, tc.target, tc.body), tc.memberID)
			if code != tc.wantCode {
				t.Errorf("code = %d, want %d", code, tc.wantCode)
			}
			if body.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", body.Message, tc.wantMsg)
			}
			if body.Success != (code < http.StatusBadRequest) {
				t.Errorf("success = %v for code %d", body.Success, code)
			}
		})
	}

	_, body := ts.do(jsonRequest(http.MethodPost, "/items/7/messages", `{"message":"hi"}`), 2)
	var got types.FirstMessageSent
	if err := json.Unmarshal(body.Data, &got); err != nil {
		t.Fatal(err)
	}
	if got.ChatID != 3 || got.MessageID != 10 {
		t.Errorf("data = %+v", got)
	}
}

func TestInvalidToken(t *testing.T) {
	ts := newTestServer(t, &mock.StoreMock{}, false)

	req := jsonRequest(http.MethodGet, "/chats", "")
	req.Header.Set("Authorization", "Bearer nope")

	code, body := ts.do(req, 0)
	if code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", code)
	}
	if body.Success {
		t.Error("expected success false")
	}
}

func TestChats(t *testing.T) {
	store := &mock.StoreMock{
		ChatsFunc: func(ctx context.Context, in types.ListChats) (types.Page[types.ChatSummary], error) {
			return types.Page[types.ChatSummary]{}, nil
		},
	}
	ts := newTestServer(t, store, false)

	t.Run("empty_page", func(t *testing.T) {
		code, body := ts.do(jsonRequest(http.MethodGet, "/chats?first=10", ""), 1)
		if code != http.StatusOK {
			t.Fatalf("code = %d", code)
		}

		var items []json.RawMessage
		if err := json.Unmarshal(body.Data, &items); err != nil {
			t.Fatalf("data is not an array: %v", err)
		}
		if items == nil {
			t.Error("expected a non null items array")
		}
		if body.PageInfo == nil || body.PageInfo.HasNextPage {
			t.Errorf("page_info = %+v", body.PageInfo)
		}

		last := store.ChatsCalls()[len(store.ChatsCalls())-1].In
		if last.PageArgs.First == nil || *last.PageArgs.First != 10 || last.ViewerID() != 1 {
			t.Errorf("unexpected input %+v viewer %d", last.PageArgs, last.ViewerID())
		}
	})

	t.Run("bad_first", func(t *testing.T) {
		code, _ := ts.do(jsonRequest(http.MethodGet, "/chats?first=x", ""), 1)
		if code != http.StatusBadRequest {
			t.Errorf("code = %d, want 400", code)
		}
	})

	t.Run("first_and_last", func(t *testing.T) {
		code, _ := ts.do(jsonRequest(http.MethodGet, "/chats?first=1&last=1", ""), 1)
		if code != http.StatusBadRequest {
			t.Errorf("code = %d, want 400", code)
		}
	})
}

func TestMessages_Outsider(t *testing.T) {
	ts := newTestServer(t, chatStore(types.Chat{ID: 3, ItemID: 7, SellerID: 1, BuyerID: 2}), false)

	code, body := ts.do(jsonRequest(http.MethodGet, "/chats/3/messages", ""), 9)
	if code != http.StatusForbidden {
		t.Errorf("code = %d, want 403", code)
	}
	if body.Message != "이 채팅방에 접근할 권한이 없습니다" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestMessages_EmptyArray(t *testing.T) {
	store := chatStore(types.Chat{ID: 3, ItemID: 7, SellerID: 1, BuyerID: 2})
	store.MessagesFunc = func(ctx context.Context, in types.ListMessages) ([]types.Message, error) {
		return nil, nil
	}
	ts := newTestServer(t, store, false)

	code, body := ts.do(jsonRequest(http.MethodGet, "/chats/3/messages", ""), 2)
	if code != http.StatusOK {
		t.Fatalf("code = %d", code)
	}
	if !bytes.Contains(body.Data, []byte(`"messages":[]`)) {
		t.Errorf("data = %s", body.Data)
	}
}

func TestInternalError(t *testing.T) {
	newStore := func() *mock.StoreMock {
		store := chatStore(types.Chat{ID: 3, ItemID: 7, SellerID: 1, BuyerID: 2})
		store.MessagesFunc = func(ctx context.Context, in types.ListMessages) ([]types.Message, error) {
			return nil, errors.New("connection reset")
		}
		return store
	}

	t.Run("development", func(t *testing.T) {
		ts := newTestServer(t, newStore(), false)
		code, body := ts.do(jsonRequest(http.MethodGet, "/chats/3/messages", ""), 2)
		if code != http.StatusInternalServerError {
			t.Errorf("code = %d, want 500", code)
		}
		if body.Message != "메시지를 불러오는 중 오류가 발생했습니다" {
			t.Errorf("message = %q", body.Message)
		}
		if !strings.Contains(body.Error, "connection reset") {
			t.Errorf("error = %q", body.Error)
		}
	})

	t.Run("production", func(t *testing.T) {
		ts := newTestServer(t, newStore(), true)
		_, body := ts.do(jsonRequest(http.MethodGet, "/chats/3/messages", ""), 2)
		if body.Error != "" {
			t.Errorf("expected no error detail in production, got %q", body.Error)
		}
	})
}

func TestSendMessage_Multipart(t *testing.T) {
	store := chatStore(types.Chat{ID: 3, ItemID: 7, SellerID: 1, BuyerID: 2})
	store.CreateMessageFunc = func(ctx context.Context, in types.SendMessage) (types.Created, error) {
		return types.Created{ID: 11}, nil
	}
	ts := newTestServer(t, store, false)

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("message", "사진이에요"); err != nil {
		t.Fatal(err)
	}
	fw, err := mw.CreateFormFile("image", "photo.png")
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(fw, img); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/chats/3/messages", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	code, env := ts.do(req, 2)
	if code != http.StatusCreated {
		t.Fatalf("code = %d message = %q error = %q", code, env.Message, env.Error)
	}

	var got types.MessageSent
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatal(err)
	}
	if got.MessageID != 11 || got.ImageURL == nil || !strings.HasPrefix(*got.ImageURL, "http://localhost:9000/chat-images/") {
		t.Errorf("data = %s", env.Data)
	}

	in := store.CreateMessageCalls()[0].In
	if in.Message != "사진이에요" || in.ImageURL() == nil {
		t.Errorf("unexpected store input message=%q image=%v", in.Message, in.ImageURL())
	}
}

func TestSendMessage_JSONWithoutContent(t *testing.T) {
	ts := newTestServer(t, chatStore(types.Chat{ID: 3, ItemID: 7, SellerID: 1, BuyerID: 2}), false)

	code, body := ts.do(jsonRequest(http.MethodPost, "/chats/3/messages", `{"message":"  "}`), 1)
	if code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", code)
	}
	if body.Message != "메시지 또는 사진을 입력해주세요" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestSetItemStatus(t *testing.T) {
	store := chatStore(types.Chat{ID: 3, ItemID: 7, SellerID: 1, BuyerID: 2})
	store.ItemFunc = func(ctx context.Context, itemID int64) (types.Item, error) {
		return types.Item{ID: 7, SellerID: 1, Status: types.ItemStatusSelling}, nil
	}
	store.UpdateItemStatusFunc = func(ctx context.Context, in types.UpdateItemStatus) error {
		return nil
	}
	ts := newTestServer(t, store, false)

	code, body := ts.do(jsonRequest(http.MethodPatch, "/chats/3/item-status", `{"status":"SOLD"}`), 1)
	if code != http.StatusOK {
		t.Fatalf("code = %d message = %q", code, body.Message)
	}
	if body.Message != "거래완료로 변경되었습니다" {
		t.Errorf("message = %q", body.Message)
	}

	code, _ = ts.do(jsonRequest(http.MethodPatch, "/chats/3/item-status", `{"status":"SOLD"}`), 2)
	if code != http.StatusForbidden {
		t.Errorf("buyer code = %d, want 403", code)
	}

	code, _ = ts.do(jsonRequest(http.MethodPatch, "/chats/3/item-status", `{"status":"GONE"}`), 1)
	if code != http.StatusBadRequest {
		t.Errorf("bad status code = %d, want 400", code)
	}
}

func TestConfirmAppointment(t *testing.T) {
	appt := types.Appointment{ID: 5, ChatID: 3, CreatedBy: 2, Status: types.AppointmentStatusRequested}
	store := chatStore(types.Chat{ID: 3, ItemID: 7, SellerID: 1, BuyerID: 2})
	store.AppointmentFunc = func(ctx context.Context, in types.RetrieveAppointment) (types.Appointment, error) {
		if in.AppointmentID != appt.ID || in.ChatID != appt.ChatID {
			return types.Appointment{}, errs.NotFoundError("약속을 찾을 수 없습니다")
		}
		return appt, nil
	}
	store.ConfirmAppointmentFunc = func(ctx context.Context, in types.ConfirmAppointment) error {
		return nil
	}
	ts := newTestServer(t, store, false)

	code, _ := ts.do(jsonRequest(http.MethodPatch, "/chats/3/appointments/5/confirm", ""), 2)
	if code != http.StatusBadRequest {
		t.Errorf("self confirm code = %d, want 400", code)
	}

	code, body := ts.do(jsonRequest(http.MethodPatch, "/chats/3/appointments/5/confirm", ""), 1)
	if code != http.StatusOK {
		t.Fatalf("code = %d message = %q", code, body.Message)
	}
	if !bytes.Contains(body.Data, []byte(`"status":"CONFIRMED"`)) {
		t.Errorf("data = %s", body.Data)
	}

	code, _ = ts.do(jsonRequest(http.MethodGet, "/chats/3/appointments/6", ""), 1)
	if code != http.StatusNotFound {
		t.Errorf("unknown appointment code = %d, want 404", code)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	store := &mock.StoreMock{
		PingFunc: func(ctx context.Context) error {
			return nil
		},
	}
	ts := newTestServer(t, store, false)

	code, body := ts.do(httptest.NewRequest(http.MethodGet, "/health", nil), 0)
	if code != http.StatusOK || !bytes.Contains(body.Data, []byte(`"ok"`)) {
		t.Errorf("health code = %d data = %s", code, body.Data)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics code = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `taemindang_http_requests_total{code="200",route="health"} 1`) {
		t.Errorf("health request not counted:\n%s", rec.Body.String())
	}
}

func TestNotFoundRoute(t *testing.T) {
	ts := newTestServer(t, &mock.StoreMock{}, false)

	code, body := ts.do(httptest.NewRequest(http.MethodGet, "/nope", nil), 0)
	if code != http.StatusNotFound || body.Success {
		t.Errorf("code = %d success = %v", code, body.Success)
	}
}
