package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/taemindang/taemindang/mock"
	"github.com/taemindang/taemindang/service"
	httptransport "github.com/taemindang/taemindang/transport/http"
	"github.com/taemindang/taemindang/types"
	"github.com/vmihailenco/msgpack/v5"
)

func TestChatEvents(t *testing.T) {
	payloads := make(chan []byte, 1)
	subscriber := &mock.SubscriberMock{
		SubscribeFunc: func(ctx context.Context, subject string) (<-chan []byte, error) {
			return payloads, nil
		},
	}

	svc := service.New(&service.Config{
		Store:      chatStore(types.Chat{ID: 3, ItemID: 7, SellerID: 1, BuyerID: 2}),
		Subscriber: subscriber,
		TokenKey:   testTokenKey,
		BaseCtx:    context.Background(),
	})
	t.Cleanup(func() {
		_ = svc.Close()
	})

	streamsCtx, endStreams := context.WithCancel(context.Background())
	defer endStreams()

	reg := prometheus.NewRegistry()
	srv := httptest.NewServer(httptransport.New(httptransport.Config{
		Service:    svc,
		StreamsCtx: streamsCtx,
		Registerer: reg,
		Gatherer:   reg,
	}))
	defer srv.Close()

	token, err := svc.IssueToken(2)
	if err != nil {
		t.Fatal(err)
	}

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/chats/3/events"

	t.Run("anonymous", func(t *testing.T) {
		_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err == nil {
			t.Fatal("expected handshake to fail")
		}
		if resp == nil || resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("resp = %v", resp)
		}
	})

	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?token="+token.Token, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	msgID := int64(10)
	b, err := msgpack.Marshal(types.ChatEvent{
		Kind:      types.ChatEventMessageCreated,
		ChatID:    3,
		ActorID:   1,
		MessageID: &msgID,
	})
	if err != nil {
		t.Fatal(err)
	}
	payloads <- b

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var got types.ChatEvent
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatal(err)
	}
	if got.Kind != types.ChatEventMessageCreated || got.MessageID == nil || *got.MessageID != 10 {
		t.Errorf("unexpected event %+v", got)
	}

	endStreams()

	_, _, err = conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Errorf("err = %v, want going away close", err)
	}
}
