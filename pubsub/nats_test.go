package pubsub

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/ory/dockertest/v3"
)

var testNATS *NATS

func TestMain(m *testing.M) {
	os.Exit(testMain(m))
}

func testMain(m *testing.M) int {
	var skipIntegration bool
	flag.BoolVar(&skipIntegration, "skip-integration", false, "Skip integration tests docker setup")
	flag.Parse()

	if skipIntegration || testing.Short() {
		return m.Run()
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		fmt.Printf("could not create docker pool: %v\n", err)
		return 1
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "nats",
		Tag:        "2-alpine",
	})
	if err != nil {
		fmt.Printf("could not create nats resource: %v\n", err)
		return 1
	}

	defer func() {
		if err := pool.Purge(resource); err != nil {
			fmt.Printf("could not cleanup nats container: %v\n", err)
		}
	}()

	var conn *nats.Conn
	err = pool.Retry(func() (err error) {
		conn, err = Connect("nats://"+resource.GetHostPort("4222/tcp"), nil)
		return err
	})
	if err != nil {
		fmt.Printf("could not connect to nats: %v\n", err)
		return 1
	}

	testNATS = New(conn)
	defer testNATS.Close()

	return m.Run()
}

func TestNATS_PublishSubscribe(t *testing.T) {
	if testNATS == nil {
		t.Skip("integration nats not available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	subCtx, stop := context.WithCancel(ctx)
	payloads, err := testNATS.Subscribe(subCtx, "chats.1")
	if err != nil {
		t.Fatal(err)
	}

	if err := testNATS.Publish(ctx, "chats.2", []byte("other")); err != nil {
		t.Fatal(err)
	}
	if err := testNATS.Publish(ctx, "chats.1", []byte("hello")); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-payloads:
		if string(got) != "hello" {
			t.Errorf("got %q, want %q", got, "hello")
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for payload")
	}

	stop()

	select {
	case _, ok := <-payloads:
		if ok {
			t.Error("expected no more payloads")
		}
	case <-ctx.Done():
		t.Fatal("subscription did not close")
	}
}
