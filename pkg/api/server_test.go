package api

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"
)

func TestServer_StartStop(t *testing.T) {
	r := newTestRouter(t, "", &stubFetcher{})
	srv := NewServer("127.0.0.1:0", r)

	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	resp, err := http.Get("http://" + srv.Addr() + "/missing")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound || string(body) != "404 Not Found" {
		t.Fatalf("unexpected response %d %q", resp.StatusCode, body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	select {
	case err, ok := <-srv.Errors():
		if ok && err != nil {
			t.Fatalf("unexpected serve error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	if _, err := http.Get("http://" + srv.Addr() + "/"); err == nil {
		t.Fatal("expected request to fail after Stop")
	}
}

func TestServer_StartBindError(t *testing.T) {
	first := NewServer("127.0.0.1:0", http.NotFoundHandler())
	if err := first.Start(); err != nil {
		t.Fatal(err)
	}
	defer first.Stop(context.Background())

	second := NewServer(first.Addr(), http.NotFoundHandler())
	if err := second.Start(); err == nil {
		t.Fatal("expected bind error on a used address")
	}
}
