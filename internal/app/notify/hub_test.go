package notify_test

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/app/notify"
)

func TestPublishReachesSubscriber(t *testing.T) {
	hub := notify.NewHub(zap.NewNop())
	defer hub.Close()

	ch, cancel := hub.Subscribe()
	defer cancel()

	hub.Publish(notify.KindRequestAdded, map[string]string{"id": "req-1"})

	select {
	case ev := <-ch:
		if ev.Kind != notify.KindRequestAdded {
			t.Errorf("kind: got %q, want %q", ev.Kind, notify.KindRequestAdded)
		}
		if ev.At.IsZero() {
			t.Error("expected event timestamp")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	hub := notify.NewHub(zap.NewNop())
	defer hub.Close()

	ch, cancel := hub.Subscribe()
	cancel()

	// Channel is closed after cancel.
	if _, ok := <-ch; ok {
		t.Error("expected closed channel after cancel")
	}

	// Publishing to a canceled subscriber must not panic.
	hub.Publish(notify.KindEmergencyAlert, nil)
}

func TestSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := notify.NewHub(zap.NewNop())
	defer hub.Close()

	_, cancel := hub.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(notify.KindResourceUpdated, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}
}

func TestCloseClosesSubscribers(t *testing.T) {
	hub := notify.NewHub(zap.NewNop())
	ch, cancel := hub.Subscribe()
	defer cancel()

	hub.Close()

	if _, ok := <-ch; ok {
		t.Error("expected closed channel after hub close")
	}

	// Subscribing after close yields an already-closed channel.
	ch2, cancel2 := hub.Subscribe()
	defer cancel2()
	if _, ok := <-ch2; ok {
		t.Error("expected closed channel for post-close subscribe")
	}
}
