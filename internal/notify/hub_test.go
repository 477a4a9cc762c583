package notify

import (
	"context"
	"testing"
	"time"
)

func TestHub_DeliversToEverySubscriber(t *testing.T) {
	h := NewHub(4)
	a, unsubA := h.Subscribe()
	b, unsubB := h.Subscribe()
	defer unsubA()
	defer unsubB()

	h.Notify(context.Background(), ForProduct(KindProductAdded, 3))

	for _, ch := range []<-chan Event{a, b} {
		select {
		case e := <-ch:
			if e.Kind != KindProductAdded || e.ProductID != 3 {
				t.Errorf("unexpected event %+v", e)
			}
			if e.Message != "Product added successfully!" {
				t.Errorf("unexpected message %q", e.Message)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestHub_FullSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub(1)
	ch, unsub := h.Subscribe()
	defer unsub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			h.Notify(context.Background(), New(KindLoaded))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full subscriber")
	}
	if len(ch) != 1 {
		t.Errorf("expected 1 buffered event, got %d", len(ch))
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	h := NewHub(1)
	ch, unsub := h.Subscribe()
	unsub()
	unsub()

	if _, ok := <-ch; ok {
		t.Error("expected closed channel")
	}
	h.Notify(context.Background(), New(KindLoaded))
}

type recorder struct{ events []Event }

func (r *recorder) Notify(_ context.Context, e Event) { r.events = append(r.events, e) }

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	Multi{a, b, Discard{}}.Notify(context.Background(), New(KindNothingToRestock))

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Fatalf("expected fan-out, got %d and %d", len(a.events), len(b.events))
	}
	if a.events[0].Message != "No products need restocking!" {
		t.Errorf("unexpected message %q", a.events[0].Message)
	}
}

func TestOrderGeneratedMessage(t *testing.T) {
	e := OrderGenerated(3)
	if e.Message != "Supplier order generated for 3 products!" || e.Count != 3 {
		t.Errorf("unexpected event %+v", e)
	}
	if e.Failed() {
		t.Error("order generated is not a failure")
	}
	if !New(KindDeleteFailed).Failed() {
		t.Error("expected delete_failed to be a failure")
	}
}
