package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type fakeRedis struct {
	mu       sync.Mutex
	channels []string
	messages []Event
	err      error
	ctxErr   error
	deadline bool
}

func (f *fakeRedis) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, f.deadline = ctx.Deadline()
	f.ctxErr = ctx.Err()

	var e Event
	if err := json.Unmarshal(message.([]byte), &e); err == nil {
		f.channels = append(f.channels, channel)
		f.messages = append(f.messages, e)
	}
	return redis.NewIntResult(1, f.err)
}

type fakeChannel struct {
	mu        sync.Mutex
	exchanges []string
	keys      []string
	sent      []amqp.Publishing
	err       error
	closed    bool
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exchanges = append(f.exchanges, exchange)
	f.keys = append(f.keys, key)
	f.sent = append(f.sent, msg)
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestRedisPublisher_PublishesInOrder(t *testing.T) {
	rdb := &fakeRedis{}
	p := &RedisPublisher{rdb: rdb, channel: "pubstock.events"}

	added := ForProduct(KindProductAdded, 1)
	updated := ForProduct(KindProductUpdated, 1)
	deleted := ForProduct(KindProductDeleted, 1)
	for _, e := range []Event{added, updated, deleted} {
		p.Notify(context.Background(), e)
	}

	if len(rdb.messages) != 3 {
		t.Fatalf("expected 3 published events, got %d", len(rdb.messages))
	}
	for i, want := range []Event{added, updated, deleted} {
		got := rdb.messages[i]
		if got.ID != want.ID || got.Kind != want.Kind || got.Message != want.Message || got.ProductID != 1 {
			t.Errorf("event %d: expected %+v, got %+v", i, want, got)
		}
		if rdb.channels[i] != "pubstock.events" {
			t.Errorf("event %d: unexpected channel %q", i, rdb.channels[i])
		}
	}
}

func TestRedisPublisher_OutlivesCancelledRequest(t *testing.T) {
	rdb := &fakeRedis{}
	p := &RedisPublisher{rdb: rdb, channel: "pubstock.events"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Notify(ctx, New(KindLoaded))

	if rdb.ctxErr != nil {
		t.Errorf("expected a live publish context, got %v", rdb.ctxErr)
	}
	if !rdb.deadline {
		t.Error("expected the publish to carry a deadline")
	}
}

func TestRedisPublisher_FailureIsNotFatal(t *testing.T) {
	rdb := &fakeRedis{err: errors.New("connection refused")}
	p := &RedisPublisher{rdb: rdb, channel: "pubstock.events"}

	done := make(chan struct{})
	go func() {
		p.Notify(context.Background(), New(KindLoadFailed))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify did not return after a failed publish")
	}
}

func TestAMQPPublisher_PublishesInOrder(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch, exchange: "pubstock"}

	events := []Event{New(KindLoaded), ForProduct(KindProductAdded, 4), OrderGenerated(2)}
	for _, e := range events {
		p.Notify(context.Background(), e)
	}

	if len(ch.sent) != len(events) {
		t.Fatalf("expected %d publishings, got %d", len(events), len(ch.sent))
	}
	for i, e := range events {
		msg := ch.sent[i]
		if ch.exchanges[i] != "pubstock" || ch.keys[i] != string(e.Kind) {
			t.Errorf("publishing %d: unexpected route %s/%s", i, ch.exchanges[i], ch.keys[i])
		}
		if msg.ContentType != "application/json" || msg.MessageId != e.ID.String() || !msg.Timestamp.Equal(e.Time) {
			t.Errorf("publishing %d: unexpected properties %+v", i, msg)
		}

		var got Event
		if err := json.Unmarshal(msg.Body, &got); err != nil {
			t.Fatalf("publishing %d: decode body: %v", i, err)
		}
		if got.ID != e.ID || got.Kind != e.Kind || got.Count != e.Count {
			t.Errorf("publishing %d: expected %+v, got %+v", i, e, got)
		}
	}
}

func TestAMQPPublisher_ConcurrentNotify(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &AMQPPublisher{ch: ch, exchange: "pubstock"}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			p.Notify(context.Background(), ForProduct(KindProductUpdated, id))
		}(i)
	}
	wg.Wait()

	if len(ch.sent) != 10 {
		t.Errorf("expected 10 publish attempts, got %d", len(ch.sent))
	}

	if err := p.Close(); err != nil || !ch.closed {
		t.Errorf("expected the channel to be closed, got %v", err)
	}
}
