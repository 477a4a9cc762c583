package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind names what happened.
type Kind string

const (
	KindLoaded           Kind = "loaded"
	KindLoadFailed       Kind = "load_failed"
	KindProductAdded     Kind = "product_added"
	KindAddFailed        Kind = "add_failed"
	KindProductUpdated   Kind = "product_updated"
	KindUpdateFailed     Kind = "update_failed"
	KindProductDeleted   Kind = "product_deleted"
	KindDeleteFailed     Kind = "delete_failed"
	KindNothingToRestock Kind = "nothing_to_restock"
	KindOrderGenerated   Kind = "order_generated"
)

// Event is a user-facing notification.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	ProductID int       `json:"product_id,omitempty"`
	Count     int       `json:"count,omitempty"`
	Time      time.Time `json:"time"`
}

// Failed reports whether the event signals a failed action.
func (e Event) Failed() bool {
	switch e.Kind {
	case KindLoadFailed, KindAddFailed, KindUpdateFailed, KindDeleteFailed:
		return true
	}
	return false
}

// Notifier delivers events. Implementations must not hold the caller for longer
// than publishTimeout.
type Notifier interface {
	Notify(ctx context.Context, e Event)
}

// New builds an event with the standard message for kind.
func New(kind Kind) Event {
	return Event{
		ID:      uuid.New(),
		Kind:    kind,
		Message: message(kind, 0),
		Time:    time.Now().UTC(),
	}
}

// ForProduct builds an event about a single product.
func ForProduct(kind Kind, productID int) Event {
	e := New(kind)
	e.ProductID = productID
	return e
}

// OrderGenerated builds the event sent after a supplier order was produced.
func OrderGenerated(count int) Event {
	e := New(KindOrderGenerated)
	e.Count = count
	e.Message = message(KindOrderGenerated, count)
	return e
}

func message(kind Kind, count int) string {
	switch kind {
	case KindLoaded:
		return "Products loaded"
	case KindLoadFailed:
		return "Failed to load products"
	case KindProductAdded:
		return "Product added successfully!"
	case KindAddFailed:
		return "Error adding product"
	case KindProductUpdated:
		return "Product updated successfully!"
	case KindUpdateFailed:
		return "Error updating product"
	case KindProductDeleted:
		return "Product deleted successfully!"
	case KindDeleteFailed:
		return "Error deleting product"
	case KindNothingToRestock:
		return "No products need restocking!"
	case KindOrderGenerated:
		return fmt.Sprintf("Supplier order generated for %d products!", count)
	}
	return string(kind)
}

// Discard drops every event.
type Discard struct{}

func (Discard) Notify(context.Context, Event) {}

// Multi fans an event out to several notifiers.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, e Event) {
	for _, n := range m {
		n.Notify(ctx, e)
	}
}
