package order

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/rogerio-castellano/pubstock/internal/metrics"
	"github.com/rogerio-castellano/pubstock/internal/models"
	"github.com/rogerio-castellano/pubstock/internal/notify"
)

// Result is a generated supplier order document.
type Result struct {
	FileName string
	Items    int
	PDF      []byte
}

// Generator produces supplier order documents and notifies about the outcome.
type Generator struct {
	opts     Options
	notifier notify.Notifier
	now      func() time.Time
}

func NewGenerator(opts Options, n notify.Notifier) *Generator {
	if n == nil {
		n = notify.Discard{}
	}
	return &Generator{opts: opts, notifier: n, now: time.Now}
}

// Generate builds the PDF for the low-stock products among filtered. When
// nothing needs restocking no document is produced and ErrNothingToRestock is returned.
func (g *Generator) Generate(ctx context.Context, filtered []models.Product) (Result, error) {
	now := g.now()
	o, err := New(filtered, now)
	if errors.Is(err, ErrNothingToRestock) {
		g.notifier.Notify(ctx, notify.New(notify.KindNothingToRestock))
		return Result{}, err
	}
	if err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	if err := WritePDF(&buf, o.Layout(g.opts)); err != nil {
		return Result{}, err
	}

	metrics.RecordOrderGenerated()
	g.notifier.Notify(ctx, notify.OrderGenerated(len(o.Items)))
	return Result{FileName: FileName(now), Items: len(o.Items), PDF: buf.Bytes()}, nil
}
