package usecase

import (
	"context"
	"testing"
)

func newTestSeriesHandler(t *testing.T) (*KafkaSeriesHandler, *fakeMetrics, *fakePublisher) {
	t.Helper()
	uc, m, pub, _ := newTestUseCase(t)
	return NewKafkaSeriesHandler("price_series", uc, m), m, pub
}

func TestSeriesHandlerAnalyzesAndPublishes(t *testing.T) {
	h, _, pub := newTestSeriesHandler(t)

	msg := []byte(`{"symbol":"BTCUSD","prices":[100,101,102,103,104],"multiplier":2}`)
	if err := h.Handle(context.Background(), msg); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(pub.events) != 1 || pub.events[0].Symbol != "BTCUSD" {
		t.Fatalf("published events=%+v, want one for BTCUSD", pub.events)
	}
}

func TestSeriesHandlerRejectsMalformedPayload(t *testing.T) {
	h, m, _ := newTestSeriesHandler(t)

	if err := h.Handle(context.Background(), []byte(`{not json`)); err == nil {
		t.Fatalf("expected unmarshal error")
	}
	if len(m.errors) != 1 || m.errors[0] != "consumer_unmarshal" {
		t.Fatalf("errors=%v, want [consumer_unmarshal]", m.errors)
	}
}

func TestSeriesHandlerDropsShortSeries(t *testing.T) {
	h, m, pub := newTestSeriesHandler(t)

	// A one-element series can never produce a fit; the message must be
	// acked, not retried.
	if err := h.Handle(context.Background(), []byte(`{"symbol":"X","prices":[42]}`)); err != nil {
		t.Fatalf("short series must not surface an error: %v", err)
	}
	found := false
	for _, e := range m.errors {
		if e == "consumer_bad_series" {
			found = true
		}
	}
	if !found {
		t.Fatalf("errors=%v, want consumer_bad_series recorded", m.errors)
	}
	if len(pub.events) != 0 {
		t.Fatalf("nothing should be published for a dropped series")
	}
}
