package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/repositories"
)

type eventKind int

const (
	eventView eventKind = iota
	eventInquiry
)

type trackEvent struct {
	kind      eventKind
	productID string
	visitorIP string
	at        time.Time
}

// Tracker records product views and inquiries off the request path. Events are
// best effort: a full queue drops the event and never blocks the caller.
type Tracker struct {
	repo    repositories.AnalyticsRepository
	events  chan trackEvent
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	timeout time.Duration
}

func NewTracker(repo repositories.AnalyticsRepository, buffer, workers int) *Tracker {
	if buffer <= 0 {
		buffer = 256
	}
	if workers <= 0 {
		workers = 1
	}
	t := &Tracker{
		repo:    repo,
		events:  make(chan trackEvent, buffer),
		timeout: 5 * time.Second,
	}
	for i := 0; i < workers; i++ {
		t.wg.Add(1)
		go t.worker()
	}
	return t
}

func (t *Tracker) TrackView(productID, visitorIP string) bool {
	return t.enqueue(trackEvent{kind: eventView, productID: productID, visitorIP: visitorIP, at: time.Now()})
}

func (t *Tracker) TrackInquiry(productID, visitorIP string) bool {
	return t.enqueue(trackEvent{kind: eventInquiry, productID: productID, visitorIP: visitorIP, at: time.Now()})
}

func (t *Tracker) enqueue(ev trackEvent) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		return false
	}
	select {
	case t.events <- ev:
		return true
	default:
		log.Printf("Tracker.enqueue: queue full, dropping event for product %s", ev.productID)
		return false
	}
}

func (t *Tracker) worker() {
	defer t.wg.Done()
	for ev := range t.events {
		t.record(ev)
	}
}

func (t *Tracker) record(ev trackEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	var ip *string
	if ev.visitorIP != "" {
		v := ev.visitorIP
		ip = &v
	}

	var err error
	switch ev.kind {
	case eventView:
		err = t.repo.CreateView(ctx, &models.ProductView{ProductID: ev.productID, VisitorIP: ip, CreatedAt: ev.at})
	case eventInquiry:
		err = t.repo.CreateInquiry(ctx, &models.ProductInquiry{ProductID: ev.productID, VisitorIP: ip, CreatedAt: ev.at})
	}
	if err != nil {
		log.Printf("Tracker.record: %v", err)
	}
}

// Close stops accepting events and waits until queued events are written.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	close(t.events)
	t.mu.Unlock()

	t.wg.Wait()
}
