package chat

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Lupao-eth/trip-task/internal/pkg/logger"
	"github.com/Lupao-eth/trip-task/internal/pkg/models"
)

// FetchFunc returns the booking's full message log, enriched and ordered
type FetchFunc func(ctx context.Context) ([]models.ChatMessage, error)

// ChannelOptions configures a chat channel
type ChannelOptions struct {
	// Fetch loads the snapshot and each poll sweep. Required.
	Fetch FetchFunc
	// Push carries messages arriving over the push subscription. Optional;
	// nil means poll-only delivery.
	Push <-chan models.ChatMessage
	// PollInterval spaces the poll sweeps. Zero disables polling so the
	// channel delivers the snapshot and push traffic only.
	PollInterval time.Duration
	// Buffer sizes the outgoing channel. Defaults to 16.
	Buffer int
	// Cleanup runs once when the channel closes
	Cleanup func()
}

// Channel streams one booking's conversation to a single consumer. It
// emits the full merged view: a snapshot first, then a refreshed view
// whenever a poll sweep or pushed message adds something unseen. Every
// emission is ordered by creation time with message ID as tie-break, so
// a message that surfaces late (enrichment failure, dropped push) still
// lands in position rather than after newer traffic.
type Channel struct {
	bookingID uuid.UUID
	opts      ChannelOptions

	out    chan []models.ChatMessage
	view   []models.ChatMessage
	seen   map[uuid.UUID]struct{}
	primed bool
	cancel context.CancelFunc

	closeOnce sync.Once
	done      chan struct{}
}

// NewChannel opens a channel and starts its delivery loop
func NewChannel(ctx context.Context, bookingID uuid.UUID, opts ChannelOptions) *Channel {
	buffer := opts.Buffer
	if buffer <= 0 {
		buffer = 16
	}

	runCtx, cancel := context.WithCancel(ctx)
	ch := &Channel{
		bookingID: bookingID,
		opts:      opts,
		out:       make(chan []models.ChatMessage, buffer),
		seen:      make(map[uuid.UUID]struct{}),
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	go ch.run(runCtx)
	return ch
}

// Messages returns the delivery stream. Each element is the complete
// conversation view at that point. The stream is closed when the channel
// shuts down.
func (ch *Channel) Messages() <-chan []models.ChatMessage {
	return ch.out
}

// BookingID returns the booking this channel is scoped to
func (ch *Channel) BookingID() uuid.UUID {
	return ch.bookingID
}

// Close tears the channel down: the poll loop stops, the push
// subscription is released and the message stream is closed. Close is
// idempotent.
func (ch *Channel) Close() error {
	ch.closeOnce.Do(func() {
		ch.cancel()
		if ch.opts.Cleanup != nil {
			ch.opts.Cleanup()
		}
	})
	<-ch.done
	return nil
}

func (ch *Channel) run(ctx context.Context) {
	defer close(ch.done)
	defer close(ch.out)

	// Snapshot before anything else so the consumer starts from the full log
	if !ch.sweep(ctx) {
		return
	}

	var tick <-chan time.Time
	if ch.opts.PollInterval > 0 {
		ticker := time.NewTicker(ch.opts.PollInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	push := ch.opts.Push
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			if !ch.sweep(ctx) {
				return
			}
		case msg, ok := <-push:
			if !ok {
				// Receive on a nil channel blocks forever, which is
				// exactly what a closed push path should do here.
				push = nil
				continue
			}
			if !ch.deliver(ctx, []models.ChatMessage{msg}) {
				return
			}
		}
	}
}

// sweep fetches the current log and republishes the view if it grew. A
// fetch failure is logged and skipped; the next sweep or push catches the
// stream up.
func (ch *Channel) sweep(ctx context.Context) bool {
	batch, err := ch.opts.Fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		logger.Warn("Chat poll sweep failed",
			logger.String("booking_id", ch.bookingID.String()),
			logger.Err(err))
		return true
	}
	return ch.deliver(ctx, batch)
}

// deliver folds the batch into the view and emits a fresh copy of the
// whole ordered view when it changed. The first delivery always emits,
// even an empty one, so the consumer knows the snapshot is in.
func (ch *Channel) deliver(ctx context.Context, batch []models.ChatMessage) bool {
	view, changed := mergeView(ch.view, ch.seen, batch)
	ch.view = view

	if !changed && ch.primed {
		return true
	}
	ch.primed = true

	snapshot := make([]models.ChatMessage, len(view))
	copy(snapshot, view)

	select {
	case ch.out <- snapshot:
	case <-ctx.Done():
		return false
	}
	return true
}

// mergeView folds unseen batch messages into the view and restores order
// by creation time with message ID as tie-break. Dedupe key is the
// message ID, so the same message arriving over both the poll and the
// push path lands exactly once. Feeding the same batch twice changes
// nothing the second time.
func mergeView(view []models.ChatMessage, seen map[uuid.UUID]struct{}, batch []models.ChatMessage) ([]models.ChatMessage, bool) {
	changed := false
	for _, msg := range batch {
		if _, ok := seen[msg.ID]; ok {
			continue
		}
		seen[msg.ID] = struct{}{}
		view = append(view, msg)
		changed = true
	}

	if changed {
		sort.Slice(view, func(i, j int) bool {
			return view[i].Before(&view[j])
		})
	}
	return view, changed
}
