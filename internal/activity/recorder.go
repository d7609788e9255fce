// Package activity records what happens in a session to the profile log.
package activity

import (
	"context"
	"sync"

	"github.com/matheus3301/flowchat/internal/bus"
	"github.com/matheus3301/flowchat/internal/conversation"
	"github.com/matheus3301/flowchat/internal/identity"
	"github.com/matheus3301/flowchat/internal/nav"
	"go.uber.org/zap"
)

// Stats counts the events seen since Start.
type Stats struct {
	MessagesSent int
	MessagesRead int
	PageChanges  int
	SignIns      int
}

// Recorder subscribes to the bus and logs chat, navigation and session
// events. Message text is never logged.
type Recorder struct {
	bus    *bus.Bus
	logger *zap.Logger
	cancel context.CancelFunc
	done   chan struct{}

	mu    sync.Mutex
	stats Stats
}

// NewRecorder creates a recorder over b.
func NewRecorder(b *bus.Bus, logger *zap.Logger) *Recorder {
	return &Recorder{bus: b, logger: logger}
}

// Start begins consuming events until ctx ends or Stop is called.
func (r *Recorder) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	ch, unsub := r.bus.Subscribe("", 256)

	go func() {
		defer close(r.done)
		defer unsub()
		for {
			select {
			case evt := <-ch:
				r.handleEvent(evt)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the recorder and waits for it to drain.
func (r *Recorder) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
}

// Stats returns a snapshot of the counters.
func (r *Recorder) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

func (r *Recorder) handleEvent(evt bus.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch p := evt.Payload.(type) {
	case conversation.Sent:
		r.stats.MessagesSent++
		r.logger.Info("message sent",
			zap.String("chat", p.ChatID),
			zap.String("msg_id", p.Message.ID),
			zap.Int("length", len([]rune(p.Message.Text))))
	case conversation.Read:
		r.stats.MessagesRead += len(p.MessageIDs)
		r.logger.Debug("messages read", zap.String("chat", p.ChatID), zap.Int("count", len(p.MessageIDs)))
	case nav.Change:
		r.stats.PageChanges++
		r.logger.Debug("page changed", zap.String("from", string(p.From)), zap.String("to", string(p.To)))
	case identity.User:
		if evt.Kind == bus.KindSignedIn {
			r.stats.SignIns++
		}
		r.logger.Info("session event", zap.String("kind", evt.Kind), zap.String("user", p.ID))
	default:
		r.logger.Debug("event", zap.String("kind", evt.Kind))
	}
}
