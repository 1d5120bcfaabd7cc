package notice

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Observer consumes relationship events. Observers decide themselves which
// event types they act on.
type Observer interface {
	Update(event Event) error
	Name() string
}

// Manager fans events out to subscribed observers from a bounded worker
// pool. Delivery is best effort: a full channel drops the event rather than
// blocking the caller, and an observer error is logged, never propagated.
type Manager struct {
	observers    map[string]Observer
	eventChannel chan Event
	ctx          context.Context
	cancel       context.CancelFunc
	log          *logrus.Logger
	mu           sync.RWMutex
	wg           sync.WaitGroup
}

func NewManager(workers, bufferSize int, log *logrus.Logger) *Manager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	ctx, cancel := context.WithCancel(context.Background())

	m := &Manager{
		observers:    make(map[string]Observer),
		eventChannel: make(chan Event, bufferSize),
		ctx:          ctx,
		cancel:       cancel,
		log:          log,
	}

	for i := 0; i < workers; i++ {
		m.wg.Add(1)
		go m.processEvents()
	}

	return m
}

func (m *Manager) Subscribe(observer Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers[observer.Name()] = observer
	m.log.WithField("observer", observer.Name()).Info("observer subscribed")
}

func (m *Manager) Unsubscribe(observer Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.observers, observer.Name())
	m.log.WithField("observer", observer.Name()).Info("observer unsubscribed")
}

func (m *Manager) Notify(event Event) {
	m.mu.RLock()
	observers := make([]Observer, 0, len(m.observers))
	for _, obs := range m.observers {
		observers = append(observers, obs)
	}
	m.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(event); err != nil {
			m.log.WithFields(logrus.Fields{
				"observer": observer.Name(),
				"type":     event.Type,
				"error":    err,
			}).Warn("observer update failed")
		}
	}
}

func (m *Manager) NotifyAsync(event Event) {
	select {
	case m.eventChannel <- event:
	case <-m.ctx.Done():
	default:
		m.log.WithField("type", event.Type).Warn("event channel full, dropping event")
	}
}

func (m *Manager) processEvents() {
	defer m.wg.Done()

	for {
		select {
		case event := <-m.eventChannel:
			m.Notify(event)
		case <-m.ctx.Done():
			return
		}
	}
}

func (m *Manager) Shutdown() {
	m.cancel()
	m.wg.Wait()
	m.log.Info("notice manager shutdown complete")
}
