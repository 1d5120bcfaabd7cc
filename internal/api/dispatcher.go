package api

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// HandlerFunc handles one decoded command. Implementations must not panic on
// malformed payloads; the dispatcher still recovers as a last line of defense
// and reports a system error instead of crashing the worker.
type HandlerFunc func(ctx context.Context, cmd *Command) *CommandResponse

type Dispatcher struct {
	handlers map[string]HandlerFunc
	log      *logrus.Logger
}

func NewDispatcher(log *logrus.Logger) *Dispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Dispatcher{
		handlers: make(map[string]HandlerFunc),
		log:      log,
	}
}

func (d *Dispatcher) Register(action string, handler HandlerFunc) {
	d.handlers[action] = handler
}

func (d *Dispatcher) Actions() []string {
	actions := make([]string, 0, len(d.handlers))
	for action := range d.handlers {
		actions = append(actions, action)
	}
	return actions
}

// Dispatch routes the command to its handler. Unknown actions and recovered
// panics both surface as the opaque system-error status; internal detail is
// logged server-side only.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd *Command) (resp *CommandResponse) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			d.log.WithFields(logrus.Fields{
				"action":       cmd.Action,
				"site_user_id": cmd.SiteUserID,
				"panic":        r,
			}).Error("command handler panicked")
			resp = Failure(StatusSystemError)
		}
		commandsTotal.WithLabelValues(cmd.Action, resp.Status.Code()).Inc()
		commandDuration.WithLabelValues(cmd.Action).Observe(time.Since(start).Seconds())
	}()

	handler, ok := d.handlers[cmd.Action]
	if !ok {
		d.log.WithFields(logrus.Fields{
			"action":       cmd.Action,
			"site_user_id": cmd.SiteUserID,
		}).Warn("unknown command action")
		return Failure(StatusSystemError)
	}

	d.log.WithFields(logrus.Fields{
		"action":       cmd.Action,
		"site_user_id": cmd.SiteUserID,
		"client_ip":    cmd.ClientIP,
	}).Debug("dispatching command")

	resp = handler(ctx, cmd)
	if resp == nil {
		resp = Failure(StatusSystemError)
	}
	return resp
}
