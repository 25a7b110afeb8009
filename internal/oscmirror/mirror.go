// Package oscmirror publishes cue list changes over OSC so a show controller
// or monitoring surface can follow the editor.
//
// Every store event becomes one or more messages under a configurable prefix:
//
//	{prefix}/cue/{id}/new     index (int32), label
//	{prefix}/cue/{id}/number  dotted number ("5.3", "_")
//	{prefix}/cue/{id}/label   label, notes
//	{prefix}/cue/{id}/delete
//	{prefix}/order            ids in running order
//	{prefix}/clear
//
// Sends are fire-and-forget UDP; failures are logged and counted, never
// returned to the editor.
package oscmirror

import (
	"github.com/charmbracelet/log"
	"github.com/hypebeast/go-osc/osc"
	"github.com/robby/cuelist/internal/domain"
	"github.com/robby/cuelist/internal/store"
)

// Sender delivers a packet. *osc.Client satisfies it.
type Sender interface {
	Send(packet osc.Packet) error
}

// Mirror forwards store events to a Sender.
type Mirror struct {
	sender  Sender
	builder *AddressBuilder
	logger  *log.Logger

	store       *store.Store
	unsubscribe func()

	sent   int
	failed int
}

// New creates a mirror that sends through sender.
func New(sender Sender, prefix string, logger *log.Logger) *Mirror {
	return &Mirror{
		sender:  sender,
		builder: NewAddressBuilder(prefix),
		logger:  logger.WithPrefix("osc"),
	}
}

// Dial creates a mirror sending UDP to host:port.
func Dial(host string, port int, prefix string, logger *log.Logger) *Mirror {
	logger.Info("OSC mirror enabled", "host", host, "port", port, "prefix", prefix)
	return New(osc.NewClient(host, port), prefix, logger)
}

// Attach subscribes to s and publishes its current contents. A mirror
// follows one store at a time; attaching again detaches the previous one.
func (m *Mirror) Attach(s *store.Store) {
	m.Detach()
	m.store = s
	m.unsubscribe = s.Subscribe(m.handle)
	m.Sync()
}

// Detach stops following the store.
func (m *Mirror) Detach() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.store = nil
}

// Sync publishes every cue followed by the running order.
func (m *Mirror) Sync() {
	if m.store == nil {
		return
	}
	m.send(m.builder.BuildAddress(MsgClear, nil))
	for i, cue := range m.store.Cues() {
		m.publishNew(i, cue)
	}
	m.publishOrder()
}

// Stats returns how many messages were sent and how many failed.
func (m *Mirror) Stats() (sent, failed int) {
	return m.sent, m.failed
}

func (m *Mirror) handle(ev store.Event) {
	id := ev.Cue.ID.String()

	switch ev.Kind {
	case store.EventAppended:
		m.publishNew(ev.Index, ev.Cue)
		m.publishOrder()
	case store.EventRemoved:
		m.send(m.builder.CueAddress(MsgCueDelete, id))
		m.publishOrder()
	case store.EventMoved:
		m.publishOrder()
	case store.EventRenumbered:
		m.send(m.builder.CueAddress(MsgCueNumber, id), ev.Cue.Number.Dotted())
	case store.EventRelabeled:
		m.send(m.builder.CueAddress(MsgCueLabel, id), ev.Cue.Label, ev.Cue.Notes)
	case store.EventCleared:
		m.send(m.builder.BuildAddress(MsgClear, nil))
	}
}

func (m *Mirror) publishNew(index int, cue domain.Cue) {
	id := cue.ID.String()
	m.send(m.builder.CueAddress(MsgCueNew, id), int32(index), cue.Label)
	m.send(m.builder.CueAddress(MsgCueNumber, id), cue.Number.Dotted())
}

func (m *Mirror) publishOrder() {
	if m.store == nil {
		return
	}
	ids := m.store.IDs()
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id.String()
	}
	m.send(m.builder.BuildAddress(MsgOrder, nil), args...)
}

func (m *Mirror) send(address string, args ...any) {
	msg := osc.NewMessage(address, args...)
	m.logger.Debug("sending OSC message", "address", address, "args", args)

	if err := m.sender.Send(msg); err != nil {
		m.failed++
		m.logger.Warn("OSC send failed", "address", address, "err", err)
		return
	}
	m.sent++
}
