package oscmirror

import (
	"errors"
	"testing"

	"github.com/hypebeast/go-osc/osc"
	"github.com/robby/cuelist/internal/logging"
	"github.com/robby/cuelist/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender records every message instead of sending it.
type fakeSender struct {
	messages []*osc.Message
	err      error
}

func (f *fakeSender) Send(packet osc.Packet) error {
	if f.err != nil {
		return f.err
	}
	if msg, ok := packet.(*osc.Message); ok {
		f.messages = append(f.messages, msg)
	}
	return nil
}

func (f *fakeSender) addresses() []string {
	addrs := make([]string, len(f.messages))
	for i, msg := range f.messages {
		addrs[i] = msg.Address
	}
	return addrs
}

func (f *fakeSender) reset() {
	f.messages = nil
}

func createTestMirror(s *store.Store) (*Mirror, *fakeSender) {
	sender := &fakeSender{}
	m := New(sender, "/cuelist", logging.Discard())
	m.Attach(s)
	return m, sender
}

func TestAttach_SyncsExistingCues(t *testing.T) {
	s := store.New()
	a := s.Append("a")
	s.IncrementKey(0)

	_, sender := createTestMirror(s)

	prefix := "/cuelist/cue/" + a.String()
	assert.Equal(t, []string{
		"/cuelist/clear",
		prefix + "/new",
		prefix + "/number",
		"/cuelist/order",
	}, sender.addresses())

	assert.Equal(t, []any{int32(0), "a"}, sender.messages[1].Arguments)
	assert.Equal(t, []any{"1"}, sender.messages[2].Arguments)
	assert.Equal(t, []any{a.String()}, sender.messages[3].Arguments)
}

func TestMirror_PublishesEvents(t *testing.T) {
	s := store.New()
	_, sender := createTestMirror(s)

	t.Run("append", func(t *testing.T) {
		sender.reset()
		id := s.Append("house to half")

		require.Len(t, sender.messages, 3)
		assert.Equal(t, "/cuelist/cue/"+id.String()+"/new", sender.messages[0].Address)
		assert.Equal(t, []any{int32(0), "house to half"}, sender.messages[0].Arguments)
		assert.Equal(t, []any{"_"}, sender.messages[1].Arguments)
		assert.Equal(t, "/cuelist/order", sender.messages[2].Address)
	})

	t.Run("renumber", func(t *testing.T) {
		sender.reset()
		s.SetNumber(0, s.Cues()[0].Number.Increment().IncrementSecondary())

		require.Len(t, sender.messages, 1)
		assert.Equal(t, []any{"1.1"}, sender.messages[0].Arguments)
	})

	t.Run("relabel", func(t *testing.T) {
		sender.reset()
		s.SetLabel(0, "preshow", "slow")

		require.Len(t, sender.messages, 1)
		assert.Equal(t, []any{"preshow", "slow"}, sender.messages[0].Arguments)
	})

	t.Run("move publishes order", func(t *testing.T) {
		second := s.Append("b")
		sender.reset()
		s.MoveToFront(1)

		require.Len(t, sender.messages, 1)
		assert.Equal(t, "/cuelist/order", sender.messages[0].Address)
		assert.Equal(t, second.String(), sender.messages[0].Arguments[0])
	})

	t.Run("remove", func(t *testing.T) {
		gone := s.IDs()[0]
		sender.reset()
		s.RemoveAt(0)

		assert.Equal(t, []string{
			"/cuelist/cue/" + gone.String() + "/delete",
			"/cuelist/order",
		}, sender.addresses())
	})

	t.Run("clear", func(t *testing.T) {
		sender.reset()
		s.Clear()
		assert.Equal(t, []string{"/cuelist/clear"}, sender.addresses())
	})
}

func TestMirror_Detach(t *testing.T) {
	s := store.New()
	m, sender := createTestMirror(s)

	m.Detach()
	sender.reset()
	s.Append("a")

	assert.Empty(t, sender.messages)
}

func TestMirror_SendFailuresAreCounted(t *testing.T) {
	s := store.New()
	m, sender := createTestMirror(s)
	sentBefore, _ := m.Stats()

	sender.err = errors.New("network unreachable")
	require.NotPanics(t, func() {
		s.Append("a")
	})

	sent, failed := m.Stats()
	assert.Equal(t, sentBefore, sent)
	assert.Equal(t, 3, failed)
	assert.Equal(t, 1, s.Len(), "store unaffected by send failures")
}

func TestAddressBuilder(t *testing.T) {
	b := NewAddressBuilder("/show/")

	assert.Equal(t, "/show/cue/abc/number", b.CueAddress(MsgCueNumber, "abc"))
	assert.Equal(t, "/show/cue/abc/label", b.CueAddress(MsgCueLabel, "abc"))
	assert.Equal(t, "/show/order", b.BuildAddress(MsgOrder, nil))
	assert.Empty(t, b.BuildAddress(MessageType("bogus"), nil))
}
