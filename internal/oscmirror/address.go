package oscmirror

import (
	"fmt"
	"strings"
)

// MessageType identifies an outgoing mirror message.
type MessageType string

const (
	MsgCueNew    MessageType = "cue_new"
	MsgCueDelete MessageType = "cue_delete"
	MsgCueNumber MessageType = "cue_number"
	MsgCueLabel  MessageType = "cue_label"
	MsgOrder     MessageType = "order"
	MsgClear     MessageType = "clear"
)

// OSC address patterns, relative to the configured prefix.
const (
	AddrCueNew    = "{prefix}/cue/{id}/new"
	AddrCueDelete = "{prefix}/cue/{id}/delete"
	AddrCueNumber = "{prefix}/cue/{id}/number"
	AddrCueLabel  = "{prefix}/cue/{id}/label"
	AddrOrder     = "{prefix}/order"
	AddrClear     = "{prefix}/clear"
)

// AddressBuilder builds OSC addresses from message types and parameters.
type AddressBuilder struct {
	prefix string
}

// NewAddressBuilder creates a builder for the given prefix. A trailing slash
// on the prefix is dropped.
func NewAddressBuilder(prefix string) *AddressBuilder {
	return &AddressBuilder{
		prefix: strings.TrimRight(prefix, "/"),
	}
}

// BuildAddress builds the address for msgType, filling {placeholders} from params.
// It returns "" for an unknown message type.
func (b *AddressBuilder) BuildAddress(msgType MessageType, params map[string]string) string {
	var address string

	switch msgType {
	case MsgCueNew:
		address = AddrCueNew
	case MsgCueDelete:
		address = AddrCueDelete
	case MsgCueNumber:
		address = AddrCueNumber
	case MsgCueLabel:
		address = AddrCueLabel
	case MsgOrder:
		address = AddrOrder
	case MsgClear:
		address = AddrClear
	default:
		return ""
	}

	address = strings.ReplaceAll(address, "{prefix}", b.prefix)
	for key, value := range params {
		address = strings.ReplaceAll(address, fmt.Sprintf("{%s}", key), value)
	}

	return address
}

// CueAddress builds a per-cue address.
func (b *AddressBuilder) CueAddress(msgType MessageType, cueID string) string {
	return b.BuildAddress(msgType, map[string]string{"id": cueID})
}
