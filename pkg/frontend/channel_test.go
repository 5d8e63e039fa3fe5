package frontend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/love514425/kraken/pkg/protocol"
)

func TestBufferedChannelOrder(t *testing.T) {
	ch := NewBufferedChannel()

	const n = 10
	for i := 0; i < n; i++ {
		ev, err := protocol.NewEvent("Log.entryAdded", map[string]int{"seq": i})
		require.NoError(t, err)
		require.NoError(t, ch.SendEvent(ev))
	}

	events := ch.Events()
	require.Len(t, events, n)
	for i, ev := range events {
		var params map[string]int
		require.NoError(t, json.Unmarshal(ev.Params, &params))
		if params["seq"] != i {
			t.Errorf("Expected event %d in position %d, got %d", i, i, params["seq"])
		}
	}
}

func TestBufferedChannelClosed(t *testing.T) {
	ch := NewBufferedChannel()
	require.NoError(t, ch.Close())
	require.NoError(t, ch.Close())

	resp, err := protocol.NewResponse(1, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, ch.SendResponse(resp), ErrChannelClosed)
	assert.ErrorIs(t, ch.SendRaw(json.RawMessage(`{}`)), ErrChannelClosed)
}

func TestLogFrontendEntryAdded(t *testing.T) {
	ch := NewBufferedChannel()
	f := NewLogFrontend(ch)

	entry := protocol.NewLogEntryBuilder().
		SetSource(protocol.SourceJavaScript).
		SetLevel(protocol.LevelInfo).
		SetText("hello").
		SetTimestamp(1234).
		Build()
	require.NoError(t, f.EntryAdded(entry))

	events := ch.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Log.entryAdded", events[0].Method)

	var params struct {
		Entry struct {
			Text string `json:"text"`
		} `json:"entry"`
	}
	require.NoError(t, json.Unmarshal(events[0].Params, &params))
	assert.Equal(t, "hello", params.Entry.Text)
}

func TestDebuggerFrontendScriptParsed(t *testing.T) {
	ch := NewBufferedChannel()
	f := NewDebuggerFrontend(ch)

	n := protocol.NewScriptParsedNotificationBuilder().
		SetScriptID("1").
		SetURL("boot.js").
		SetStartLine(0).
		SetStartColumn(0).
		SetEndLine(9).
		SetEndColumn(0).
		SetExecutionContextID(1).
		SetHash("h").
		Build()
	require.NoError(t, f.ScriptParsed(n))

	events := ch.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Debugger.scriptParsed", events[0].Method)
	assert.Contains(t, string(events[0].Params), `"scriptId":"1"`)
}

func TestPageFrontendEvents(t *testing.T) {
	ch := NewBufferedChannel()
	f := NewPageFrontend(ch)

	require.NoError(t, f.LoadEventFired(12.5))
	require.NoError(t, f.FrameStartedLoading("frame-1"))

	events := ch.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "Page.loadEventFired", events[0].Method)
	assert.Equal(t, "Page.frameStartedLoading", events[1].Method)
}

func TestFrontendClosedChannelPropagates(t *testing.T) {
	ch := NewBufferedChannel()
	require.NoError(t, ch.Close())

	f := NewPageFrontend(ch)
	err := f.LoadEventFired(1)
	assert.ErrorIs(t, err, ErrChannelClosed)
}
