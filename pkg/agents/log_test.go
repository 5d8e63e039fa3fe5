package agents

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/love514425/kraken/pkg/frontend"
	"github.com/love514425/kraken/pkg/protocol"
)

func warningEntry(text string) *protocol.LogEntry {
	return protocol.NewLogEntryBuilder().
		SetSource(protocol.SourceJavaScript).
		SetLevel(protocol.LevelWarning).
		SetText(text).
		SetTimestamp(1).
		Build()
}

func TestLogAgentDropsWhileDisabled(t *testing.T) {
	ch := frontend.NewBufferedChannel()
	agent := NewLogAgent(ch, nil)

	agent.AddMessageToConsole(warningEntry("x"))
	assert.Empty(t, ch.Events(), "disabled backend must not emit")

	agent.Enable()
	agent.AddMessageToConsole(warningEntry("x"))

	events := ch.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Log.entryAdded", events[0].Method)

	var params struct {
		Entry struct {
			Level string `json:"level"`
			Text  string `json:"text"`
		} `json:"entry"`
	}
	require.NoError(t, json.Unmarshal(events[0].Params, &params))
	assert.Equal(t, "warning", params.Entry.Level)
	assert.Equal(t, "x", params.Entry.Text)
}

func TestLogAgentLifecycleIdempotent(t *testing.T) {
	agent := NewLogAgent(frontend.NewBufferedChannel(), nil)

	assert.True(t, agent.Disable().IsSuccess())
	assert.False(t, agent.Enabled())

	assert.True(t, agent.Enable().IsSuccess())
	assert.True(t, agent.Enable().IsSuccess())
	assert.True(t, agent.Enabled())

	assert.True(t, agent.Clear().IsSuccess())
	assert.True(t, agent.Clear().IsSuccess())
}

func TestLogAgentEmissionOrder(t *testing.T) {
	ch := frontend.NewBufferedChannel()
	agent := NewLogAgent(ch, nil)
	agent.Enable()

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		agent.AddMessageToConsole(warningEntry(text))
	}

	events := ch.Events()
	require.Len(t, events, len(texts))
	for i, ev := range events {
		var params struct {
			Entry struct {
				Text string `json:"text"`
			} `json:"entry"`
		}
		require.NoError(t, json.Unmarshal(ev.Params, &params))
		assert.Equal(t, texts[i], params.Entry.Text)
	}
}

func TestLogAgentDisableStopsEmission(t *testing.T) {
	ch := frontend.NewBufferedChannel()
	agent := NewLogAgent(ch, nil)
	agent.Enable()
	agent.Disable()

	agent.AddMessageToConsole(warningEntry("late"))
	assert.Empty(t, ch.Events())
}
