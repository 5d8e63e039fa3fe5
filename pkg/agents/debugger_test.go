package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/love514425/kraken/pkg/frontend"
	"github.com/love514425/kraken/pkg/protocol"
)

func parsedScript(id string) *protocol.ScriptParsedNotification {
	return protocol.NewScriptParsedNotificationBuilder().
		SetScriptID(id).
		SetURL("app.js").
		SetStartLine(0).
		SetStartColumn(0).
		SetEndLine(10).
		SetEndColumn(0).
		SetExecutionContextID(1).
		SetHash("h").
		Build()
}

func TestDebuggerAgentEmitsWhenEnabled(t *testing.T) {
	ch := frontend.NewBufferedChannel()
	agent := NewDebuggerAgent(ch, nil)

	agent.ScriptParsed(parsedScript("1"))
	assert.Empty(t, ch.Events(), "disabled backend must not announce scripts")

	agent.Enable()
	agent.ScriptParsed(parsedScript("2"))

	events := ch.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Debugger.scriptParsed", events[0].Method)
	assert.Contains(t, string(events[0].Params), `"scriptId":"2"`)
}

func TestDebuggerAgentLifecycleIdempotent(t *testing.T) {
	agent := NewDebuggerAgent(frontend.NewBufferedChannel(), nil)

	assert.True(t, agent.Enable().IsSuccess())
	assert.True(t, agent.Enable().IsSuccess())
	assert.True(t, agent.Enabled())
	assert.True(t, agent.Disable().IsSuccess())
	assert.True(t, agent.Disable().IsSuccess())
	assert.False(t, agent.Enabled())
}
