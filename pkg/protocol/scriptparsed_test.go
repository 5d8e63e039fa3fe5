package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeScriptParsedBuilder() *ScriptParsedNotificationBuilder {
	return NewScriptParsedNotificationBuilder().
		SetScriptID("42").
		SetURL("https://example.com/app.js").
		SetStartLine(0).
		SetStartColumn(0).
		SetEndLine(120).
		SetEndColumn(17).
		SetExecutionContextID(1).
		SetHash("0f91fe41f7be9f2a")
}

func TestScriptParsedRoundTrip(t *testing.T) {
	n := completeScriptParsedBuilder().Build()

	if n.ScriptID() != "42" {
		t.Errorf("Expected scriptId '42', got %q", n.ScriptID())
	}
	if n.URL() != "https://example.com/app.js" {
		t.Errorf("Expected url to round-trip, got %q", n.URL())
	}
	assert.Equal(t, 0, n.StartLine())
	assert.Equal(t, 0, n.StartColumn())
	assert.Equal(t, 120, n.EndLine())
	assert.Equal(t, 17, n.EndColumn())
	assert.Equal(t, 1, n.ExecutionContextID())
	assert.Equal(t, "0f91fe41f7be9f2a", n.Hash())
}

func TestScriptParsedOptionalDefaults(t *testing.T) {
	n := completeScriptParsedBuilder().Build()

	assert.False(t, n.HasIsLiveEdit())
	assert.True(t, n.IsLiveEdit(true), "absent optional must yield the supplied default")
	assert.False(t, n.HasSourceMapURL())
	assert.Equal(t, "none", n.SourceMapURL("none"))
	assert.False(t, n.HasLength())
	assert.Equal(t, -1, n.Length(-1))
}

func TestScriptParsedOptionalSet(t *testing.T) {
	n := completeScriptParsedBuilder().
		SetIsLiveEdit(false).
		SetSourceMapURL("app.js.map").
		SetLength(4096).
		SetIsModule(true).
		Build()

	assert.True(t, n.HasIsLiveEdit())
	// Once set, the default no longer matters.
	assert.False(t, n.IsLiveEdit(true))
	assert.Equal(t, "app.js.map", n.SourceMapURL(""))
	assert.Equal(t, 4096, n.Length(0))
	assert.True(t, n.IsModule(false))
}

func TestScriptParsedDoubleSetPanics(t *testing.T) {
	b := NewScriptParsedNotificationBuilder().SetScriptID("42")
	assert.PanicsWithValue(t, "protocol: field scriptId already set", func() {
		b.SetScriptID("43")
	})
}

func TestScriptParsedMissingFieldPanics(t *testing.T) {
	b := NewScriptParsedNotificationBuilder().
		SetScriptID("42").
		SetURL("u").
		SetStartLine(0).
		SetStartColumn(0).
		SetEndLine(1).
		SetEndColumn(1).
		SetExecutionContextID(1)
	// hash never set
	assert.Panics(t, func() { b.Build() })
}

func TestScriptParsedMissingFieldNamesFirstInWireOrder(t *testing.T) {
	// Several fields are missing; the message must name the first one in
	// wire order every time.
	for i := 0; i < 20; i++ {
		b := NewScriptParsedNotificationBuilder().SetURL("u").SetHash("h")
		assert.PanicsWithValue(t, "protocol: required field scriptId not set", func() {
			b.Build()
		})
	}
}

func TestScriptParsedBuildOnce(t *testing.T) {
	b := completeScriptParsedBuilder()
	b.Build()
	assert.Panics(t, func() { b.Build() })
	assert.Panics(t, func() { b.SetIsModule(true) })
}

func TestScriptParsedMarshal(t *testing.T) {
	n := completeScriptParsedBuilder().
		SetSourceMapURL("app.js.map").
		SetExecutionContextAuxData(json.RawMessage(`{"isDefault":true}`)).
		Build()

	data, err := json.Marshal(n)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "42", decoded["scriptId"])
	assert.Equal(t, "app.js.map", decoded["sourceMapURL"])
	assert.Equal(t, float64(120), decoded["endLine"])
	assert.Contains(t, decoded, "executionContextAuxData")
	// Absent optionals stay off the wire.
	assert.NotContains(t, decoded, "isLiveEdit")
	assert.NotContains(t, decoded, "stackTrace")
}

func TestScriptParsedFromJSON(t *testing.T) {
	raw := json.RawMessage(`{
		"scriptId":"7","url":"inline.js","startLine":0,"startColumn":0,
		"endLine":3,"endColumn":9,"executionContextId":2,"hash":"abc",
		"isModule":true
	}`)

	errs := NewErrorSupport()
	n := ScriptParsedNotificationFromJSON(raw, errs)
	require.False(t, errs.HasErrors(), errs.Errors())
	require.NotNil(t, n)
	assert.Equal(t, "7", n.ScriptID())
	assert.True(t, n.IsModule(false))
}

func TestScriptParsedFromJSONMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"scriptId":"7","url":"inline.js"}`)

	errs := NewErrorSupport()
	n := ScriptParsedNotificationFromJSON(raw, errs)
	assert.Nil(t, n)
	assert.True(t, errs.HasErrors())
	assert.Contains(t, errs.Errors(), "hash: required field missing")
}

func TestCallFrameBuilder(t *testing.T) {
	f := NewCallFrameBuilder().
		SetFunctionName("onClick").
		SetScriptID("42").
		SetURL("app.js").
		SetLineNumber(10).
		SetColumnNumber(4).
		Build()

	assert.Equal(t, "onClick", f.FunctionName())
	assert.Equal(t, 10, f.LineNumber())

	incomplete := NewCallFrameBuilder().SetFunctionName("f")
	assert.Panics(t, func() { incomplete.Build() })
}

func TestStackTraceRoundTrip(t *testing.T) {
	frame := NewCallFrameBuilder().
		SetFunctionName("main").
		SetScriptID("1").
		SetURL("boot.js").
		SetLineNumber(0).
		SetColumnNumber(0).
		Build()
	trace := NewStackTraceBuilder().
		SetDescription("setTimeout").
		SetCallFrames([]*CallFrame{frame}).
		Build()

	data, err := json.Marshal(trace)
	require.NoError(t, err)

	var decoded StackTrace
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.CallFrames(), 1)
	assert.Equal(t, "main", decoded.CallFrames()[0].FunctionName())
	assert.Equal(t, "setTimeout", decoded.Description(""))
	assert.False(t, decoded.HasParent())
}

func TestStackTraceRequiresCallFrames(t *testing.T) {
	b := NewStackTraceBuilder().SetDescription("orphan")
	assert.Panics(t, func() { b.Build() })
}
