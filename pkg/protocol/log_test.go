package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEntryBuilder(t *testing.T) {
	entry := NewLogEntryBuilder().
		SetSource(SourceJavaScript).
		SetLevel(LevelWarning).
		SetText("deprecated API").
		SetTimestamp(1700000000000).
		SetURL("app.js").
		SetLineNumber(12).
		Build()

	assert.Equal(t, SourceJavaScript, entry.Source())
	assert.Equal(t, LevelWarning, entry.Level())
	assert.Equal(t, "deprecated API", entry.Text())
	assert.Equal(t, float64(1700000000000), entry.Timestamp())
	assert.True(t, entry.HasURL())
	assert.Equal(t, "app.js", entry.URL(""))
	assert.Equal(t, 12, entry.LineNumber(-1))
	assert.False(t, entry.HasWorkerID())
	assert.Equal(t, "none", entry.WorkerID("none"))
}

func TestLogEntryBuilderMisuse(t *testing.T) {
	b := NewLogEntryBuilder().SetLevel(LevelError)
	assert.PanicsWithValue(t, "protocol: field level already set", func() {
		b.SetLevel(LevelInfo)
	})

	incomplete := NewLogEntryBuilder().SetSource(SourceOther).SetText("x")
	assert.Panics(t, func() { incomplete.Build() })

	// With level and timestamp both unset, level comes first in wire order
	// and must be the one named.
	b2 := NewLogEntryBuilder().SetSource(SourceOther).SetText("x")
	assert.PanicsWithValue(t, "protocol: required field level not set", func() {
		b2.Build()
	})
}

func TestEntryAddedParamsMarshal(t *testing.T) {
	entry := NewLogEntryBuilder().
		SetSource(SourceJavaScript).
		SetLevel(LevelError).
		SetText("boom").
		SetTimestamp(1).
		Build()

	data, err := json.Marshal(EntryAddedParams{Entry: entry})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"entry":{"source":"javascript","level":"error","text":"boom","timestamp":1}}`,
		string(data))
}
