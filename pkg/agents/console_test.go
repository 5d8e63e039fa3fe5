package agents

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/love514425/kraken/pkg/logging"
	"github.com/love514425/kraken/pkg/protocol"
)

type captureBackend struct {
	entries []*protocol.LogEntry
}

func (b *captureBackend) Enable() protocol.DispatchResponse  { return protocol.OK() }
func (b *captureBackend) Disable() protocol.DispatchResponse { return protocol.OK() }
func (b *captureBackend) Clear() protocol.DispatchResponse   { return protocol.OK() }

func (b *captureBackend) AddMessageToConsole(entry *protocol.LogEntry) {
	b.entries = append(b.entries, entry)
}

func TestConsoleClientLevelMapping(t *testing.T) {
	cases := []struct {
		engine MessageLevel
		wire   protocol.LogEntryLevel
	}{
		{MessageLevelLog, protocol.LevelInfo},
		{MessageLevelInfo, protocol.LevelInfo},
		{MessageLevelDebug, protocol.LevelVerbose},
		{MessageLevelWarning, protocol.LevelWarning},
		{MessageLevelError, protocol.LevelError},
	}

	backend := &captureBackend{}
	client := NewConsoleClient(backend, nil)
	for _, tc := range cases {
		client.SendMessageToConsole(tc.engine, "msg")
	}

	require.Len(t, backend.entries, len(cases))
	for i, tc := range cases {
		if backend.entries[i].Level() != tc.wire {
			t.Errorf("Engine level %d: expected wire level %q, got %q",
				tc.engine, tc.wire, backend.entries[i].Level())
		}
	}
}

func TestConsoleClientEntryShape(t *testing.T) {
	backend := &captureBackend{}
	client := NewConsoleClient(backend, nil)
	client.now = func() time.Time { return time.UnixMilli(1700000000123) }

	client.SendMessageToConsole(MessageLevelError, "boom")

	require.Len(t, backend.entries, 1)
	entry := backend.entries[0]
	assert.Equal(t, protocol.SourceJavaScript, entry.Source())
	assert.Equal(t, "boom", entry.Text())
	assert.Equal(t, float64(1700000000123), entry.Timestamp())
}

func TestConsoleClientWarnsOncePerMethod(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, &logging.TextFormatter{DisableTimestamp: true})
	client := NewConsoleClient(&captureBackend{}, logger)

	client.Time("t")
	client.Time("t")
	client.TimeEnd("t")

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "method=time\n"), out)
	assert.Equal(t, 1, strings.Count(out, "method=timeEnd"), out)
}
