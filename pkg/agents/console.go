package agents

import (
	"sync"
	"time"

	"github.com/love514425/kraken/pkg/logging"
	"github.com/love514425/kraken/pkg/protocol"
)

// MessageLevel is the engine's own console-message-level enumeration, as
// delivered by its ConsoleClient-style hook.
type MessageLevel int

const (
	MessageLevelLog MessageLevel = iota
	MessageLevelInfo
	MessageLevelDebug
	MessageLevelWarning
	MessageLevelError
)

// logEntryLevel maps an engine console level onto the Log domain's level
// enumeration.
func logEntryLevel(level MessageLevel) protocol.LogEntryLevel {
	switch level {
	case MessageLevelDebug:
		return protocol.LevelVerbose
	case MessageLevelWarning:
		return protocol.LevelWarning
	case MessageLevelError:
		return protocol.LevelError
	default:
		// log and info both surface as info.
		return protocol.LevelInfo
	}
}

// ConsoleClient adapts the engine's console hook onto the Log backend: every
// script-level console call becomes one LogEntry handed to the agent, which
// decides (by lifecycle state) whether the front end sees it.
type ConsoleClient struct {
	agent  LogBackend
	logger logging.Logger
	now    func() time.Time

	warnedMu sync.Mutex
	warned   map[string]bool
}

// NewConsoleClient creates a console hook adapter for the given Log backend.
func NewConsoleClient(agent LogBackend, logger logging.Logger) *ConsoleClient {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ConsoleClient{
		agent:  agent,
		logger: logger.WithFields(logging.String("component", "console-client")),
		now:    time.Now,
		warned: make(map[string]bool),
	}
}

// SendMessageToConsole is called by the engine whenever script code logs.
func (c *ConsoleClient) SendMessageToConsole(level MessageLevel, text string) {
	entry := protocol.NewLogEntryBuilder().
		SetSource(protocol.SourceJavaScript).
		SetLevel(logEntryLevel(level)).
		SetText(text).
		SetTimestamp(float64(c.now().UnixMilli())).
		Build()
	c.agent.AddMessageToConsole(entry)
}

// Count, Profile, ProfileEnd, TakeHeapSnapshot, Time, TimeEnd and TimeStamp
// are part of the engine's console surface this slice does not implement.
// Each warns once so a front end poking at them gets a breadcrumb.

func (c *ConsoleClient) Count(label string) { c.warnUnimplemented("count") }

func (c *ConsoleClient) Profile(title string) { c.warnUnimplemented("profile") }

func (c *ConsoleClient) ProfileEnd(title string) { c.warnUnimplemented("profileEnd") }

func (c *ConsoleClient) TakeHeapSnapshot(title string) { c.warnUnimplemented("takeHeapSnapshot") }

func (c *ConsoleClient) Time(title string) { c.warnUnimplemented("time") }

func (c *ConsoleClient) TimeEnd(title string) { c.warnUnimplemented("timeEnd") }

func (c *ConsoleClient) TimeStamp(title string) { c.warnUnimplemented("timeStamp") }

func (c *ConsoleClient) warnUnimplemented(method string) {
	c.warnedMu.Lock()
	seen := c.warned[method]
	c.warned[method] = true
	c.warnedMu.Unlock()
	if seen {
		return
	}
	c.logger.Warn("console method not implemented", logging.String("method", method))
}
