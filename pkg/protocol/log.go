package protocol

import "encoding/json"

// LogEntrySource identifies where a log entry originated.
type LogEntrySource string

const (
	SourceXML            LogEntrySource = "xml"
	SourceJavaScript     LogEntrySource = "javascript"
	SourceNetwork        LogEntrySource = "network"
	SourceStorage        LogEntrySource = "storage"
	SourceAppCache       LogEntrySource = "appcache"
	SourceRendering      LogEntrySource = "rendering"
	SourceSecurity       LogEntrySource = "security"
	SourceDeprecation    LogEntrySource = "deprecation"
	SourceWorker         LogEntrySource = "worker"
	SourceViolation      LogEntrySource = "violation"
	SourceIntervention   LogEntrySource = "intervention"
	SourceRecommendation LogEntrySource = "recommendation"
	SourceOther          LogEntrySource = "other"
)

// LogEntryLevel is the severity of a log entry on the wire.
type LogEntryLevel string

const (
	LevelVerbose LogEntryLevel = "verbose"
	LevelInfo    LogEntryLevel = "info"
	LevelWarning LogEntryLevel = "warning"
	LevelError   LogEntryLevel = "error"
)

// LogEntry is one console/log message forwarded to the front end as the
// payload of Log.entryAdded. Immutable after Build. Timestamp is
// milliseconds since the Unix epoch.
type LogEntry struct {
	source    LogEntrySource
	level     LogEntryLevel
	text      string
	timestamp float64

	url              Maybe[string]
	lineNumber       Maybe[int]
	stackTrace       Maybe[*StackTrace]
	networkRequestID Maybe[string]
	workerID         Maybe[string]
	args             Maybe[json.RawMessage]
}

func (e *LogEntry) Source() LogEntrySource { return e.source }
func (e *LogEntry) Level() LogEntryLevel   { return e.level }
func (e *LogEntry) Text() string           { return e.text }
func (e *LogEntry) Timestamp() float64     { return e.timestamp }

func (e *LogEntry) HasURL() bool { return e.url.IsJust() }

func (e *LogEntry) URL(def string) string { return e.url.FromMaybe(def) }

func (e *LogEntry) HasLineNumber() bool { return e.lineNumber.IsJust() }

func (e *LogEntry) LineNumber(def int) int { return e.lineNumber.FromMaybe(def) }

func (e *LogEntry) HasStackTrace() bool { return e.stackTrace.IsJust() }

func (e *LogEntry) StackTrace(def *StackTrace) *StackTrace { return e.stackTrace.FromMaybe(def) }

func (e *LogEntry) HasNetworkRequestID() bool { return e.networkRequestID.IsJust() }

func (e *LogEntry) NetworkRequestID(def string) string { return e.networkRequestID.FromMaybe(def) }

func (e *LogEntry) HasWorkerID() bool { return e.workerID.IsJust() }

func (e *LogEntry) WorkerID(def string) string { return e.workerID.FromMaybe(def) }

func (e *LogEntry) HasArgs() bool { return e.args.IsJust() }

func (e *LogEntry) Args(def json.RawMessage) json.RawMessage { return e.args.FromMaybe(def) }

type logEntryWire struct {
	Source           LogEntrySource  `json:"source"`
	Level            LogEntryLevel   `json:"level"`
	Text             string          `json:"text"`
	Timestamp        float64         `json:"timestamp"`
	URL              *string         `json:"url,omitempty"`
	LineNumber       *int            `json:"lineNumber,omitempty"`
	StackTrace       *StackTrace     `json:"stackTrace,omitempty"`
	NetworkRequestID *string         `json:"networkRequestId,omitempty"`
	WorkerID         *string         `json:"workerId,omitempty"`
	Args             json.RawMessage `json:"args,omitempty"`
}

func (e *LogEntry) MarshalJSON() ([]byte, error) {
	wire := logEntryWire{
		Source:    e.source,
		Level:     e.level,
		Text:      e.text,
		Timestamp: e.timestamp,
	}
	if e.url.IsJust() {
		v := e.url.FromJust()
		wire.URL = &v
	}
	if e.lineNumber.IsJust() {
		v := e.lineNumber.FromJust()
		wire.LineNumber = &v
	}
	if e.stackTrace.IsJust() {
		wire.StackTrace = e.stackTrace.FromJust()
	}
	if e.networkRequestID.IsJust() {
		v := e.networkRequestID.FromJust()
		wire.NetworkRequestID = &v
	}
	if e.workerID.IsJust() {
		v := e.workerID.FromJust()
		wire.WorkerID = &v
	}
	if e.args.IsJust() {
		wire.Args = e.args.FromJust()
	}
	return json.Marshal(wire)
}

// EntryAddedParams wraps a LogEntry as the params object of Log.entryAdded.
type EntryAddedParams struct {
	Entry *LogEntry `json:"entry"`
}

// Required-field construction state for LogEntryBuilder.
const (
	logSourceSet uint16 = 1 << iota
	logLevelSet
	logTextSet
	logTimestampSet

	allLogEntryFieldsSet = logSourceSet | logLevelSet | logTextSet | logTimestampSet
)

var logEntryFieldNames = []fieldName{
	{logSourceSet, "source"},
	{logLevelSet, "level"},
	{logTextSet, "text"},
	{logTimestampSet, "timestamp"},
}

// LogEntryBuilder accumulates one log entry with the shared construction
// discipline: required setters fire once, Build refuses incomplete entries.
type LogEntryBuilder struct {
	result *LogEntry
	state  uint16
}

func NewLogEntryBuilder() *LogEntryBuilder {
	return &LogEntryBuilder{result: &LogEntry{}}
}

func (b *LogEntryBuilder) mark(bit uint16) {
	if b.result == nil {
		panic("protocol: LogEntry already built")
	}
	if b.state&bit != 0 {
		panic("protocol: field " + lookupFieldName(logEntryFieldNames, bit) + " already set")
	}
	b.state |= bit
}

func (b *LogEntryBuilder) SetSource(v LogEntrySource) *LogEntryBuilder {
	b.mark(logSourceSet)
	b.result.source = v
	return b
}

func (b *LogEntryBuilder) SetLevel(v LogEntryLevel) *LogEntryBuilder {
	b.mark(logLevelSet)
	b.result.level = v
	return b
}

func (b *LogEntryBuilder) SetText(v string) *LogEntryBuilder {
	b.mark(logTextSet)
	b.result.text = v
	return b
}

func (b *LogEntryBuilder) SetTimestamp(v float64) *LogEntryBuilder {
	b.mark(logTimestampSet)
	b.result.timestamp = v
	return b
}

func (b *LogEntryBuilder) SetURL(v string) *LogEntryBuilder {
	if b.result == nil {
		panic("protocol: LogEntry already built")
	}
	b.result.url = Just(v)
	return b
}

func (b *LogEntryBuilder) SetLineNumber(v int) *LogEntryBuilder {
	if b.result == nil {
		panic("protocol: LogEntry already built")
	}
	b.result.lineNumber = Just(v)
	return b
}

func (b *LogEntryBuilder) SetStackTrace(v *StackTrace) *LogEntryBuilder {
	if b.result == nil {
		panic("protocol: LogEntry already built")
	}
	b.result.stackTrace = Just(v)
	return b
}

func (b *LogEntryBuilder) SetNetworkRequestID(v string) *LogEntryBuilder {
	if b.result == nil {
		panic("protocol: LogEntry already built")
	}
	b.result.networkRequestID = Just(v)
	return b
}

func (b *LogEntryBuilder) SetWorkerID(v string) *LogEntryBuilder {
	if b.result == nil {
		panic("protocol: LogEntry already built")
	}
	b.result.workerID = Just(v)
	return b
}

func (b *LogEntryBuilder) SetArgs(v json.RawMessage) *LogEntryBuilder {
	if b.result == nil {
		panic("protocol: LogEntry already built")
	}
	b.result.args = Just(v)
	return b
}

func (b *LogEntryBuilder) Build() *LogEntry {
	if b.result == nil {
		panic("protocol: LogEntry already built")
	}
	if b.state != allLogEntryFieldsSet {
		for _, f := range logEntryFieldNames {
			if b.state&f.bit == 0 {
				panic("protocol: required field " + f.name + " not set")
			}
		}
	}
	result := b.result
	b.result = nil
	return result
}
