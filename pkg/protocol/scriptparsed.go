package protocol

import "encoding/json"

// ScriptParsedNotification carries the Debugger.scriptParsed event: metadata
// for one script the engine has compiled. Values are immutable after Build.
type ScriptParsedNotification struct {
	scriptID           string
	url                string
	startLine          int
	startColumn        int
	endLine            int
	endColumn          int
	executionContextID int
	hash               string

	executionContextAuxData Maybe[json.RawMessage]
	isLiveEdit              Maybe[bool]
	sourceMapURL            Maybe[string]
	hasSourceURL            Maybe[bool]
	isModule                Maybe[bool]
	length                  Maybe[int]
	stackTrace              Maybe[*StackTrace]
}

func (n *ScriptParsedNotification) ScriptID() string        { return n.scriptID }
func (n *ScriptParsedNotification) URL() string             { return n.url }
func (n *ScriptParsedNotification) StartLine() int          { return n.startLine }
func (n *ScriptParsedNotification) StartColumn() int        { return n.startColumn }
func (n *ScriptParsedNotification) EndLine() int            { return n.endLine }
func (n *ScriptParsedNotification) EndColumn() int          { return n.endColumn }
func (n *ScriptParsedNotification) ExecutionContextID() int { return n.executionContextID }
func (n *ScriptParsedNotification) Hash() string            { return n.hash }

func (n *ScriptParsedNotification) HasExecutionContextAuxData() bool {
	return n.executionContextAuxData.IsJust()
}

func (n *ScriptParsedNotification) ExecutionContextAuxData(def json.RawMessage) json.RawMessage {
	return n.executionContextAuxData.FromMaybe(def)
}

func (n *ScriptParsedNotification) HasIsLiveEdit() bool { return n.isLiveEdit.IsJust() }

func (n *ScriptParsedNotification) IsLiveEdit(def bool) bool { return n.isLiveEdit.FromMaybe(def) }

func (n *ScriptParsedNotification) HasSourceMapURL() bool { return n.sourceMapURL.IsJust() }

func (n *ScriptParsedNotification) SourceMapURL(def string) string {
	return n.sourceMapURL.FromMaybe(def)
}

func (n *ScriptParsedNotification) HasHasSourceURL() bool { return n.hasSourceURL.IsJust() }

func (n *ScriptParsedNotification) HasSourceURL(def bool) bool { return n.hasSourceURL.FromMaybe(def) }

func (n *ScriptParsedNotification) HasIsModule() bool { return n.isModule.IsJust() }

func (n *ScriptParsedNotification) IsModule(def bool) bool { return n.isModule.FromMaybe(def) }

func (n *ScriptParsedNotification) HasLength() bool { return n.length.IsJust() }

func (n *ScriptParsedNotification) Length(def int) int { return n.length.FromMaybe(def) }

func (n *ScriptParsedNotification) HasStackTrace() bool { return n.stackTrace.IsJust() }

func (n *ScriptParsedNotification) StackTrace(def *StackTrace) *StackTrace {
	return n.stackTrace.FromMaybe(def)
}

// scriptParsedWire is the JSON shape of the notification params.
type scriptParsedWire struct {
	ScriptID                string          `json:"scriptId"`
	URL                     string          `json:"url"`
	StartLine               int             `json:"startLine"`
	StartColumn             int             `json:"startColumn"`
	EndLine                 int             `json:"endLine"`
	EndColumn               int             `json:"endColumn"`
	ExecutionContextID      int             `json:"executionContextId"`
	Hash                    string          `json:"hash"`
	ExecutionContextAuxData json.RawMessage `json:"executionContextAuxData,omitempty"`
	IsLiveEdit              *bool           `json:"isLiveEdit,omitempty"`
	SourceMapURL            *string         `json:"sourceMapURL,omitempty"`
	HasSourceURL            *bool           `json:"hasSourceURL,omitempty"`
	IsModule                *bool           `json:"isModule,omitempty"`
	Length                  *int            `json:"length,omitempty"`
	StackTrace              *StackTrace     `json:"stackTrace,omitempty"`
}

// MarshalJSON serializes the notification params for the wire.
func (n *ScriptParsedNotification) MarshalJSON() ([]byte, error) {
	wire := scriptParsedWire{
		ScriptID:           n.scriptID,
		URL:                n.url,
		StartLine:          n.startLine,
		StartColumn:        n.startColumn,
		EndLine:            n.endLine,
		EndColumn:          n.endColumn,
		ExecutionContextID: n.executionContextID,
		Hash:               n.hash,
	}
	if n.executionContextAuxData.IsJust() {
		wire.ExecutionContextAuxData = n.executionContextAuxData.FromJust()
	}
	if n.isLiveEdit.IsJust() {
		v := n.isLiveEdit.FromJust()
		wire.IsLiveEdit = &v
	}
	if n.sourceMapURL.IsJust() {
		v := n.sourceMapURL.FromJust()
		wire.SourceMapURL = &v
	}
	if n.hasSourceURL.IsJust() {
		v := n.hasSourceURL.FromJust()
		wire.HasSourceURL = &v
	}
	if n.isModule.IsJust() {
		v := n.isModule.FromJust()
		wire.IsModule = &v
	}
	if n.length.IsJust() {
		v := n.length.FromJust()
		wire.Length = &v
	}
	if n.stackTrace.IsJust() {
		wire.StackTrace = n.stackTrace.FromJust()
	}
	return json.Marshal(wire)
}

// ScriptParsedNotificationFromJSON decodes notification params, recording
// field-level problems in errs. Returns nil when any required field is
// missing or malformed.
func ScriptParsedNotificationFromJSON(data json.RawMessage, errs *ErrorSupport) *ScriptParsedNotification {
	errs.Push("scriptParsed")
	defer errs.Pop()

	var wire scriptParsedWire
	if err := json.Unmarshal(data, &wire); err != nil {
		errs.AddError("malformed params: " + err.Error())
		return nil
	}
	var fields struct {
		ScriptID           *string `json:"scriptId"`
		URL                *string `json:"url"`
		Hash               *string `json:"hash"`
		StartLine          *int    `json:"startLine"`
		StartColumn        *int    `json:"startColumn"`
		EndLine            *int    `json:"endLine"`
		EndColumn          *int    `json:"endColumn"`
		ExecutionContextID *int    `json:"executionContextId"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		errs.AddError("malformed params: " + err.Error())
		return nil
	}
	required := []struct {
		name    string
		present bool
	}{
		{"scriptId", fields.ScriptID != nil},
		{"url", fields.URL != nil},
		{"startLine", fields.StartLine != nil},
		{"startColumn", fields.StartColumn != nil},
		{"endLine", fields.EndLine != nil},
		{"endColumn", fields.EndColumn != nil},
		{"executionContextId", fields.ExecutionContextID != nil},
		{"hash", fields.Hash != nil},
	}
	for _, f := range required {
		if !f.present {
			errs.Push(f.name)
			errs.AddError("required field missing")
			errs.Pop()
		}
	}
	if errs.HasErrors() {
		return nil
	}

	b := NewScriptParsedNotificationBuilder().
		SetScriptID(wire.ScriptID).
		SetURL(wire.URL).
		SetStartLine(wire.StartLine).
		SetStartColumn(wire.StartColumn).
		SetEndLine(wire.EndLine).
		SetEndColumn(wire.EndColumn).
		SetExecutionContextID(wire.ExecutionContextID).
		SetHash(wire.Hash)
	if wire.ExecutionContextAuxData != nil {
		b.SetExecutionContextAuxData(wire.ExecutionContextAuxData)
	}
	if wire.IsLiveEdit != nil {
		b.SetIsLiveEdit(*wire.IsLiveEdit)
	}
	if wire.SourceMapURL != nil {
		b.SetSourceMapURL(*wire.SourceMapURL)
	}
	if wire.HasSourceURL != nil {
		b.SetHasSourceURL(*wire.HasSourceURL)
	}
	if wire.IsModule != nil {
		b.SetIsModule(*wire.IsModule)
	}
	if wire.Length != nil {
		b.SetLength(*wire.Length)
	}
	if wire.StackTrace != nil {
		b.SetStackTrace(wire.StackTrace)
	}
	return b.Build()
}

// Required-field construction state for ScriptParsedNotificationBuilder.
const (
	scriptIDSet uint16 = 1 << iota
	urlSet
	startLineSet
	startColumnSet
	endLineSet
	endColumnSet
	executionContextIDSet
	hashSet

	allScriptParsedFieldsSet = scriptIDSet | urlSet | startLineSet | startColumnSet |
		endLineSet | endColumnSet | executionContextIDSet | hashSet
)

// fieldName ties a required-field bit to its wire name. Slices of these are
// kept in wire order so diagnostics name fields deterministically.
type fieldName struct {
	bit  uint16
	name string
}

func lookupFieldName(names []fieldName, bit uint16) string {
	for _, f := range names {
		if f.bit == bit {
			return f.name
		}
	}
	return "unknown"
}

var scriptParsedFieldNames = []fieldName{
	{scriptIDSet, "scriptId"},
	{urlSet, "url"},
	{startLineSet, "startLine"},
	{startColumnSet, "startColumn"},
	{endLineSet, "endLine"},
	{endColumnSet, "endColumn"},
	{executionContextIDSet, "executionContextId"},
	{hashSet, "hash"},
}

// ScriptParsedNotificationBuilder accumulates the fields of one notification.
// Each required setter may be called exactly once and Build may only be
// called after every required setter; violations are programming defects and
// panic immediately rather than letting an incomplete message escape.
type ScriptParsedNotificationBuilder struct {
	result *ScriptParsedNotification
	state  uint16
}

// NewScriptParsedNotificationBuilder starts construction with no fields set.
// Integer fields hold 0 only in this initial state.
func NewScriptParsedNotificationBuilder() *ScriptParsedNotificationBuilder {
	return &ScriptParsedNotificationBuilder{result: &ScriptParsedNotification{}}
}

func (b *ScriptParsedNotificationBuilder) mark(bit uint16) {
	if b.result == nil {
		panic("protocol: ScriptParsedNotification already built")
	}
	if b.state&bit != 0 {
		panic("protocol: field " + lookupFieldName(scriptParsedFieldNames, bit) + " already set")
	}
	b.state |= bit
}

func (b *ScriptParsedNotificationBuilder) SetScriptID(v string) *ScriptParsedNotificationBuilder {
	b.mark(scriptIDSet)
	b.result.scriptID = v
	return b
}

func (b *ScriptParsedNotificationBuilder) SetURL(v string) *ScriptParsedNotificationBuilder {
	b.mark(urlSet)
	b.result.url = v
	return b
}

func (b *ScriptParsedNotificationBuilder) SetStartLine(v int) *ScriptParsedNotificationBuilder {
	b.mark(startLineSet)
	b.result.startLine = v
	return b
}

func (b *ScriptParsedNotificationBuilder) SetStartColumn(v int) *ScriptParsedNotificationBuilder {
	b.mark(startColumnSet)
	b.result.startColumn = v
	return b
}

func (b *ScriptParsedNotificationBuilder) SetEndLine(v int) *ScriptParsedNotificationBuilder {
	b.mark(endLineSet)
	b.result.endLine = v
	return b
}

func (b *ScriptParsedNotificationBuilder) SetEndColumn(v int) *ScriptParsedNotificationBuilder {
	b.mark(endColumnSet)
	b.result.endColumn = v
	return b
}

func (b *ScriptParsedNotificationBuilder) SetExecutionContextID(v int) *ScriptParsedNotificationBuilder {
	b.mark(executionContextIDSet)
	b.result.executionContextID = v
	return b
}

func (b *ScriptParsedNotificationBuilder) SetHash(v string) *ScriptParsedNotificationBuilder {
	b.mark(hashSet)
	b.result.hash = v
	return b
}

func (b *ScriptParsedNotificationBuilder) SetExecutionContextAuxData(v json.RawMessage) *ScriptParsedNotificationBuilder {
	if b.result == nil {
		panic("protocol: ScriptParsedNotification already built")
	}
	b.result.executionContextAuxData = Just(v)
	return b
}

func (b *ScriptParsedNotificationBuilder) SetIsLiveEdit(v bool) *ScriptParsedNotificationBuilder {
	if b.result == nil {
		panic("protocol: ScriptParsedNotification already built")
	}
	b.result.isLiveEdit = Just(v)
	return b
}

func (b *ScriptParsedNotificationBuilder) SetSourceMapURL(v string) *ScriptParsedNotificationBuilder {
	if b.result == nil {
		panic("protocol: ScriptParsedNotification already built")
	}
	b.result.sourceMapURL = Just(v)
	return b
}

func (b *ScriptParsedNotificationBuilder) SetHasSourceURL(v bool) *ScriptParsedNotificationBuilder {
	if b.result == nil {
		panic("protocol: ScriptParsedNotification already built")
	}
	b.result.hasSourceURL = Just(v)
	return b
}

func (b *ScriptParsedNotificationBuilder) SetIsModule(v bool) *ScriptParsedNotificationBuilder {
	if b.result == nil {
		panic("protocol: ScriptParsedNotification already built")
	}
	b.result.isModule = Just(v)
	return b
}

func (b *ScriptParsedNotificationBuilder) SetLength(v int) *ScriptParsedNotificationBuilder {
	if b.result == nil {
		panic("protocol: ScriptParsedNotification already built")
	}
	b.result.length = Just(v)
	return b
}

func (b *ScriptParsedNotificationBuilder) SetStackTrace(v *StackTrace) *ScriptParsedNotificationBuilder {
	if b.result == nil {
		panic("protocol: ScriptParsedNotification already built")
	}
	b.result.stackTrace = Just(v)
	return b
}

// Build finalizes the notification. It succeeds exactly once per builder.
func (b *ScriptParsedNotificationBuilder) Build() *ScriptParsedNotification {
	if b.result == nil {
		panic("protocol: ScriptParsedNotification already built")
	}
	if b.state != allScriptParsedFieldsSet {
		for _, f := range scriptParsedFieldNames {
			if b.state&f.bit == 0 {
				panic("protocol: required field " + f.name + " not set")
			}
		}
	}
	result := b.result
	b.result = nil
	return result
}
