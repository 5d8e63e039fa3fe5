package protocol

import "encoding/json"

// CallFrame identifies one frame of a JavaScript stack trace. Immutable
// after Build.
type CallFrame struct {
	functionName string
	scriptID     string
	url          string
	lineNumber   int
	columnNumber int
}

func (f *CallFrame) FunctionName() string { return f.functionName }
func (f *CallFrame) ScriptID() string     { return f.scriptID }
func (f *CallFrame) URL() string          { return f.url }
func (f *CallFrame) LineNumber() int      { return f.lineNumber }
func (f *CallFrame) ColumnNumber() int    { return f.columnNumber }

type callFrameWire struct {
	FunctionName string `json:"functionName"`
	ScriptID     string `json:"scriptId"`
	URL          string `json:"url"`
	LineNumber   int    `json:"lineNumber"`
	ColumnNumber int    `json:"columnNumber"`
}

func (f *CallFrame) MarshalJSON() ([]byte, error) {
	return json.Marshal(callFrameWire{
		FunctionName: f.functionName,
		ScriptID:     f.scriptID,
		URL:          f.url,
		LineNumber:   f.lineNumber,
		ColumnNumber: f.columnNumber,
	})
}

func (f *CallFrame) UnmarshalJSON(data []byte) error {
	var wire callFrameWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	f.functionName = wire.FunctionName
	f.scriptID = wire.ScriptID
	f.url = wire.URL
	f.lineNumber = wire.LineNumber
	f.columnNumber = wire.ColumnNumber
	return nil
}

// Required-field construction state for CallFrameBuilder.
const (
	functionNameSet uint16 = 1 << iota
	frameScriptIDSet
	frameURLSet
	lineNumberSet
	columnNumberSet

	allCallFrameFieldsSet = functionNameSet | frameScriptIDSet | frameURLSet |
		lineNumberSet | columnNumberSet
)

var callFrameFieldNames = []fieldName{
	{functionNameSet, "functionName"},
	{frameScriptIDSet, "scriptId"},
	{frameURLSet, "url"},
	{lineNumberSet, "lineNumber"},
	{columnNumberSet, "columnNumber"},
}

// CallFrameBuilder accumulates the fields of one call frame with the same
// construction discipline as the other protocol builders.
type CallFrameBuilder struct {
	result *CallFrame
	state  uint16
}

func NewCallFrameBuilder() *CallFrameBuilder {
	return &CallFrameBuilder{result: &CallFrame{}}
}

func (b *CallFrameBuilder) mark(bit uint16) {
	if b.result == nil {
		panic("protocol: CallFrame already built")
	}
	if b.state&bit != 0 {
		panic("protocol: field " + lookupFieldName(callFrameFieldNames, bit) + " already set")
	}
	b.state |= bit
}

func (b *CallFrameBuilder) SetFunctionName(v string) *CallFrameBuilder {
	b.mark(functionNameSet)
	b.result.functionName = v
	return b
}

func (b *CallFrameBuilder) SetScriptID(v string) *CallFrameBuilder {
	b.mark(frameScriptIDSet)
	b.result.scriptID = v
	return b
}

func (b *CallFrameBuilder) SetURL(v string) *CallFrameBuilder {
	b.mark(frameURLSet)
	b.result.url = v
	return b
}

func (b *CallFrameBuilder) SetLineNumber(v int) *CallFrameBuilder {
	b.mark(lineNumberSet)
	b.result.lineNumber = v
	return b
}

func (b *CallFrameBuilder) SetColumnNumber(v int) *CallFrameBuilder {
	b.mark(columnNumberSet)
	b.result.columnNumber = v
	return b
}

func (b *CallFrameBuilder) Build() *CallFrame {
	if b.result == nil {
		panic("protocol: CallFrame already built")
	}
	if b.state != allCallFrameFieldsSet {
		for _, f := range callFrameFieldNames {
			if b.state&f.bit == 0 {
				panic("protocol: required field " + f.name + " not set")
			}
		}
	}
	result := b.result
	b.result = nil
	return result
}

// StackTrace is an ordered chain of call frames, optionally describing where
// an asynchronous operation was scheduled via the parent trace.
type StackTrace struct {
	callFrames  []*CallFrame
	description Maybe[string]
	parent      Maybe[*StackTrace]
}

func (s *StackTrace) CallFrames() []*CallFrame { return s.callFrames }

func (s *StackTrace) HasDescription() bool { return s.description.IsJust() }

func (s *StackTrace) Description(def string) string { return s.description.FromMaybe(def) }

func (s *StackTrace) HasParent() bool { return s.parent.IsJust() }

func (s *StackTrace) Parent(def *StackTrace) *StackTrace { return s.parent.FromMaybe(def) }

type stackTraceWire struct {
	Description *string      `json:"description,omitempty"`
	CallFrames  []*CallFrame `json:"callFrames"`
	Parent      *StackTrace  `json:"parent,omitempty"`
}

func (s *StackTrace) MarshalJSON() ([]byte, error) {
	wire := stackTraceWire{CallFrames: s.callFrames}
	if wire.CallFrames == nil {
		wire.CallFrames = []*CallFrame{}
	}
	if s.description.IsJust() {
		v := s.description.FromJust()
		wire.Description = &v
	}
	if s.parent.IsJust() {
		wire.Parent = s.parent.FromJust()
	}
	return json.Marshal(wire)
}

func (s *StackTrace) UnmarshalJSON(data []byte) error {
	var wire stackTraceWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	s.callFrames = wire.CallFrames
	if wire.Description != nil {
		s.description = Just(*wire.Description)
	}
	if wire.Parent != nil {
		s.parent = Just(wire.Parent)
	}
	return nil
}

// StackTraceBuilder accumulates one stack trace. callFrames is the only
// required field.
type StackTraceBuilder struct {
	result        *StackTrace
	callFramesSet bool
}

func NewStackTraceBuilder() *StackTraceBuilder {
	return &StackTraceBuilder{result: &StackTrace{}}
}

func (b *StackTraceBuilder) SetCallFrames(frames []*CallFrame) *StackTraceBuilder {
	if b.result == nil {
		panic("protocol: StackTrace already built")
	}
	if b.callFramesSet {
		panic("protocol: field callFrames already set")
	}
	b.callFramesSet = true
	b.result.callFrames = frames
	return b
}

func (b *StackTraceBuilder) SetDescription(v string) *StackTraceBuilder {
	if b.result == nil {
		panic("protocol: StackTrace already built")
	}
	b.result.description = Just(v)
	return b
}

func (b *StackTraceBuilder) SetParent(v *StackTrace) *StackTraceBuilder {
	if b.result == nil {
		panic("protocol: StackTrace already built")
	}
	b.result.parent = Just(v)
	return b
}

func (b *StackTraceBuilder) Build() *StackTrace {
	if b.result == nil {
		panic("protocol: StackTrace already built")
	}
	if !b.callFramesSet {
		panic("protocol: required field callFrames not set")
	}
	result := b.result
	b.result = nil
	return result
}
