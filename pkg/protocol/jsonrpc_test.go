package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest([]byte(`{"id":7,"method":"Page.reload","params":{"ignoreCache":true}}`))
	require.NoError(t, err)

	if req.ID != 7 {
		t.Errorf("Expected ID to be 7, got %d", req.ID)
	}
	if req.Method != "Page.reload" {
		t.Errorf("Expected Method to be 'Page.reload', got %q", req.Method)
	}

	var params map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Params, &params))
	assert.Equal(t, true, params["ignoreCache"])
}

func TestParseRequestMalformed(t *testing.T) {
	_, err := ParseRequest([]byte(`{not json`))
	assert.Error(t, err)

	_, err = ParseRequest([]byte(`{"id":1}`))
	assert.Error(t, err, "a command without a method must be rejected")
}

func TestNewResponse(t *testing.T) {
	resp, err := NewResponse(3, nil)
	require.NoError(t, err)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"result":{}}`, string(data))
}

func TestNewResponseWithResult(t *testing.T) {
	resp, err := NewResponse(4, map[string]string{"frameId": "frame-1"})
	require.NoError(t, err)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4,"result":{"frameId":"frame-1"}}`, string(data))
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(9, MethodNotFound, "method not found")

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9,"error":{"code":-32601,"message":"method not found"}}`, string(data))
}

func TestNewEvent(t *testing.T) {
	ev, err := NewEvent("Log.entryAdded", map[string]string{"k": "v"})
	require.NoError(t, err)

	data, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.JSONEq(t, `{"method":"Log.entryAdded","params":{"k":"v"}}`, string(data))
}

func TestEnvelopeClassification(t *testing.T) {
	command := []byte(`{"id":1,"method":"Page.enable","params":{}}`)
	event := []byte(`{"method":"Log.entryAdded","params":{}}`)

	assert.True(t, IsCommand(command))
	assert.False(t, IsEvent(command))
	assert.True(t, IsEvent(event))
	assert.False(t, IsCommand(event))
	assert.False(t, IsCommand([]byte(`not json`)))
}
