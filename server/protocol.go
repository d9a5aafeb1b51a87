package main

import (
	"encoding/json"

	"arcade/audio"
)

// Client -> Server message types
const (
	MsgPlay  = "play"  // start a cabinet
	MsgKey   = "key"   // key transition
	MsgLeave = "leave" // tear the cabinet down
)

// Server -> Client message types
const (
	MsgWelcome = "welcome"
	MsgLeft    = "left"
	MsgError   = "error"
)

// Binary key messages: 3 bytes [0x01, keyIndex, flags]
const (
	binaryKeyTag  = 0x01
	binaryKeyLen  = 3
	keyFlagDown   = 0x01
	binaryMarker  = 0xFF // send-queue prefix for binary frames
	maxKeyCodeLen = 32
)

// binaryKeys maps a binary keyIndex to its KeyboardEvent.code
var binaryKeys = []string{
	"ArrowLeft",
	"ArrowRight",
	"ArrowUp",
	"ArrowDown",
	"Space",
	"ShiftLeft",
	"ShiftRight",
	"KeyR",
}

// Envelope wraps all outgoing messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages; json.RawMessage avoids double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// PlayMsg asks for a fresh cabinet
type PlayMsg struct {
	Game string `json:"game"`
}

// KeyMsg forwards one key transition
type KeyMsg struct {
	Code string `json:"code"`
	Down bool   `json:"down"`
}

// WelcomeMsg confirms a started cabinet and its field size
type WelcomeMsg struct {
	SID  string  `json:"sid"`
	Game string  `json:"game"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

// ErrorMsg sends error to client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// FrameMsg is the binary (msgpack) frame broadcast. Frame is the cabinet's
// own snapshot type; Sfx carries the sound cues raised since the last frame.
type FrameMsg struct {
	Game  string      `msgpack:"g"`
	Tick  uint64      `msgpack:"t"`
	Frame interface{} `msgpack:"f"`
	Sfx   []audio.Cue `msgpack:"sfx,omitempty"`
}

// decodeBinaryKey unpacks a compact key message
func decodeBinaryKey(msg []byte) (KeyMsg, bool) {
	if len(msg) != binaryKeyLen || msg[0] != binaryKeyTag {
		return KeyMsg{}, false
	}
	idx := int(msg[1])
	if idx >= len(binaryKeys) {
		return KeyMsg{}, false
	}
	return KeyMsg{Code: binaryKeys[idx], Down: msg[2]&keyFlagDown != 0}, true
}
