package server

import (
	"encoding/json"
	"time"
)

// MessageType identifies the kind of message on the wire
type MessageType string

const (
	// Client → Server
	MessageTypeEvaluate MessageType = "evaluate"
	MessageTypeOdds     MessageType = "odds"
	MessageTypeAdvise   MessageType = "advise"

	// Server → Client
	MessageTypeResult MessageType = "result"
	MessageTypeError  MessageType = "error"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server payloads

// EvaluateData asks for the best 5-card hand from 5-7 cards
type EvaluateData struct {
	Cards string `json:"cards"` // e.g. "AhKd7s7c2dTh9h"
}

// OddsData asks for multiway win/tie percentages
type OddsData struct {
	Hands  []string `json:"hands"` // 2 or 3 hands, e.g. ["AhKd", "7s7c"]
	Board  string   `json:"board,omitempty"`
	Trials int      `json:"trials,omitempty"`
}

// AdviseData asks for an action recommendation
type AdviseData struct {
	Hole  string `json:"hole"`
	Board string `json:"board,omitempty"`
}

// Server → Client payloads

// EvaluateResultData is the response to an evaluate request
type EvaluateResultData struct {
	Best     []string `json:"best"`
	Category string   `json:"category"`
}

// OddsResultData is the response to an odds request
type OddsResultData struct {
	WinPct []float64 `json:"winPct"`
	TiePct float64   `json:"tiePct"`
	Trials int       `json:"trials"`
}

// AdviseResultData is the response to an advise request
type AdviseResultData struct {
	Action     string  `json:"action"`
	Confidence int     `json:"confidence"`
	Rationale  string  `json:"rationale"`
	Strength   float64 `json:"strength"`
}

// ErrorData reports a rejected request
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
