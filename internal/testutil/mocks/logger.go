package mocks

import "github.com/voltzpay/pix-dashboard/internal/domain/ports"

// MockLogger captures log calls per level so tests can assert on what the
// engine reported without standing up a real logger
type MockLogger struct {
	InfoCalls  []LogCall
	ErrorCalls []LogCall
	WarnCalls  []LogCall
	DebugCalls []LogCall
}

// LogCall is one captured message with its fields
type LogCall struct {
	Message string
	Fields  []ports.Field
}

// NewMockLogger creates an empty mock logger
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) Info(msg string, fields ...ports.Field) {
	m.InfoCalls = append(m.InfoCalls, LogCall{Message: msg, Fields: fields})
}

func (m *MockLogger) Error(msg string, fields ...ports.Field) {
	m.ErrorCalls = append(m.ErrorCalls, LogCall{Message: msg, Fields: fields})
}

func (m *MockLogger) Warn(msg string, fields ...ports.Field) {
	m.WarnCalls = append(m.WarnCalls, LogCall{Message: msg, Fields: fields})
}

func (m *MockLogger) Debug(msg string, fields ...ports.Field) {
	m.DebugCalls = append(m.DebugCalls, LogCall{Message: msg, Fields: fields})
}

// Reset drops every captured call, for tests that assert on phases
func (m *MockLogger) Reset() {
	m.InfoCalls = nil
	m.ErrorCalls = nil
	m.WarnCalls = nil
	m.DebugCalls = nil
}

// ErrorMessages returns just the messages of the captured error calls
func (m *MockLogger) ErrorMessages() []string {
	msgs := make([]string, 0, len(m.ErrorCalls))
	for _, call := range m.ErrorCalls {
		msgs = append(msgs, call.Message)
	}
	return msgs
}
