package mqtt

import (
	"fmt"
	"sync"

	coremqtt "github.com/sanjithdevineni/AoA-Project-1/core/mqtt"
)

// Client mirrors the core mqtt.Client interface.
type Client = coremqtt.Client

// MockClient is a simple in-memory client used in tests.
type MockClient struct {
	FailTopics map[string]bool

	mu        sync.Mutex
	published map[string][][]byte
	handlers  map[string]coremqtt.HandlerFunc
	closed    bool
}

// NewMockClient creates a new MockClient.
func NewMockClient() *MockClient {
	return &MockClient{
		FailTopics: make(map[string]bool),
		published:  make(map[string][][]byte),
		handlers:   make(map[string]coremqtt.HandlerFunc),
	}
}

// Subscribe records the handler for topic.
func (m *MockClient) Subscribe(topic string, _ byte, handler coremqtt.HandlerFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[topic] = handler
	return nil
}

// Publish records the message or returns an error when the topic is marked
// as failing.
func (m *MockClient) Publish(topic string, _ byte, _ bool, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailTopics[topic] {
		return fmt.Errorf("publish failed")
	}
	m.published[topic] = append(m.published[topic], append([]byte(nil), payload...))
	return nil
}

// Close marks the client as closed.
func (m *MockClient) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

// Closed reports whether Close was called.
func (m *MockClient) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Subscribed reports whether a handler is registered for topic.
func (m *MockClient) Subscribed(topic string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handlers[topic] != nil
}

// Deliver invokes the subscribed handler as the broker would.
func (m *MockClient) Deliver(topic string, payload []byte) {
	m.mu.Lock()
	h := m.handlers[topic]
	m.mu.Unlock()
	if h != nil {
		h(topic, payload)
	}
}

// Messages returns a copy of the payloads published on topic.
func (m *MockClient) Messages(topic string) [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.published[topic]))
	copy(out, m.published[topic])
	return out
}
