package mqtt

// HandlerFunc processes an inbound message delivered on a topic.
type HandlerFunc func(topic string, payload []byte)

// Client represents an MQTT client able to serve planning traffic: it
// subscribes to request topics and publishes results back.
type Client interface {
	// Subscribe registers handler for every message arriving on topic.
	Subscribe(topic string, qos byte, handler HandlerFunc) error

	// Publish sends payload on topic and waits for broker confirmation.
	Publish(topic string, qos byte, retained bool, payload []byte) error

	// Close disconnects from the broker, allowing in-flight messages to
	// complete.
	Close()
}
