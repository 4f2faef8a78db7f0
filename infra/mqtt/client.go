package mqtt

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	coremqtt "github.com/sanjithdevineni/AoA-Project-1/core/mqtt"
	"github.com/sanjithdevineni/AoA-Project-1/infra/logger"
)

// Config defines the connection parameters for the Paho MQTT client.
type Config struct {
	Broker           string          `json:"broker"`
	ClientID         string          `json:"client_id"`
	Username         string          `json:"username"`
	Password         string          `json:"password"`
	RequestTopic     string          `json:"request_topic"`
	ResponseTopic    string          `json:"response_topic"`
	UseTLS           bool            `json:"use_tls"`
	ClientCert       string          `json:"client_cert"`
	ClientKey        string          `json:"client_key"`
	CABundle         string          `json:"ca_bundle"`
	AuthMethod       string          `json:"auth_method"`
	QoS              map[string]byte `json:"qos"`
	LWTTopic         string          `json:"lwt_topic"`
	LWTPayload       string          `json:"lwt_payload"`
	LWTQoS           byte            `json:"lwt_qos"`
	LWTRetain        bool            `json:"lwt_retain"`
	MaxRetries       int             `json:"max_retries"`
	BackoffMS        int             `json:"backoff_ms"`
	PublishTimeoutMS int             `json:"publish_timeout_ms"`
	TLSConfig        *tls.Config     `json:"-"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = fmt.Sprintf("evplan-%s", uuid.NewString()[:8])
	}
	if c.RequestTopic == "" {
		c.RequestTopic = "evplan/plan/request"
	}
	if c.ResponseTopic == "" {
		c.ResponseTopic = "evplan/plan/response"
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.BackoffMS <= 0 {
		c.BackoffMS = 100
	}
	if c.PublishTimeoutMS <= 0 {
		c.PublishTimeoutMS = 5000
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Broker == "" {
		return fmt.Errorf("broker is required")
	}
	return nil
}

// TopicQoS returns the configured QoS for the named topic role, or 0.
func (c Config) TopicQoS(name string) byte {
	if q, ok := c.QoS[name]; ok {
		return q
	}
	return 0
}

type subscription struct {
	qos     byte
	handler coremqtt.HandlerFunc
}

// pahoClient is the subset of the Paho API the wrapper needs, kept narrow so
// tests can stub it.
type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
}

// PahoClient implements the core client interface using Eclipse Paho.
type PahoClient struct {
	cli    pahoClient
	logger logger.Logger

	mu         sync.Mutex
	subs       map[string]subscription
	maxRetries int
	backoff    time.Duration
	pubTimeout time.Duration
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// NewPahoClient connects to the MQTT broker. Subscriptions made through the
// returned client are replayed on every reconnect.
func NewPahoClient(cfg Config) (*PahoClient, error) {
	opts, err := NewClientOptions(cfg)
	if err != nil {
		return nil, err
	}

	log := logger.New("mqtt_client")
	pc := &PahoClient{
		logger:     log,
		subs:       make(map[string]subscription),
		maxRetries: cfg.MaxRetries,
		backoff:    time.Duration(cfg.BackoffMS) * time.Millisecond,
		pubTimeout: time.Duration(cfg.PublishTimeoutMS) * time.Millisecond,
	}
	if pc.maxRetries <= 0 {
		pc.maxRetries = 3
	}
	if pc.backoff <= 0 {
		pc.backoff = 100 * time.Millisecond
	}
	if pc.pubTimeout <= 0 {
		pc.pubTimeout = 5 * time.Second
	}

	opts.OnConnect = func(c paho.Client) {
		log.Infof("MQTT connected")
		pc.mu.Lock()
		subs := make(map[string]subscription, len(pc.subs))
		for topic, sub := range pc.subs {
			subs[topic] = sub
		}
		pc.mu.Unlock()
		for topic, sub := range subs {
			if token := c.Subscribe(topic, sub.qos, wrapHandler(sub.handler)); token.Wait() && token.Error() != nil {
				log.Errorf("subscribe %s error: %v", topic, token.Error())
			}
		}
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}
	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	pc.cli = c
	return pc, nil
}

// NewClientOptions builds mqtt client options from Config.
func NewClientOptions(cfg Config) (*paho.ClientOptions, error) {
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.AuthMethod == "username_password" || cfg.AuthMethod == "both" || cfg.AuthMethod == "" {
		if cfg.Username != "" {
			opts.SetUsername(cfg.Username)
		}
		if cfg.Password != "" {
			opts.SetPassword(cfg.Password)
		}
	}
	if cfg.UseTLS {
		tlsCfg, err := cfg.LoadTLSConfig()
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsCfg)
	}
	if cfg.LWTTopic != "" {
		opts.SetWill(cfg.LWTTopic, cfg.LWTPayload, cfg.LWTQoS, cfg.LWTRetain)
	}
	return opts, nil
}

// LoadTLSConfig loads the TLS configuration from the file paths in the config.
func (c Config) LoadTLSConfig() (*tls.Config, error) {
	if c.TLSConfig != nil {
		return c.TLSConfig, nil
	}
	if c.ClientCert == "" || c.ClientKey == "" || c.CABundle == "" {
		return nil, fmt.Errorf("tls config requires client_cert, client_key and ca_bundle")
	}
	cert, err := tls.LoadX509KeyPair(c.ClientCert, c.ClientKey)
	if err != nil {
		return nil, fmt.Errorf("load cert: %w", err)
	}
	caBytes, err := os.ReadFile(c.CABundle)
	if err != nil {
		return nil, fmt.Errorf("read ca: %w", err)
	}
	pool := x509.NewCertPool()
	pool.AppendCertsFromPEM(caBytes)
	cfg := &tls.Config{Certificates: []tls.Certificate{cert}, RootCAs: pool, MinVersion: tls.VersionTLS12}
	return cfg, nil
}

func wrapHandler(h coremqtt.HandlerFunc) paho.MessageHandler {
	return func(_ paho.Client, msg paho.Message) {
		h(msg.Topic(), msg.Payload())
	}
}

// Subscribe registers handler for topic and keeps the subscription alive
// across reconnects.
func (p *PahoClient) Subscribe(topic string, qos byte, handler coremqtt.HandlerFunc) error {
	p.mu.Lock()
	p.subs[topic] = subscription{qos: qos, handler: handler}
	p.mu.Unlock()
	token := p.cli.Subscribe(topic, qos, wrapHandler(handler))
	if token.Wait() && token.Error() != nil {
		return token.Error()
	}
	p.logger.Infof("subscribed to %s", topic)
	return nil
}

// Publish sends payload on topic, retrying with exponential backoff.
func (p *PahoClient) Publish(topic string, qos byte, retained bool, payload []byte) error {
	var publishErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		token := p.cli.Publish(topic, qos, retained, payload)
		if !token.WaitTimeout(p.pubTimeout) {
			publishErr = coremqtt.ErrPublishTimeout
		} else {
			publishErr = token.Error()
		}
		if publishErr == nil {
			return nil
		}
		p.logger.Errorf("publish attempt %d failed: %v", attempt+1, publishErr)
		time.Sleep(p.backoff * time.Duration(1<<attempt))
	}
	return publishErr
}

// Close gracefully closes the MQTT connection.
func (p *PahoClient) Close() {
	if p.cli != nil && p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
}
