// Package app wires the planning service together: MQTT transport, metrics
// sinks and the plan audit log.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sanjithdevineni/AoA-Project-1/config"
	coremetrics "github.com/sanjithdevineni/AoA-Project-1/core/metrics"
	coremqtt "github.com/sanjithdevineni/AoA-Project-1/core/mqtt"
	"github.com/sanjithdevineni/AoA-Project-1/core/planlog"
	"github.com/sanjithdevineni/AoA-Project-1/core/planner"
	"github.com/sanjithdevineni/AoA-Project-1/infra/logger"
	"github.com/sanjithdevineni/AoA-Project-1/infra/metrics"
	"github.com/sanjithdevineni/AoA-Project-1/infra/mqtt"
	"github.com/sanjithdevineni/AoA-Project-1/pkg/export"
)

// Service answers planning requests received over MQTT and records every
// decision to the metrics sinks and the audit log.
type Service struct {
	client      coremqtt.Client
	sink        coremetrics.MetricsSink
	store       planlog.Store
	log         logger.Logger
	cfg         *config.Config
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	if err := cfg.MQTT.Validate(); err != nil {
		return nil, fmt.Errorf("mqtt config: %w", err)
	}
	client, err := mqtt.NewPahoClient(cfg.MQTT)
	if err != nil {
		return nil, fmt.Errorf("mqtt client: %w", err)
	}
	return newService(cfg, client, logger.New("service"))
}

func newService(cfg *config.Config, client coremqtt.Client, logg logger.Logger) (*Service, error) {
	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.MetricsSink
	switch len(sinks) {
	case 0:
		sink = coremetrics.NopSink{}
	case 1:
		sink = sinks[0]
	default:
		sink = metrics.NewMultiSink(sinks...)
	}

	store, err := planlog.Open(cfg.Logging.Backend, cfg.Logging.Path)
	if err != nil {
		return nil, fmt.Errorf("plan log: %w", err)
	}

	return &Service{
		client:      client,
		sink:        sink,
		store:       store,
		log:         logg,
		cfg:         cfg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Run subscribes to the request topic and blocks until the context is
// cancelled.
func (s *Service) Run(ctx context.Context) error {
	qos := s.cfg.MQTT.TopicQoS("request")
	if err := s.client.Subscribe(s.cfg.MQTT.RequestTopic, qos, s.handleRequest); err != nil {
		return fmt.Errorf("subscribe %s: %w", s.cfg.MQTT.RequestTopic, err)
	}
	s.log.Infof("listening on %s", s.cfg.MQTT.RequestTopic)
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	<-ctx.Done()
	return nil
}

func (s *Service) handleRequest(_ string, payload []byte) {
	res := s.Plan(context.Background(), "mqtt", payload)
	body, err := json.Marshal(res)
	if err != nil {
		s.log.Errorf("encode response: %v", err)
		return
	}
	qos := s.cfg.MQTT.TopicQoS("response")
	if err := s.client.Publish(s.cfg.MQTT.ResponseTopic, qos, false, body); err != nil {
		s.log.Errorf("publish response %s: %v", res.RequestID, err)
	}
}

// Plan decodes a request, computes the charging plan and records the
// decision. Requests without an id are assigned one so responses stay
// correlatable.
func (s *Service) Plan(ctx context.Context, source string, payload []byte) export.Result {
	start := time.Now()
	var req export.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		s.log.Warnf("malformed request: %v", err)
		return export.Errorf("", fmt.Sprintf("decode request: %v", err))
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	rt, err := req.ToRoute()
	if err != nil {
		res := export.Errorf(req.RequestID, err.Error())
		s.record(ctx, source, req, res, time.Since(start))
		return res
	}
	plan := planner.MinStops(rt)
	res := export.FromPlan(req.RequestID, req.Destination, plan)
	s.record(ctx, source, req, res, time.Since(start))
	return res
}

func (s *Service) record(ctx context.Context, source string, req export.Request, res export.Result, d time.Duration) {
	ev := coremetrics.PlanEvent{
		RequestID:   res.RequestID,
		Source:      source,
		Destination: req.Destination,
		Capacity:    req.Capacity,
		Stations:    len(req.Stations),
		Feasible:    res.Feasible,
		Stops:       res.StopCount,
		Duration:    d,
		Time:        time.Now(),
	}
	if err := s.sink.RecordPlan(ev); err != nil {
		s.log.Errorf("record plan: %v", err)
	}
	rec := planlog.Record{Timestamp: time.Now(), Source: source, Request: req, Result: res}
	if err := s.store.Append(ctx, rec); err != nil {
		s.log.Errorf("append plan log: %v", err)
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.client.Close()
	return s.store.Close()
}
