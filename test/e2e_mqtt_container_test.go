package test

import (
	"context"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/sanjithdevineni/AoA-Project-1/app"
	"github.com/sanjithdevineni/AoA-Project-1/config"
	"github.com/sanjithdevineni/AoA-Project-1/pkg/export"
	"github.com/sanjithdevineni/AoA-Project-1/test/util"
)

func connectRequester(t *testing.T, broker, responseTopic string, responses chan<- []byte) paho.Client {
	t.Helper()
	opts := paho.NewClientOptions().AddBroker(broker).SetClientID("requester")
	cli := paho.NewClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		t.Fatalf("requester connect: %v", token.Error())
	}
	if token := cli.Subscribe(responseTopic, 1, func(_ paho.Client, m paho.Message) {
		responses <- m.Payload()
	}); token.Wait() && token.Error() != nil {
		t.Fatalf("requester subscribe: %v", token.Error())
	}
	return cli
}

// awaitResult republishes the request until a response with the wanted id
// arrives. The service may still be subscribing when the first request is
// sent.
func awaitResult(t *testing.T, cli paho.Client, topic string, payload []byte, responses <-chan []byte, wantID string) export.Result {
	t.Helper()
	deadline := time.After(10 * time.Second)
	resend := time.NewTicker(500 * time.Millisecond)
	defer resend.Stop()
	if token := cli.Publish(topic, 1, false, payload); token.Wait() && token.Error() != nil {
		t.Fatalf("publish request: %v", token.Error())
	}
	for {
		select {
		case body := <-responses:
			var res export.Result
			if err := json.Unmarshal(body, &res); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if res.RequestID == wantID {
				return res
			}
		case <-resend.C:
			if token := cli.Publish(topic, 1, false, payload); token.Wait() && token.Error() != nil {
				t.Fatalf("publish request: %v", token.Error())
			}
		case <-deadline:
			t.Fatalf("no response for %s", wantID)
		}
	}
}

func TestPlanningServiceWithMQTTContainer(t *testing.T) {
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed")
	}
	ctx := context.Background()

	broker, cleanup, err := util.StartMosquitto(ctx)
	if err != nil {
		t.Skipf("mosquitto not available: %v", err)
	}
	defer cleanup()

	cfg := config.Default()
	cfg.MQTT.Broker = broker
	cfg.MQTT.ClientID = "evplan-e2e"
	cfg.Logging.Path = filepath.Join(t.TempDir(), "plans.log")

	svc, err := app.New(cfg)
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	defer func() { _ = svc.Close() }()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- svc.Run(runCtx) }()

	responses := make(chan []byte, 8)
	requester := connectRequester(t, broker, cfg.MQTT.ResponseTopic, responses)
	defer requester.Disconnect(100)

	req := []byte(`{"request_id":"e2e-1","destination":400,"capacity":200,"stations":[{"position":100},{"position":200},{"position":300}]}`)
	res := awaitResult(t, requester, cfg.MQTT.RequestTopic, req, responses, "e2e-1")
	if !res.Feasible || res.StopCount != 1 || res.Stops[0] != 200 {
		t.Fatalf("unexpected result: %+v", res)
	}

	req = []byte(`{"request_id":"e2e-2","destination":400,"capacity":150,"stations":[{"position":100},{"position":300}]}`)
	res = awaitResult(t, requester, cfg.MQTT.RequestTopic, req, responses, "e2e-2")
	if res.Feasible || res.Infeasibility == nil {
		t.Fatalf("expected infeasible result: %+v", res)
	}
	if res.Infeasibility.GapFrom != 100 || res.Infeasibility.GapTo != 300 {
		t.Fatalf("unexpected gap: %+v", res.Infeasibility)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("service did not stop")
	}
}
