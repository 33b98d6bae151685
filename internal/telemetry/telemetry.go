// Package telemetry emits tutoring session metrics to InfluxDB. The sink
// is a fire-and-forget side channel: writes are buffered by the client's
// async API and failures never reach the session flow.
package telemetry

import (
	"fmt"
	"os"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// Sink receives session metrics and events. All methods are non-blocking
// and must never fail the caller.
type Sink interface {
	// LogMetrics records numeric measurements tagged with the student id.
	LogMetrics(studentID string, metrics map[string]float64)

	// LogParams records string parameters (objective, level name, ...).
	LogParams(studentID string, params map[string]string)

	// LogEvent records a named event with optional fields.
	LogEvent(studentID, name string, fields map[string]any)

	// Close flushes buffered writes.
	Close()
}

// Config holds InfluxDB connection settings.
type Config struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

// ConfigFromEnv reads the standard INFLUXDB_* variables. Returns false
// when telemetry is not configured.
func ConfigFromEnv() (Config, bool) {
	cfg := Config{
		URL:    os.Getenv("INFLUXDB_URL"),
		Token:  os.Getenv("INFLUXDB_TOKEN"),
		Org:    os.Getenv("INFLUXDB_ORG"),
		Bucket: os.Getenv("INFLUXDB_BUCKET"),
	}
	if cfg.Bucket == "" {
		cfg.Bucket = "mathcoach"
	}
	if cfg.URL == "" || cfg.Token == "" || cfg.Org == "" {
		return Config{}, false
	}
	return cfg, true
}

// influxSink writes through the client's async write API. Write errors
// surface on an error channel which we drain to stderr.
type influxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPI
	done     chan struct{}
}

// New creates an InfluxDB-backed sink.
func New(cfg Config) Sink {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	writeAPI := client.WriteAPI(cfg.Org, cfg.Bucket)

	s := &influxSink{
		client:   client,
		writeAPI: writeAPI,
		done:     make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		for err := range writeAPI.Errors() {
			fmt.Fprintf(os.Stderr, "warning: telemetry write failed: %v\n", err)
		}
	}()

	return s
}

// NewFromEnv creates an influx sink when INFLUXDB_* is configured, a Noop
// sink otherwise.
func NewFromEnv() Sink {
	cfg, ok := ConfigFromEnv()
	if !ok {
		return Noop{}
	}
	return New(cfg)
}

func (s *influxSink) LogMetrics(studentID string, metrics map[string]float64) {
	if len(metrics) == 0 {
		return
	}
	fields := make(map[string]any, len(metrics))
	for k, v := range metrics {
		fields[k] = v
	}
	p := influxdb2.NewPoint("session_metrics",
		map[string]string{"student_id": studentID},
		fields,
		time.Now())
	s.writeAPI.WritePoint(p)
}

func (s *influxSink) LogParams(studentID string, params map[string]string) {
	if len(params) == 0 {
		return
	}
	fields := make(map[string]any, len(params))
	for k, v := range params {
		fields[k] = v
	}
	p := influxdb2.NewPoint("session_params",
		map[string]string{"student_id": studentID},
		fields,
		time.Now())
	s.writeAPI.WritePoint(p)
}

func (s *influxSink) LogEvent(studentID, name string, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{"count": 1}
	}
	p := influxdb2.NewPoint("session_events",
		map[string]string{"student_id": studentID, "event": name},
		fields,
		time.Now())
	s.writeAPI.WritePoint(p)
}

func (s *influxSink) Close() {
	s.writeAPI.Flush()
	s.client.Close()
	<-s.done
}

// Noop is the sink used when telemetry is not configured.
type Noop struct{}

func (Noop) LogMetrics(string, map[string]float64) {}
func (Noop) LogParams(string, map[string]string)   {}
func (Noop) LogEvent(string, string, map[string]any) {
}
func (Noop) Close() {}
