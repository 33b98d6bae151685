package telemetry

import (
	"os"
	"testing"
)

func TestConfigFromEnv_Unconfigured(t *testing.T) {
	for _, k := range []string{"INFLUXDB_URL", "INFLUXDB_TOKEN", "INFLUXDB_ORG", "INFLUXDB_BUCKET"} {
		if v, ok := os.LookupEnv(k); ok {
			t.Setenv(k, v)
		}
		os.Unsetenv(k)
	}

	_, ok := ConfigFromEnv()
	if ok {
		t.Fatal("expected unconfigured telemetry")
	}
}

func TestConfigFromEnv_Configured(t *testing.T) {
	t.Setenv("INFLUXDB_URL", "http://localhost:8086")
	t.Setenv("INFLUXDB_TOKEN", "token")
	t.Setenv("INFLUXDB_ORG", "school")
	t.Setenv("INFLUXDB_BUCKET", "")

	cfg, ok := ConfigFromEnv()
	if !ok {
		t.Fatal("expected configured telemetry")
	}
	if cfg.Bucket != "mathcoach" {
		t.Errorf("default bucket = %q", cfg.Bucket)
	}
}

func TestNewFromEnv_FallsBackToNoop(t *testing.T) {
	os.Unsetenv("INFLUXDB_URL")
	os.Unsetenv("INFLUXDB_TOKEN")
	os.Unsetenv("INFLUXDB_ORG")

	sink := NewFromEnv()
	if _, ok := sink.(Noop); !ok {
		t.Fatalf("expected Noop sink, got %T", sink)
	}
}

func TestNoopIsSafe(t *testing.T) {
	var s Sink = Noop{}
	s.LogMetrics("s1", map[string]float64{"accuracy": 0.5})
	s.LogParams("s1", map[string]string{"objective": "algebra"})
	s.LogEvent("s1", "level_up", nil)
	s.Close()
}
