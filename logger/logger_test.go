package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_ParsesLevel(t *testing.T) {
	l := New(&Config{Level: "debug", Format: "json"})
	if l.GetLogger().GetLevel() != zerolog.DebugLevel {
		t.Errorf("expected debug level, got %s", l.GetLogger().GetLevel())
	}
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	l := New(&Config{Level: "shouty", Format: "json"})
	if l.GetLogger().GetLevel() != zerolog.InfoLevel {
		t.Errorf("expected info fallback, got %s", l.GetLogger().GetLevel())
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := FromZerolog(zerolog.New(&buf)).WithComponent("decode")
	l.Warn("something", Fields(FieldStatus, 500))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry[FieldComponent] != "decode" {
		t.Errorf("expected component tag, got %v", entry[FieldComponent])
	}
	if entry[FieldStatus] != float64(500) {
		t.Errorf("expected status field, got %v", entry[FieldStatus])
	}
}

func TestFields_SkipsDanglingValue(t *testing.T) {
	m := Fields("a", 1, "b")
	if len(m) != 1 || m["a"] != 1 {
		t.Errorf("unexpected fields: %v", m)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	bad := &Config{Level: "loud", Format: "json"}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	badFmt := &Config{Level: "info", Format: "xml"}
	if err := badFmt.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestNop_DiscardsSilently(t *testing.T) {
	Nop().Error("ignored", Fields("k", "v"))
}
