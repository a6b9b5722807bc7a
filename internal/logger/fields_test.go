package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFieldsSkipsEmptyPairs(t *testing.T) {
	fields := StringFields(
		StringField{Key: FieldSession, Value: "sess-1"},
		StringField{Key: "  ", Value: "ignored"},
		StringField{Key: FieldRole, Value: "   "},
		StringField{Key: FieldLevel, Value: " mid "},
	)

	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != FieldSession || fields[0].String != "sess-1" {
		t.Fatalf("unexpected first field: %+v", fields[0])
	}
	if fields[1].Key != FieldLevel || fields[1].String != "mid" {
		t.Fatalf("whitespace must be trimmed: %+v", fields[1])
	}
}

func TestWithSessionFieldsAttachesIdentity(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := WithSessionFields(zap.New(core), "sess-1", "software-engineer", "senior")

	log.Info("interview started")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldSession] != "sess-1" {
		t.Fatalf("missing session id in %v", ctx)
	}
	if ctx[FieldRole] != "software-engineer" || ctx[FieldLevel] != "senior" {
		t.Fatalf("missing role or level in %v", ctx)
	}
}

func TestWithProviderFieldsAttachesProvider(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := WithProviderFields(zap.New(core), "gemini", "gemini-2.5-flash")

	log.Info("resume analyzed")

	ctx := logs.All()[0].ContextMap()
	if ctx[FieldProvider] != "gemini" || ctx[FieldModel] != "gemini-2.5-flash" {
		t.Fatalf("missing provider fields in %v", ctx)
	}
}

func TestWithFieldsNilLoggerIsSafe(t *testing.T) {
	log := WithSessionFields(nil, "sess-1", "", "")
	if log == nil {
		t.Fatalf("expected a usable logger")
	}
	log.Info("must not panic")
}

func TestTruncateForLog(t *testing.T) {
	if got := TruncateForLog("short", 10); got != "short" {
		t.Fatalf("short strings must pass through, got %q", got)
	}

	if got := TruncateForLog("0123456789abcdef", 10); got != "0123456789..." {
		t.Fatalf("unexpected truncation result: %q", got)
	}

	if got := TruncateForLog("anything", 0); got != "" {
		t.Fatalf("non-positive limit must yield an empty string, got %q", got)
	}
}
