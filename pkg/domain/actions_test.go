package domain

import (
	"encoding/json"
	"testing"
)

func TestNewAction(t *testing.T) {
	action, err := NewAction(ActionAddLocation, Location{Base: Base{ID: "loc-1"}, Name: "Main"})
	if err != nil {
		t.Fatalf("new action: %v", err)
	}
	if action.Type != ActionAddLocation {
		t.Fatalf("unexpected type %s", action.Type)
	}
	var loc Location
	if err := json.Unmarshal(action.Payload, &loc); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if loc.Name != "Main" {
		t.Fatalf("payload roundtrip lost name: %+v", loc)
	}
}

func TestNewActionNilPayload(t *testing.T) {
	action, err := NewAction(ActionResetData, nil)
	if err != nil {
		t.Fatalf("new action: %v", err)
	}
	if action.Payload != nil {
		t.Fatalf("expected empty payload")
	}
}

func TestMustActionPanicsOnUnmarshalable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	MustAction(ActionAddPost, func() {})
}

func TestPatchTargetID(t *testing.T) {
	patch := Patch{
		"id":   json.RawMessage(`"rec-1"`),
		"name": json.RawMessage(`"Renamed"`),
	}
	if got := patch.TargetID(); got != "rec-1" {
		t.Fatalf("unexpected target id %q", got)
	}

	if got := (Patch{}).TargetID(); got != "" {
		t.Fatalf("expected empty id for missing field, got %q", got)
	}

	malformed := Patch{"id": json.RawMessage(`42`)}
	if got := malformed.TargetID(); got != "" {
		t.Fatalf("expected empty id for non-string field, got %q", got)
	}
}
