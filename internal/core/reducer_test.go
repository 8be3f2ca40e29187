package core

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"
	"time"

	"shiftcore/internal/sampledata"
	"shiftcore/pkg/domain"
)

var testTime = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

func testReducer() *Reducer {
	seq := 0
	return NewReducer(
		sampledata.Provider,
		ClockFunc(func() time.Time { return testTime }),
		func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
	)
}

func testDoc() Document {
	return Document{
		SchemaVersion:     domain.CurrentSchemaVersion,
		CurrentUserID:     "emp-a",
		CurrentLocationID: "loc-1",
		Locations: []domain.Location{
			{Base: domain.Base{ID: "loc-1"}, Name: "Main", GeofenceRadius: 150, LaborBudgetWarning: 25, LaborBudgetMax: 30},
			{Base: domain.Base{ID: "loc-2"}, Name: "Annex", GeofenceRadius: 150, LaborBudgetWarning: 25, LaborBudgetMax: 30},
		},
		Positions: []domain.Position{
			{Base: domain.Base{ID: "pos-1"}, Name: "Server"},
		},
		Employees: []domain.Employee{
			{Base: domain.Base{ID: "emp-a"}, Name: "Avery", LocationIDs: []string{"loc-1", "loc-2"}, Roles: []string{"Server"}, AccessLevel: domain.AccessMasterAdmin, Wages: []domain.Wage{}, PTOBalance: domain.DefaultPTOBalance()},
			{Base: domain.Base{ID: "emp-b"}, Name: "Blair", LocationIDs: []string{"loc-1"}, Roles: []string{"Server"}, AccessLevel: domain.AccessEmployee, Wages: []domain.Wage{}, PTOBalance: domain.DefaultPTOBalance()},
			{Base: domain.Base{ID: "emp-c"}, Name: "Casey", LocationIDs: []string{"loc-2"}, Roles: []string{"Server"}, AccessLevel: domain.AccessEmployee, Wages: []domain.Wage{}, PTOBalance: domain.DefaultPTOBalance()},
		},
		Shifts: []domain.Shift{
			{Base: domain.Base{ID: "shift-a"}, EmployeeID: "emp-a", LocationID: "loc-1", Start: "2025-09-02T09:00:00Z", End: "2025-09-02T17:00:00Z", Status: domain.ShiftStatusPublished},
			{Base: domain.Base{ID: "shift-b"}, EmployeeID: "emp-b", LocationID: "loc-1", Start: "2025-09-02T10:00:00Z", End: "2025-09-02T18:00:00Z", Status: domain.ShiftStatusDraft},
			{Base: domain.Base{ID: "shift-open"}, EmployeeID: domain.OpenShiftEmployee, LocationID: "loc-1", Start: "2025-09-03T09:00:00Z", End: "2025-09-03T17:00:00Z", Status: domain.ShiftStatusPublished},
		},
	}
}

func TestReduceUnknownActionIsNoOp(t *testing.T) {
	r := testReducer()
	doc := testDoc()
	next := r.Reduce(doc, Action{Type: "NOT_A_REAL_ACTION"})
	if !reflect.DeepEqual(doc, next) {
		t.Fatalf("unknown action mutated the document")
	}
}

func TestReduceMalformedPayloadIsNoOp(t *testing.T) {
	r := testReducer()
	doc := testDoc()
	next := r.Reduce(doc, Action{Type: domain.ActionAddLocation, Payload: json.RawMessage(`{broken`)})
	if !reflect.DeepEqual(doc, next) {
		t.Fatalf("malformed payload mutated the document")
	}
}

func TestReduceNeverMutatesInput(t *testing.T) {
	r := testReducer()
	doc := testDoc()
	before := doc.Clone()

	r.Reduce(doc, domain.MustAction(domain.ActionDeleteEmployee, domain.Target{ID: "emp-b"}))

	if !reflect.DeepEqual(before, doc) {
		t.Fatalf("input document was mutated")
	}
}

func TestUpdateUnknownTargetIsNoOp(t *testing.T) {
	r := testReducer()
	doc := testDoc()
	patch := domain.Patch{
		"id":   json.RawMessage(`"missing"`),
		"name": json.RawMessage(`"Renamed"`),
	}
	next := r.Reduce(doc, domain.MustAction(domain.ActionUpdateLocation, patch))
	if !reflect.DeepEqual(doc, next) {
		t.Fatalf("unknown target mutated the document")
	}
}

func TestMergePatchPreservesID(t *testing.T) {
	r := testReducer()
	doc := testDoc()
	patch := domain.Patch{
		"id":   json.RawMessage(`"loc-1"`),
		"name": json.RawMessage(`"Renamed"`),
	}
	next := r.Reduce(doc, domain.MustAction(domain.ActionUpdateLocation, patch))

	loc, ok := next.FindLocation("loc-1")
	if !ok {
		t.Fatalf("location disappeared")
	}
	if loc.Name != "Renamed" {
		t.Fatalf("patch did not apply: %+v", loc)
	}
	if loc.GeofenceRadius != 150 {
		t.Fatalf("untouched field changed: %+v", loc)
	}
}

func TestMergePatchIgnoresIDOverride(t *testing.T) {
	r := testReducer()
	doc := testDoc()
	raw, _ := json.Marshal(map[string]any{"id": "loc-1", "name": "Renamed"})
	var patch domain.Patch
	if err := json.Unmarshal(raw, &patch); err != nil {
		t.Fatalf("build patch: %v", err)
	}

	next := r.Reduce(doc, domain.MustAction(domain.ActionUpdateLocation, patch))
	if _, ok := next.FindLocation("loc-1"); !ok {
		t.Fatalf("record id must survive patching")
	}
}

func TestToggleMembership(t *testing.T) {
	set := []string{"a", "b"}
	set = toggleMembership(set, "c")
	if !containsString(set, "c") {
		t.Fatalf("expected c added")
	}
	set = toggleMembership(set, "a")
	if containsString(set, "a") {
		t.Fatalf("expected a removed")
	}
}
