package core

import (
	"encoding/json"

	"shiftcore/pkg/domain"
)

// migrationStep is one named normalization pass over the raw persisted
// document. Steps run in order against the JSON form so legacy fields can be
// lifted before the document is decoded into typed collections. Every step is
// idempotent; the chain as a whole satisfies Migrate(Migrate(d)) == Migrate(d).
type migrationStep struct {
	name  string
	apply func(doc map[string]json.RawMessage) map[string]json.RawMessage
}

var migrationSteps = []migrationStep{
	{"fill collections", fillCollections},
	{"normalize locations", normalizeCollection("locations", normalizeLocationRecord)},
	{"normalize employees", normalizeCollection("employees", normalizeEmployeeRecord)},
	{"normalize shifts", normalizeCollection("shifts", normalizeShiftRecord)},
	{"normalize sales entries", normalizeCollection("salesEntries", normalizeSalesRecord)},
}

// collectionKeys lists every array-valued collection of the document in its
// persisted order. fillCollections guarantees each is present and non-null so
// consumers never see a missing key.
var collectionKeys = []string{
	"locations", "positions", "employees", "shifts", "shiftBids", "shiftSwaps",
	"timeEntries", "absences", "salesEntries", "posts", "tasks", "taskTemplates",
	"trainingPrograms", "trainingAssignments", "surveyTemplates", "surveyResponses",
	"invoices", "customers", "conversations", "messages", "subcontractors",
	"subcontractorRevenues", "subcontractorPayments", "providerAssistantTags",
	"paystubs", "timesheets", "groups", "accessLevels", "auditLog",
}

// Migrate upgrades a persisted document blob to the current schema. It never
// fails: unparseable input and documents too old to upgrade in place fall
// back to sample data, salvaging whatever scheduling records still decode.
func Migrate(raw []byte, provider SampleProvider) Document {
	fresh := func() Document {
		var doc Document
		if provider != nil {
			doc = provider()
		}
		doc.SchemaVersion = domain.CurrentSchemaVersion
		return doc
	}

	if len(raw) == 0 {
		return fresh()
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return fresh()
	}

	version := 0
	if v, ok := fields["_version"]; ok {
		_ = json.Unmarshal(v, &version)
	}
	if version < domain.CurrentSchemaVersion || missingCollection(fields, "locations") {
		return salvage(fields, fresh())
	}

	for _, step := range migrationSteps {
		fields = step.apply(fields)
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return fresh()
	}
	var doc Document
	if err := json.Unmarshal(out, &doc); err != nil {
		return fresh()
	}
	doc.SchemaVersion = domain.CurrentSchemaVersion
	return doc
}

func missingCollection(fields map[string]json.RawMessage, key string) bool {
	raw, ok := fields[key]
	if !ok {
		return true
	}
	var items []json.RawMessage
	return json.Unmarshal(raw, &items) != nil
}

// salvage rebuilds the document from sample data, carrying over the
// scheduling collections of the old blob when they still decode.
func salvage(fields map[string]json.RawMessage, doc Document) Document {
	if employees, ok := decodeRecords(fields, "employees", normalizeEmployeeRecord); ok {
		var out []domain.Employee
		if json.Unmarshal(employees, &out) == nil && len(out) > 0 {
			doc.Employees = out
		}
	}
	if shifts, ok := decodeRecords(fields, "shifts", normalizeShiftRecord); ok {
		var out []domain.Shift
		if json.Unmarshal(shifts, &out) == nil && len(out) > 0 {
			doc.Shifts = out
		}
	}
	if positions, ok := decodeRecords(fields, "positions", nil); ok {
		var out []domain.Position
		if json.Unmarshal(positions, &out) == nil && len(out) > 0 {
			doc.Positions = out
		}
	}
	if entries, ok := decodeRecords(fields, "timeEntries", nil); ok {
		var out []domain.TimeEntry
		if json.Unmarshal(entries, &out) == nil && len(out) > 0 {
			doc.TimeEntries = out
		}
	}
	doc.SchemaVersion = domain.CurrentSchemaVersion
	return doc
}

// decodeRecords extracts one collection from the raw document, normalizing
// each object record, and returns it re-marshaled for typed decoding.
func decodeRecords(fields map[string]json.RawMessage, key string, normalize func(map[string]json.RawMessage) map[string]json.RawMessage) (json.RawMessage, bool) {
	raw, ok := fields[key]
	if !ok {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	if normalize != nil {
		for i, item := range items {
			var rec map[string]json.RawMessage
			if err := json.Unmarshal(item, &rec); err != nil || rec == nil {
				continue
			}
			if merged, err := json.Marshal(normalize(rec)); err == nil {
				items[i] = merged
			}
		}
	}
	out, err := json.Marshal(items)
	if err != nil {
		return nil, false
	}
	return out, true
}

func fillCollections(fields map[string]json.RawMessage) map[string]json.RawMessage {
	empty := json.RawMessage("[]")
	for _, key := range collectionKeys {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			fields[key] = empty
		}
	}
	return fields
}

func normalizeCollection(key string, normalize func(map[string]json.RawMessage) map[string]json.RawMessage) func(map[string]json.RawMessage) map[string]json.RawMessage {
	return func(fields map[string]json.RawMessage) map[string]json.RawMessage {
		if raw, ok := decodeRecords(fields, key, normalize); ok {
			fields[key] = raw
		}
		return fields
	}
}

func rawString(rec map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := rec[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func rawNumber(rec map[string]json.RawMessage, key string) (float64, bool) {
	raw, ok := rec[key]
	if !ok {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return f, true
}

func setJSON(rec map[string]json.RawMessage, key string, value any) {
	if raw, err := json.Marshal(value); err == nil {
		rec[key] = raw
	}
}

func emptyList(rec map[string]json.RawMessage, key string) bool {
	raw, ok := rec[key]
	if !ok || string(raw) == "null" {
		return true
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return true
	}
	return len(items) == 0
}

// normalizeEmployeeRecord lifts the legacy single-location shape (singular
// locationId, role, hourlyRate fields) into the current plural collections
// and fills the defaults the current schema guarantees.
func normalizeEmployeeRecord(rec map[string]json.RawMessage) map[string]json.RawMessage {
	if emptyList(rec, "locationIds") {
		if loc, ok := rawString(rec, "locationId"); ok && loc != "" {
			setJSON(rec, "locationIds", []string{loc})
		}
	}
	role, hasRole := rawString(rec, "role")
	if emptyList(rec, "roles") {
		if hasRole && role != "" {
			setJSON(rec, "roles", []string{role})
		} else {
			setJSON(rec, "roles", []string{})
		}
	}
	if emptyList(rec, "wages") {
		if rate, ok := rawNumber(rec, "hourlyRate"); ok && hasRole && role != "" {
			setJSON(rec, "wages", []domain.Wage{{Role: role, HourlyRate: rate}})
		} else {
			setJSON(rec, "wages", []domain.Wage{})
		}
	}
	delete(rec, "locationId")
	delete(rec, "role")
	delete(rec, "hourlyRate")

	if level, ok := rawString(rec, "accessLevel"); !ok || domain.AccessLevel(level).Rank() < 0 {
		setJSON(rec, "accessLevel", domain.AccessEmployee)
	}
	if _, ok := rec["ptoBalance"]; !ok {
		setJSON(rec, "ptoBalance", domain.DefaultPTOBalance())
	}
	return rec
}

// normalizeShiftRecord coerces the status enum and restores the open-shift
// sentinel for blank assignments.
func normalizeShiftRecord(rec map[string]json.RawMessage) map[string]json.RawMessage {
	status, _ := rawString(rec, "status")
	if domain.ShiftStatus(status) != domain.ShiftStatusPublished {
		setJSON(rec, "status", domain.ShiftStatusDraft)
	}
	if emp, ok := rawString(rec, "employeeId"); !ok || emp == "" {
		setJSON(rec, "employeeId", domain.OpenShiftEmployee)
	}
	return rec
}

func normalizeSalesRecord(rec map[string]json.RawMessage) map[string]json.RawMessage {
	kind, _ := rawString(rec, "type")
	if domain.SalesEntryType(kind) != domain.SalesForecast {
		setJSON(rec, "type", domain.SalesActual)
	}
	return rec
}

// normalizeLocationRecord fills geofence and labor budget defaults. Legacy
// documents carried a single targetLaborPercent; it becomes the hard budget
// cap with the warning threshold set five points below it.
func normalizeLocationRecord(rec map[string]json.RawMessage) map[string]json.RawMessage {
	if radius, ok := rawNumber(rec, "geofenceRadius"); !ok || radius == 0 {
		setJSON(rec, "geofenceRadius", defaultGeofenceRadius)
	}
	target, hasTarget := rawNumber(rec, "targetLaborPercent")
	if max, ok := rawNumber(rec, "laborBudgetMax"); !ok || max == 0 {
		if hasTarget && target > 0 {
			setJSON(rec, "laborBudgetMax", target)
		} else {
			setJSON(rec, "laborBudgetMax", defaultLaborBudgetMax)
		}
	}
	if warn, ok := rawNumber(rec, "laborBudgetWarning"); !ok || warn == 0 {
		if hasTarget && target > 5 {
			setJSON(rec, "laborBudgetWarning", target-5)
		} else {
			setJSON(rec, "laborBudgetWarning", defaultLaborBudgetWarning)
		}
	}
	delete(rec, "targetLaborPercent")
	return rec
}
