package core

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"shiftcore/pkg/domain"
)

func TestImportPaystubsMatchesByIDThenName(t *testing.T) {
	r := testReducer()
	doc := r.Reduce(testDoc(), domain.MustAction(domain.ActionImportPaystubs, []domain.Paystub{
		{EmployeeID: "emp-a", EmployeeName: "whatever", GrossPay: 2000, NetPay: 1600},
		{EmployeeName: "Blair", GrossPay: 1800, NetPay: 1400},
		{EmployeeID: "emp-ghost", EmployeeName: "Nobody Here", GrossPay: 100, NetPay: 80},
	}))
	if len(doc.Paystubs) != 3 {
		t.Fatalf("expected 3 stubs, got %d", len(doc.Paystubs))
	}

	byID := doc.Paystubs[0]
	if byID.Status != domain.PaystubMatched || byID.EmployeeID != "emp-a" {
		t.Fatalf("id match failed: %+v", byID)
	}

	byName := doc.Paystubs[1]
	if byName.Status != domain.PaystubMatched || byName.EmployeeID != "emp-b" {
		t.Fatalf("name match failed: %+v", byName)
	}

	unmatched := doc.Paystubs[2]
	if unmatched.Status != domain.PaystubUnmatched || unmatched.EmployeeID != "" {
		t.Fatalf("unresolved stub should be unmatched with id cleared: %+v", unmatched)
	}
	if unmatched.ID == "" {
		t.Fatalf("imported stubs still get ids")
	}
}

func TestMatchPaystubManually(t *testing.T) {
	r := testReducer()
	doc := testDoc()
	doc.Paystubs = []domain.Paystub{
		{Base: domain.Base{ID: "stub-1"}, EmployeeName: "C. Lee", Status: domain.PaystubUnmatched},
	}

	// Unknown employee is refused.
	next := r.Reduce(doc, domain.MustAction(domain.ActionMatchPaystub, domain.MatchPaystubPayload{ID: "stub-1", EmployeeID: "emp-ghost"}))
	if next.Paystubs[0].Status != domain.PaystubUnmatched {
		t.Fatalf("match against unknown employee should be refused")
	}

	next = r.Reduce(doc, domain.MustAction(domain.ActionMatchPaystub, domain.MatchPaystubPayload{ID: "stub-1", EmployeeID: "emp-c"}))
	stub := next.Paystubs[0]
	if stub.Status != domain.PaystubMatched || stub.EmployeeID != "emp-c" {
		t.Fatalf("manual match not applied: %+v", stub)
	}
}

func TestTimesheetLifecycle(t *testing.T) {
	r := testReducer()
	doc := r.Reduce(testDoc(), domain.MustAction(domain.ActionAddTimesheet, domain.Timesheet{
		EmployeeID: "emp-b", PeriodStart: "2025-08-18", PeriodEnd: "2025-08-31", Hours: 72,
		Status: domain.TimesheetApproved,
	}))
	if len(doc.Timesheets) != 1 {
		t.Fatalf("timesheet not created")
	}
	sheet := doc.Timesheets[0]
	if sheet.Status != domain.TimesheetPending {
		t.Fatalf("new timesheets are forced pending, got %s", sheet.Status)
	}

	// Approval before submission is a no-op.
	doc = r.Reduce(doc, domain.MustAction(domain.ActionApproveTimesheet, domain.TimesheetDecisionPayload{ID: sheet.ID, DecidedByID: "emp-a"}))
	if doc.Timesheets[0].Status != domain.TimesheetPending {
		t.Fatalf("pending sheet must not be approvable")
	}

	doc = r.Reduce(doc, domain.MustAction(domain.ActionSubmitTimesheet, domain.Target{ID: sheet.ID}))
	if doc.Timesheets[0].Status != domain.TimesheetSubmitted || doc.Timesheets[0].SubmittedAt == "" {
		t.Fatalf("submission not applied: %+v", doc.Timesheets[0])
	}

	doc = r.Reduce(doc, domain.MustAction(domain.ActionRejectTimesheet, domain.TimesheetDecisionPayload{ID: sheet.ID, DecidedByID: "emp-a", Notes: "Hours off"}))
	rejected := doc.Timesheets[0]
	if rejected.Status != domain.TimesheetRejected || rejected.DecidedByID != "emp-a" || rejected.Notes != "Hours off" {
		t.Fatalf("rejection not applied: %+v", rejected)
	}

	doc = r.Reduce(doc, domain.MustAction(domain.ActionResubmitTimesheet, domain.Target{ID: sheet.ID}))
	resubmitted := doc.Timesheets[0]
	if resubmitted.Status != domain.TimesheetSubmitted || resubmitted.DecidedByID != "" {
		t.Fatalf("resubmission should clear the decider: %+v", resubmitted)
	}

	doc = r.Reduce(doc, domain.MustAction(domain.ActionApproveTimesheet, domain.TimesheetDecisionPayload{ID: sheet.ID, DecidedByID: "emp-a"}))
	if doc.Timesheets[0].Status != domain.TimesheetApproved {
		t.Fatalf("resubmitted sheet should be approvable")
	}
}

func TestAddTimesheetRequiresEmployee(t *testing.T) {
	r := testReducer()
	doc := r.Reduce(testDoc(), domain.MustAction(domain.ActionAddTimesheet, domain.Timesheet{EmployeeID: "emp-ghost"}))
	if len(doc.Timesheets) != 0 {
		t.Fatalf("timesheet for unknown employee should be refused")
	}
}

func TestDeleteGroupFiltersEmployeeMembership(t *testing.T) {
	r := testReducer()
	doc := testDoc()
	doc.Groups = []domain.Group{
		{Base: domain.Base{ID: "grp-1"}, Name: "Openers", EmployeeIDs: []string{"emp-a", "emp-b"}},
	}
	doc.Employees[0].GroupIDs = []string{"grp-1", "grp-other"}

	next := r.Reduce(doc, domain.MustAction(domain.ActionDeleteGroup, domain.Target{ID: "grp-1"}))
	if len(next.Groups) != 0 {
		t.Fatalf("group not deleted")
	}
	emp, _ := next.FindEmployee("emp-a")
	if containsString(emp.GroupIDs, "grp-1") {
		t.Fatalf("deleted group should be filtered from employee membership")
	}
	if !containsString(emp.GroupIDs, "grp-other") {
		t.Fatalf("unrelated group membership must survive")
	}
}

func TestUpdateCompanyProfileMerges(t *testing.T) {
	r := testReducer()
	doc := testDoc()
	doc.CompanyProfile = domain.CompanyProfile{Name: "Harbor & Main", Timezone: "America/New_York"}

	next := r.Reduce(doc, domain.MustAction(domain.ActionUpdateCompanyProfile, domain.Patch{
		"industry": json.RawMessage(`"Hospitality"`),
		"timezone": json.RawMessage(`"America/Chicago"`),
	}))
	profile := next.CompanyProfile
	if profile.Name != "Harbor & Main" {
		t.Fatalf("untouched field changed: %+v", profile)
	}
	if profile.Industry != "Hospitality" || profile.Timezone != "America/Chicago" {
		t.Fatalf("merge not applied: %+v", profile)
	}
}

func TestLogAuditEventAppends(t *testing.T) {
	r := testReducer()
	doc := r.Reduce(testDoc(), domain.MustAction(domain.ActionLogAuditEvent, domain.AuditLogEntry{
		ActorID: "emp-a", Action: "PUBLISH_SHIFTS", EntityType: domain.EntityShift, EntityID: "shift-b",
	}))
	if len(doc.AuditLog) != 1 {
		t.Fatalf("audit entry not appended")
	}
	entry := doc.AuditLog[0]
	if entry.ID == "" || entry.Timestamp == "" {
		t.Fatalf("audit entry should be stamped: %+v", entry)
	}
}

func TestResetDataRestoresSample(t *testing.T) {
	r := testReducer()
	doc := testDoc()
	doc.Posts = []domain.Post{{Base: domain.Base{ID: "post-1"}, AuthorID: "emp-a", Body: "stale"}}

	next := r.Reduce(doc, domain.MustAction(domain.ActionResetData, nil))
	if next.SchemaVersion != domain.CurrentSchemaVersion {
		t.Fatalf("reset document must carry the current version")
	}
	if len(next.Locations) == 0 {
		t.Fatalf("reset should restore the sample dataset")
	}
	for _, p := range next.Posts {
		if p.ID == "post-1" {
			t.Fatalf("reset should discard prior state")
		}
	}
}

func TestResetDataWithoutSampleIsNoOp(t *testing.T) {
	r := NewReducer(nil, ClockFunc(func() time.Time { return testTime }), nil)
	doc := testDoc()
	next := r.Reduce(doc, domain.MustAction(domain.ActionResetData, nil))
	if !reflect.DeepEqual(doc, next) {
		t.Fatalf("reset without a sample provider should be a no-op")
	}
}
