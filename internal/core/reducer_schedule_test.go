package core

import (
	"testing"

	"shiftcore/pkg/domain"
)

func TestAddLocationFillsDefaults(t *testing.T) {
	r := testReducer()
	doc := r.Reduce(testDoc(), domain.MustAction(domain.ActionAddLocation, domain.Location{Name: "Uptown"}))

	if len(doc.Locations) != 3 {
		t.Fatalf("expected 3 locations, got %d", len(doc.Locations))
	}
	added := doc.Locations[2]
	if added.ID == "" {
		t.Fatalf("expected generated id")
	}
	if added.GeofenceRadius != 150 || added.LaborBudgetWarning != 25 || added.LaborBudgetMax != 30 {
		t.Fatalf("defaults not applied: %+v", added)
	}
}

func TestDeleteLastLocationRefused(t *testing.T) {
	r := testReducer()
	doc := testDoc()
	doc.Locations = doc.Locations[:1]

	next := r.Reduce(doc, domain.MustAction(domain.ActionDeleteLocation, domain.Target{ID: "loc-1"}))
	if len(next.Locations) != 1 {
		t.Fatalf("last location must never be deleted")
	}
}

func TestDeleteLocationCascades(t *testing.T) {
	r := testReducer()
	doc := testDoc()
	doc.SalesEntries = []domain.SalesEntry{
		{Base: domain.Base{ID: "sales-1"}, LocationID: "loc-2", Date: "2025-09-01", Amount: 100, Type: domain.SalesActual},
	}
	doc.Shifts = append(doc.Shifts, domain.Shift{
		Base: domain.Base{ID: "shift-annex"}, EmployeeID: "emp-c", LocationID: "loc-2",
		Start: "2025-09-04T09:00:00Z", End: "2025-09-04T17:00:00Z", Status: domain.ShiftStatusDraft,
	})
	doc.CurrentLocationID = "loc-2"

	next := r.Reduce(doc, domain.MustAction(domain.ActionDeleteLocation, domain.Target{ID: "loc-2"}))

	if _, ok := next.FindLocation("loc-2"); ok {
		t.Fatalf("location survived deletion")
	}
	// emp-c only worked loc-2 and goes with it; emp-a is trimmed.
	if _, ok := next.FindEmployee("emp-c"); ok {
		t.Fatalf("sole-location employee should be removed")
	}
	empA, _ := next.FindEmployee("emp-a")
	if containsString(empA.LocationIDs, "loc-2") {
		t.Fatalf("multi-location employee should be trimmed: %+v", empA.LocationIDs)
	}
	if _, ok := next.FindShift("shift-annex"); ok {
		t.Fatalf("shift at deleted location should be removed")
	}
	if len(next.SalesEntries) != 0 {
		t.Fatalf("sales entries at deleted location should be removed")
	}
	if next.CurrentLocationID != "loc-1" {
		t.Fatalf("current location should be reassigned, got %s", next.CurrentLocationID)
	}
}

func TestSetCurrentLocationRequiresExisting(t *testing.T) {
	r := testReducer()
	doc := r.Reduce(testDoc(), domain.MustAction(domain.ActionSetCurrentLocation, domain.Target{ID: "missing"}))
	if doc.CurrentLocationID != "loc-1" {
		t.Fatalf("unknown location must not become current")
	}

	doc = r.Reduce(doc, domain.MustAction(domain.ActionSetCurrentLocation, domain.Target{ID: "loc-2"}))
	if doc.CurrentLocationID != "loc-2" {
		t.Fatalf("expected loc-2 current, got %s", doc.CurrentLocationID)
	}
}

func TestDeletePositionClearsShiftReferences(t *testing.T) {
	r := testReducer()
	doc := testDoc()
	doc.Shifts[0].Position = "Server"

	next := r.Reduce(doc, domain.MustAction(domain.ActionDeletePosition, domain.Target{ID: "pos-1"}))
	if len(next.Positions) != 0 {
		t.Fatalf("position survived deletion")
	}
	shift, _ := next.FindShift("shift-a")
	if shift.Position != "" {
		t.Fatalf("shift position reference should be cleared, got %q", shift.Position)
	}
}

func TestAddShiftCoercesStatusAndOpenSentinel(t *testing.T) {
	r := testReducer()
	doc := r.Reduce(testDoc(), domain.MustAction(domain.ActionAddShift, domain.Shift{
		LocationID: "loc-1",
		Start:      "2025-09-05T09:00:00Z",
		End:        "2025-09-05T17:00:00Z",
		Status:     domain.ShiftStatus("garbage"),
	}))

	added := doc.Shifts[len(doc.Shifts)-1]
	if added.Status != domain.ShiftStatusDraft {
		t.Fatalf("unknown status should coerce to draft, got %s", added.Status)
	}
	if added.EmployeeID != domain.OpenShiftEmployee {
		t.Fatalf("blank assignment should become open, got %q", added.EmployeeID)
	}
}

func TestPublishShifts(t *testing.T) {
	r := testReducer()
	doc := r.Reduce(testDoc(), domain.MustAction(domain.ActionPublishShifts, domain.PublishShiftsPayload{
		ShiftIDs: []string{"shift-b", "missing"},
	}))

	shift, _ := doc.FindShift("shift-b")
	if shift.Status != domain.ShiftStatusPublished {
		t.Fatalf("expected published, got %s", shift.Status)
	}
}

func TestDeleteShiftCascadesBidsAndSwaps(t *testing.T) {
	r := testReducer()
	doc := testDoc()
	doc.ShiftBids = []domain.ShiftBid{
		{Base: domain.Base{ID: "bid-1"}, ShiftID: "shift-open", EmployeeID: "emp-b", Status: domain.BidPending},
	}
	doc.ShiftSwaps = []domain.ShiftSwap{
		{Base: domain.Base{ID: "swap-1"}, ShiftID: "shift-open", RequesterID: "emp-a", Status: domain.SwapOpen},
	}

	next := r.Reduce(doc, domain.MustAction(domain.ActionDeleteShift, domain.Target{ID: "shift-open"}))
	if len(next.ShiftBids) != 0 || len(next.ShiftSwaps) != 0 {
		t.Fatalf("bids and swaps referencing the shift should be removed")
	}
}

func TestShiftBidLifecycle(t *testing.T) {
	r := testReducer()
	doc := testDoc()

	doc = r.Reduce(doc, domain.MustAction(domain.ActionAddShiftBid, domain.ShiftBid{ShiftID: "shift-open", EmployeeID: "emp-b"}))
	doc = r.Reduce(doc, domain.MustAction(domain.ActionAddShiftBid, domain.ShiftBid{ShiftID: "shift-open", EmployeeID: "emp-c"}))
	if len(doc.ShiftBids) != 2 {
		t.Fatalf("expected 2 bids, got %d", len(doc.ShiftBids))
	}
	if doc.ShiftBids[0].Status != domain.BidPending || doc.ShiftBids[0].CreatedAt == "" {
		t.Fatalf("bid defaults not applied: %+v", doc.ShiftBids[0])
	}

	// Bids on assigned shifts are refused.
	before := len(doc.ShiftBids)
	doc = r.Reduce(doc, domain.MustAction(domain.ActionAddShiftBid, domain.ShiftBid{ShiftID: "shift-a", EmployeeID: "emp-b"}))
	if len(doc.ShiftBids) != before {
		t.Fatalf("bid on an assigned shift should be refused")
	}

	winner := doc.ShiftBids[0]
	doc = r.Reduce(doc, domain.MustAction(domain.ActionApproveShiftBid, domain.Target{ID: winner.ID}))

	shift, _ := doc.FindShift("shift-open")
	if shift.EmployeeID != winner.EmployeeID {
		t.Fatalf("approved bid should assign the shift, got %s", shift.EmployeeID)
	}
	if doc.ShiftBids[0].Status != domain.BidApproved {
		t.Fatalf("expected winning bid approved")
	}
	if doc.ShiftBids[1].Status != domain.BidDenied {
		t.Fatalf("sibling pending bid should be denied, got %s", doc.ShiftBids[1].Status)
	}
}

func TestShiftSwapLifecycle(t *testing.T) {
	r := testReducer()
	doc := testDoc()

	doc = r.Reduce(doc, domain.MustAction(domain.ActionAddShiftSwap, domain.ShiftSwap{ShiftID: "shift-a", RequesterID: "emp-a"}))
	if len(doc.ShiftSwaps) != 1 {
		t.Fatalf("expected swap created")
	}
	swap := doc.ShiftSwaps[0]
	if swap.Status != domain.SwapOpen || swap.ClaimedByID != "" {
		t.Fatalf("swap defaults not applied: %+v", swap)
	}

	// Approving an unclaimed swap is a no-op.
	doc = r.Reduce(doc, domain.MustAction(domain.ActionApproveShiftSwap, domain.Target{ID: swap.ID}))
	if doc.ShiftSwaps[0].Status != domain.SwapOpen {
		t.Fatalf("unclaimed swap must not be approvable")
	}

	// The requester cannot claim their own swap.
	doc = r.Reduce(doc, domain.MustAction(domain.ActionClaimShiftSwap, domain.ClaimShiftSwapPayload{ID: swap.ID, EmployeeID: "emp-a"}))
	if doc.ShiftSwaps[0].Status != domain.SwapOpen {
		t.Fatalf("requester must not claim own swap")
	}

	doc = r.Reduce(doc, domain.MustAction(domain.ActionClaimShiftSwap, domain.ClaimShiftSwapPayload{ID: swap.ID, EmployeeID: "emp-b"}))
	if doc.ShiftSwaps[0].Status != domain.SwapClaimed || doc.ShiftSwaps[0].ClaimedByID != "emp-b" {
		t.Fatalf("claim not applied: %+v", doc.ShiftSwaps[0])
	}

	doc = r.Reduce(doc, domain.MustAction(domain.ActionApproveShiftSwap, domain.Target{ID: swap.ID}))
	if doc.ShiftSwaps[0].Status != domain.SwapApproved {
		t.Fatalf("expected approved, got %s", doc.ShiftSwaps[0].Status)
	}
	shift, _ := doc.FindShift("shift-a")
	if shift.EmployeeID != "emp-b" {
		t.Fatalf("approval must reassign the shift in the same transition, got %s", shift.EmployeeID)
	}
}

func TestShiftSwapDenyAndCancel(t *testing.T) {
	r := testReducer()
	doc := testDoc()
	doc.ShiftSwaps = []domain.ShiftSwap{
		{Base: domain.Base{ID: "swap-claimed"}, ShiftID: "shift-a", RequesterID: "emp-a", ClaimedByID: "emp-b", Status: domain.SwapClaimed},
		{Base: domain.Base{ID: "swap-open"}, ShiftID: "shift-b", RequesterID: "emp-b", Status: domain.SwapOpen},
	}

	next := r.Reduce(doc, domain.MustAction(domain.ActionDenyShiftSwap, domain.Target{ID: "swap-claimed"}))
	if next.ShiftSwaps[0].Status != domain.SwapDenied {
		t.Fatalf("expected denied, got %s", next.ShiftSwaps[0].Status)
	}

	next = r.Reduce(next, domain.MustAction(domain.ActionCancelShiftSwap, domain.Target{ID: "swap-open"}))
	if next.ShiftSwaps[1].Status != domain.SwapCancelled {
		t.Fatalf("expected cancelled, got %s", next.ShiftSwaps[1].Status)
	}

	// Terminal states stay put.
	next = r.Reduce(next, domain.MustAction(domain.ActionCancelShiftSwap, domain.Target{ID: "swap-claimed"}))
	if next.ShiftSwaps[0].Status != domain.SwapDenied {
		t.Fatalf("denied swap must not be cancellable")
	}
}
