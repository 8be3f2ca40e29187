package core

import (
	"shiftcore/pkg/domain"
)

// cascadeRule is one referential integrity consequence of deleting a record.
// Rules come in three shapes: cascade (dependent records are deleted too),
// null-out (references are cleared but the referencing record survives), and
// filter-membership (the id is removed from a set-valued field).
type cascadeRule struct {
	name  string
	apply func(Document, string) Document
}

func runCascades(doc Document, id string, rules []cascadeRule) Document {
	for _, rule := range rules {
		doc = rule.apply(doc, id)
	}
	return doc
}

var employeeCascades = []cascadeRule{
	{"cascade shifts", func(doc Document, id string) Document {
		removed := map[string]bool{}
		for _, s := range doc.Shifts {
			if s.EmployeeID == id {
				removed[s.ID] = true
			}
		}
		doc.Shifts = removeWhere(doc.Shifts, func(s domain.Shift) bool { return s.EmployeeID == id })
		doc.ShiftBids = removeWhere(doc.ShiftBids, func(b domain.ShiftBid) bool { return removed[b.ShiftID] })
		doc.ShiftSwaps = removeWhere(doc.ShiftSwaps, func(s domain.ShiftSwap) bool { return removed[s.ShiftID] })
		return doc
	}},
	{"cascade time entries", func(doc Document, id string) Document {
		doc.TimeEntries = removeWhere(doc.TimeEntries, func(t domain.TimeEntry) bool { return t.EmployeeID == id })
		return doc
	}},
	{"cascade absences", func(doc Document, id string) Document {
		doc.Absences = removeWhere(doc.Absences, func(a domain.Absence) bool { return a.EmployeeID == id })
		return doc
	}},
	{"cascade timesheets", func(doc Document, id string) Document {
		doc.Timesheets = removeWhere(doc.Timesheets, func(t domain.Timesheet) bool { return t.EmployeeID == id })
		return doc
	}},
	{"cascade training assignments", func(doc Document, id string) Document {
		doc.TrainingAssignments = removeWhere(doc.TrainingAssignments,
			func(a domain.TrainingAssignment) bool { return a.EmployeeID == id })
		return doc
	}},
	{"cascade survey responses", func(doc Document, id string) Document {
		doc.SurveyResponses = removeWhere(doc.SurveyResponses,
			func(s domain.SurveyResponse) bool { return s.EmployeeID == id })
		return doc
	}},
	{"cascade shift bids", func(doc Document, id string) Document {
		doc.ShiftBids = removeWhere(doc.ShiftBids, func(b domain.ShiftBid) bool { return b.EmployeeID == id })
		return doc
	}},
	{"cascade provider tags", func(doc Document, id string) Document {
		doc.ProviderAssistantTags = removeWhere(doc.ProviderAssistantTags,
			func(t domain.ProviderAssistantTag) bool { return t.EmployeeID == id })
		return doc
	}},
	{"cascade or reopen swaps", func(doc Document, id string) Document {
		doc.ShiftSwaps = removeWhere(doc.ShiftSwaps, func(s domain.ShiftSwap) bool { return s.RequesterID == id })
		for i, s := range doc.ShiftSwaps {
			if s.ClaimedByID == id && s.Status == domain.SwapClaimed {
				doc.ShiftSwaps[i].ClaimedByID = ""
				doc.ShiftSwaps[i].Status = domain.SwapOpen
			}
		}
		return doc
	}},
	{"null out paystubs", func(doc Document, id string) Document {
		for i, p := range doc.Paystubs {
			if p.EmployeeID == id {
				doc.Paystubs[i].EmployeeID = ""
				doc.Paystubs[i].Status = domain.PaystubUnmatched
			}
		}
		return doc
	}},
	{"filter group membership", func(doc Document, id string) Document {
		for i := range doc.Groups {
			doc.Groups[i].EmployeeIDs = filterString(doc.Groups[i].EmployeeIDs, id)
		}
		return doc
	}},
	{"filter conversation membership", func(doc Document, id string) Document {
		for i := range doc.Conversations {
			doc.Conversations[i].ParticipantIDs = filterString(doc.Conversations[i].ParticipantIDs, id)
			delete(doc.Conversations[i].ReadBy, id)
		}
		return doc
	}},
}

// deleteEmployee removes an employee and every dependent record. Deleting the
// current user clears the session pointer rather than electing a successor.
func deleteEmployee(doc Document, id string) Document {
	if _, found := doc.FindEmployee(id); !found {
		return doc
	}
	doc.Employees = removeByID(doc.Employees, id)
	doc = runCascades(doc, id, employeeCascades)
	if doc.CurrentUserID == id {
		doc.CurrentUserID = ""
	}
	return doc
}

// deleteLocation removes a location and everything scoped to it. The last
// location can never be deleted. Employees whose only location this was are
// deleted with their own cascades; multi-location employees just lose the id.
func deleteLocation(doc Document, id string) Document {
	if len(doc.Locations) <= 1 {
		return doc
	}
	if _, found := doc.FindLocation(id); !found {
		return doc
	}
	doc.Locations = removeByID(doc.Locations, id)

	var soleLocation []string
	for _, e := range doc.Employees {
		if containsString(e.LocationIDs, id) && len(e.LocationIDs) == 1 {
			soleLocation = append(soleLocation, e.ID)
		}
	}
	for _, empID := range soleLocation {
		doc = deleteEmployee(doc, empID)
	}
	for i := range doc.Employees {
		doc.Employees[i].LocationIDs = filterString(doc.Employees[i].LocationIDs, id)
	}

	var shiftIDs []string
	for _, s := range doc.Shifts {
		if s.LocationID == id {
			shiftIDs = append(shiftIDs, s.ID)
		}
	}
	for _, shiftID := range shiftIDs {
		doc = deleteShift(doc, shiftID)
	}
	doc.SalesEntries = removeWhere(doc.SalesEntries, func(s domain.SalesEntry) bool { return s.LocationID == id })

	if doc.CurrentLocationID == id {
		doc.CurrentLocationID = doc.Locations[0].ID
	}
	return doc
}

// deleteShift removes a shift and the bids and swaps that reference it.
func deleteShift(doc Document, id string) Document {
	doc.Shifts = removeByID(doc.Shifts, id)
	doc.ShiftBids = removeWhere(doc.ShiftBids, func(b domain.ShiftBid) bool { return b.ShiftID == id })
	doc.ShiftSwaps = removeWhere(doc.ShiftSwaps, func(s domain.ShiftSwap) bool { return s.ShiftID == id })
	return doc
}

// deletePosition removes a position and clears it from shifts scheduled
// under its name. Shifts themselves survive.
func deletePosition(doc Document, id string) Document {
	var name string
	found := false
	for _, p := range doc.Positions {
		if p.ID == id {
			name = p.Name
			found = true
			break
		}
	}
	if !found {
		return doc
	}
	doc.Positions = removeByID(doc.Positions, id)
	if name == "" {
		return doc
	}
	for i, s := range doc.Shifts {
		if s.Position == name {
			doc.Shifts[i].Position = ""
		}
	}
	return doc
}

// deleteTaskTemplate trims the template id from shift checklists; no shift is
// ever deleted on its account.
func deleteTaskTemplate(doc Document, id string) Document {
	doc.TaskTemplates = removeByID(doc.TaskTemplates, id)
	for i := range doc.Shifts {
		doc.Shifts[i].TaskTemplateIDs = filterString(doc.Shifts[i].TaskTemplateIDs, id)
	}
	return doc
}

// deleteCustomer clears the customer reference on invoices rather than
// cascading into billing history.
func deleteCustomer(doc Document, id string) Document {
	doc.Customers = removeByID(doc.Customers, id)
	for i, inv := range doc.Invoices {
		if inv.CustomerID == id {
			doc.Invoices[i].CustomerID = ""
		}
	}
	return doc
}

// deleteSubcontractor removes a subcontractor with its revenue, payment, and
// tag history.
func deleteSubcontractor(doc Document, id string) Document {
	doc.Subcontractors = removeByID(doc.Subcontractors, id)
	doc.SubcontractorRevenues = removeWhere(doc.SubcontractorRevenues,
		func(r domain.SubcontractorRevenue) bool { return r.SubcontractorID == id })
	doc.SubcontractorPayments = removeWhere(doc.SubcontractorPayments,
		func(p domain.SubcontractorPayment) bool { return p.SubcontractorID == id })
	doc.ProviderAssistantTags = removeWhere(doc.ProviderAssistantTags,
		func(t domain.ProviderAssistantTag) bool { return t.SubcontractorID == id })
	return doc
}
