package core

import (
	"encoding/json"

	"shiftcore/pkg/domain"
)

func (r *Reducer) reducePayroll(doc Document, action Action) Document {
	switch action.Type {
	case domain.ActionImportPaystubs:
		stubs, ok := decode[[]domain.Paystub](action.Payload)
		if !ok {
			return doc
		}
		for _, stub := range stubs {
			stub.ID = r.fillID(stub.ID)
			doc.Paystubs = append(doc.Paystubs, matchPaystub(doc, stub))
		}
	case domain.ActionMatchPaystub:
		payload, ok := decode[domain.MatchPaystubPayload](action.Payload)
		if !ok {
			return doc
		}
		if _, found := doc.FindEmployee(payload.EmployeeID); !found {
			return doc
		}
		doc.Paystubs = updateByID(doc.Paystubs, payload.ID, func(p domain.Paystub) domain.Paystub {
			p.EmployeeID = payload.EmployeeID
			p.Status = domain.PaystubMatched
			return p
		})
	case domain.ActionDeletePaystub:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.Paystubs = removeByID(doc.Paystubs, target.ID)
	case domain.ActionAddTimesheet:
		sheet, ok := decode[domain.Timesheet](action.Payload)
		if !ok {
			return doc
		}
		if _, found := doc.FindEmployee(sheet.EmployeeID); !found {
			return doc
		}
		sheet.ID = r.fillID(sheet.ID)
		sheet.Status = domain.TimesheetPending
		doc.Timesheets = append(doc.Timesheets, sheet)
	case domain.ActionSubmitTimesheet:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.Timesheets = updateByID(doc.Timesheets, target.ID, func(t domain.Timesheet) domain.Timesheet {
			if t.Status == domain.TimesheetPending {
				t.Status = domain.TimesheetSubmitted
				t.SubmittedAt = r.timestamp()
			}
			return t
		})
	case domain.ActionApproveTimesheet:
		payload, ok := decode[domain.TimesheetDecisionPayload](action.Payload)
		if !ok {
			return doc
		}
		doc.Timesheets = updateByID(doc.Timesheets, payload.ID, func(t domain.Timesheet) domain.Timesheet {
			if t.Status == domain.TimesheetSubmitted {
				t.Status = domain.TimesheetApproved
				t.DecidedByID = payload.DecidedByID
				if payload.Notes != "" {
					t.Notes = payload.Notes
				}
			}
			return t
		})
	case domain.ActionRejectTimesheet:
		payload, ok := decode[domain.TimesheetDecisionPayload](action.Payload)
		if !ok {
			return doc
		}
		doc.Timesheets = updateByID(doc.Timesheets, payload.ID, func(t domain.Timesheet) domain.Timesheet {
			if t.Status == domain.TimesheetSubmitted {
				t.Status = domain.TimesheetRejected
				t.DecidedByID = payload.DecidedByID
				if payload.Notes != "" {
					t.Notes = payload.Notes
				}
			}
			return t
		})
	case domain.ActionResubmitTimesheet:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.Timesheets = updateByID(doc.Timesheets, target.ID, func(t domain.Timesheet) domain.Timesheet {
			if t.Status == domain.TimesheetRejected {
				t.Status = domain.TimesheetSubmitted
				t.SubmittedAt = r.timestamp()
				t.DecidedByID = ""
			}
			return t
		})
	}
	return doc
}

// matchPaystub resolves an imported stub to an employee by id, then by exact
// name. Unresolved stubs stay unmatched with the employee id cleared.
func matchPaystub(doc Document, stub domain.Paystub) domain.Paystub {
	if stub.EmployeeID != "" {
		if _, found := doc.FindEmployee(stub.EmployeeID); found {
			stub.Status = domain.PaystubMatched
			return stub
		}
	}
	for _, e := range doc.Employees {
		if e.Name == stub.EmployeeName {
			stub.EmployeeID = e.ID
			stub.Status = domain.PaystubMatched
			return stub
		}
	}
	stub.EmployeeID = ""
	stub.Status = domain.PaystubUnmatched
	return stub
}

func (r *Reducer) reduceSettings(doc Document, action Action) Document {
	switch action.Type {
	case domain.ActionAddGroup:
		group, ok := decode[domain.Group](action.Payload)
		if !ok {
			return doc
		}
		group.ID = r.fillID(group.ID)
		if group.EmployeeIDs == nil {
			group.EmployeeIDs = []string{}
		}
		doc.Groups = append(doc.Groups, group)
	case domain.ActionUpdateGroup:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.Groups = patchByID(doc.Groups, patch)
	case domain.ActionDeleteGroup:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.Groups = removeByID(doc.Groups, target.ID)
		for i := range doc.Employees {
			doc.Employees[i].GroupIDs = filterString(doc.Employees[i].GroupIDs, target.ID)
		}
	case domain.ActionUpdateCompanyProfile:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.CompanyProfile = mergeCompanyProfile(doc.CompanyProfile, patch)
	case domain.ActionLogAuditEvent:
		entry, ok := decode[domain.AuditLogEntry](action.Payload)
		if !ok {
			return doc
		}
		entry.ID = r.fillID(entry.ID)
		if entry.Timestamp == "" {
			entry.Timestamp = r.timestamp()
		}
		doc.AuditLog = append(doc.AuditLog, entry)
	case domain.ActionResetData:
		if r.sample == nil {
			return doc
		}
		fresh := r.sample()
		fresh.SchemaVersion = domain.CurrentSchemaVersion
		return fresh
	}
	return doc
}

func mergeCompanyProfile(profile domain.CompanyProfile, patch domain.Patch) domain.CompanyProfile {
	base, err := json.Marshal(profile)
	if err != nil {
		return profile
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return profile
	}
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	for key, value := range patch {
		fields[key] = value
	}
	merged, err := json.Marshal(fields)
	if err != nil {
		return profile
	}
	var out domain.CompanyProfile
	if err := json.Unmarshal(merged, &out); err != nil {
		return profile
	}
	return out
}
