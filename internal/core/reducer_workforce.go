package core

import (
	"shiftcore/pkg/domain"
)

func (r *Reducer) reduceEmployees(doc Document, action Action) Document {
	switch action.Type {
	case domain.ActionAddEmployee:
		emp, ok := decode[domain.Employee](action.Payload)
		if !ok {
			return doc
		}
		emp.ID = r.fillID(emp.ID)
		if emp.AccessLevel.Rank() < 0 {
			emp.AccessLevel = domain.AccessEmployee
		}
		if len(emp.LocationIDs) == 0 {
			switch {
			case doc.CurrentLocationID != "":
				emp.LocationIDs = []string{doc.CurrentLocationID}
			case len(doc.Locations) > 0:
				emp.LocationIDs = []string{doc.Locations[0].ID}
			default:
				return doc
			}
		}
		if emp.Roles == nil {
			emp.Roles = []string{}
		}
		if emp.Wages == nil {
			emp.Wages = []domain.Wage{}
		}
		if emp.PTOBalance == (domain.PTOBalance{}) {
			emp.PTOBalance = domain.DefaultPTOBalance()
		}
		doc.Employees = append(doc.Employees, emp)
	case domain.ActionUpdateEmployee:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.Employees = patchByID(doc.Employees, patch)
	case domain.ActionDeleteEmployee:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc = deleteEmployee(doc, target.ID)
	case domain.ActionSetCurrentUser:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		if _, found := doc.FindEmployee(target.ID); found {
			doc.CurrentUserID = target.ID
		}
	}
	return doc
}

func (r *Reducer) reduceTimekeeping(doc Document, action Action) Document {
	switch action.Type {
	case domain.ActionClockIn:
		payload, ok := decode[domain.ClockInPayload](action.Payload)
		if !ok {
			return doc
		}
		if _, found := doc.FindEmployee(payload.EmployeeID); !found {
			return doc
		}
		if _, active := doc.ActiveTimeEntry(payload.EmployeeID); active {
			return doc
		}
		locationID := payload.LocationID
		if locationID == "" {
			locationID = doc.CurrentLocationID
		}
		geofence := payload.GeofenceStatus
		if geofence == "" {
			geofence = domain.GeofenceUnknown
		}
		doc.TimeEntries = append(doc.TimeEntries, domain.TimeEntry{
			Base:           domain.Base{ID: r.newID()},
			EmployeeID:     payload.EmployeeID,
			LocationID:     locationID,
			ClockIn:        r.timestamp(),
			Status:         domain.TimeEntryActive,
			GeofenceStatus: geofence,
		})
	case domain.ActionClockOut:
		payload, ok := decode[domain.ClockOutPayload](action.Payload)
		if !ok {
			return doc
		}
		entry, active := doc.ActiveTimeEntry(payload.EmployeeID)
		if !active {
			return doc
		}
		doc.TimeEntries = updateByID(doc.TimeEntries, entry.ID, func(t domain.TimeEntry) domain.TimeEntry {
			t.ClockOut = r.timestamp()
			t.Status = domain.TimeEntryCompleted
			return t
		})
	case domain.ActionUpdateTimeEntry:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.TimeEntries = patchByID(doc.TimeEntries, patch)
	case domain.ActionDeleteTimeEntry:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.TimeEntries = removeByID(doc.TimeEntries, target.ID)
	case domain.ActionAddAbsence:
		absence, ok := decode[domain.Absence](action.Payload)
		if !ok {
			return doc
		}
		absence.ID = r.fillID(absence.ID)
		if absence.Status == "" {
			absence.Status = domain.AbsencePending
		}
		doc.Absences = append(doc.Absences, absence)
	case domain.ActionUpdateAbsence:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.Absences = patchByID(doc.Absences, patch)
	case domain.ActionApproveAbsence:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.Absences = updateByID(doc.Absences, target.ID, func(a domain.Absence) domain.Absence {
			if a.Status == domain.AbsencePending {
				a.Status = domain.AbsenceApproved
			}
			return a
		})
	case domain.ActionDenyAbsence:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.Absences = updateByID(doc.Absences, target.ID, func(a domain.Absence) domain.Absence {
			if a.Status == domain.AbsencePending {
				a.Status = domain.AbsenceDenied
			}
			return a
		})
	case domain.ActionDeleteAbsence:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.Absences = removeByID(doc.Absences, target.ID)
	}
	return doc
}
