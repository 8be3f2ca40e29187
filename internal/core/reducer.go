package core

import (
	"encoding/json"
	"time"

	"shiftcore/pkg/domain"
)

// Reducer is the pure action dispatcher: Reduce maps (document, action) to
// the next document. It is total, so unknown action types, unknown target
// ids, and malformed payloads all return the input unchanged. It carries no
// state beyond its injected clock, id source, and sample provider.
type Reducer struct {
	now    func() time.Time
	newID  func() string
	sample SampleProvider
}

// NewReducer constructs a reducer. The sample provider backs RESET_DATA; a
// nil provider makes RESET_DATA a no-op. Clock and id source may be nil to
// use wall time and NewID.
func NewReducer(sample SampleProvider, clock Clock, newID func() string) *Reducer {
	r := &Reducer{
		now:    func() time.Time { return time.Now().UTC() },
		newID:  NewID,
		sample: sample,
	}
	if clock != nil {
		r.now = clock.Now
	}
	if newID != nil {
		r.newID = newID
	}
	return r
}

func (r *Reducer) timestamp() string {
	return r.now().Format(time.RFC3339)
}

func (r *Reducer) fillID(id string) string {
	if id != "" {
		return id
	}
	return r.newID()
}

// Reduce applies one action. The input document is never mutated; handlers
// work on a deep clone and the result is returned wholesale.
func (r *Reducer) Reduce(doc Document, action Action) Document {
	next := doc.Clone()
	switch action.Type {
	case domain.ActionAddLocation, domain.ActionUpdateLocation, domain.ActionDeleteLocation,
		domain.ActionSetCurrentLocation, domain.ActionAddPosition, domain.ActionUpdatePosition,
		domain.ActionDeletePosition:
		return r.reduceLocations(next, action)
	case domain.ActionAddEmployee, domain.ActionUpdateEmployee, domain.ActionDeleteEmployee,
		domain.ActionSetCurrentUser:
		return r.reduceEmployees(next, action)
	case domain.ActionAddShift, domain.ActionUpdateShift, domain.ActionDeleteShift,
		domain.ActionPublishShifts, domain.ActionAddShiftBid, domain.ActionApproveShiftBid,
		domain.ActionDenyShiftBid, domain.ActionAddShiftSwap, domain.ActionClaimShiftSwap,
		domain.ActionApproveShiftSwap, domain.ActionDenyShiftSwap, domain.ActionCancelShiftSwap:
		return r.reduceShifts(next, action)
	case domain.ActionClockIn, domain.ActionClockOut, domain.ActionUpdateTimeEntry,
		domain.ActionDeleteTimeEntry, domain.ActionAddAbsence, domain.ActionUpdateAbsence,
		domain.ActionApproveAbsence, domain.ActionDenyAbsence, domain.ActionDeleteAbsence:
		return r.reduceTimekeeping(next, action)
	case domain.ActionAddSalesEntry, domain.ActionBulkUpdateSales, domain.ActionDeleteSalesEntry,
		domain.ActionAddCustomer, domain.ActionUpdateCustomer, domain.ActionDeleteCustomer,
		domain.ActionAddInvoice, domain.ActionUpdateInvoice, domain.ActionDeleteInvoice,
		domain.ActionAddSubcontractor, domain.ActionUpdateSubcontractor, domain.ActionDeleteSubcontractor,
		domain.ActionBulkImportRevenue, domain.ActionAddSubcontractorPayment,
		domain.ActionDeleteSubcontractorPayment, domain.ActionAddProviderTag, domain.ActionDeleteProviderTag:
		return r.reduceBilling(next, action)
	case domain.ActionAddPost, domain.ActionUpdatePost, domain.ActionDeletePost,
		domain.ActionToggleLike, domain.ActionAddComment, domain.ActionDeleteComment,
		domain.ActionAddTask, domain.ActionUpdateTask, domain.ActionDeleteTask,
		domain.ActionAddSubtask, domain.ActionToggleSubtask, domain.ActionDeleteSubtask,
		domain.ActionAddTaskTemplate, domain.ActionUpdateTaskTemplate, domain.ActionDeleteTaskTemplate,
		domain.ActionAddTrainingProgram, domain.ActionUpdateTrainingProgram, domain.ActionDeleteTrainingProgram,
		domain.ActionAssignTraining, domain.ActionStartTraining, domain.ActionCompleteTrainingModule,
		domain.ActionDeleteTrainingAssignment, domain.ActionAddSurveyTemplate, domain.ActionUpdateSurveyTemplate,
		domain.ActionDeleteSurveyTemplate, domain.ActionAssignSurvey, domain.ActionSubmitSurveyResponse,
		domain.ActionAddConversation, domain.ActionSendMessage, domain.ActionMarkConversationRead,
		domain.ActionDeleteConversation:
		return r.reduceEngagement(next, action)
	case domain.ActionImportPaystubs, domain.ActionMatchPaystub, domain.ActionDeletePaystub,
		domain.ActionAddTimesheet, domain.ActionSubmitTimesheet, domain.ActionApproveTimesheet,
		domain.ActionRejectTimesheet, domain.ActionResubmitTimesheet:
		return r.reducePayroll(next, action)
	case domain.ActionAddGroup, domain.ActionUpdateGroup, domain.ActionDeleteGroup,
		domain.ActionUpdateCompanyProfile, domain.ActionLogAuditEvent, domain.ActionResetData:
		return r.reduceSettings(next, action)
	default:
		return doc
	}
}

// decode unmarshals an action payload. A failed decode makes the action a
// silent no-op.
func decode[T any](raw json.RawMessage) (T, bool) {
	var out T
	if len(raw) == 0 {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false
	}
	return out, true
}

type record interface {
	RecordID() string
}

// mergePatch shallow-merges the patch fields over the record via its JSON
// form, preserving the record id. A patch that fails to round-trip leaves
// the record untouched.
func mergePatch[T record](rec T, patch domain.Patch) T {
	base, err := json.Marshal(rec)
	if err != nil {
		return rec
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return rec
	}
	for key, value := range patch {
		if key == "id" {
			continue
		}
		fields[key] = value
	}
	merged, err := json.Marshal(fields)
	if err != nil {
		return rec
	}
	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return rec
	}
	return out
}

// patchByID applies a merge patch to the matching record in place. Unknown
// ids leave the slice untouched.
func patchByID[T record](list []T, patch domain.Patch) []T {
	id := patch.TargetID()
	if id == "" {
		return list
	}
	for i, rec := range list {
		if rec.RecordID() == id {
			list[i] = mergePatch(rec, patch)
			break
		}
	}
	return list
}

// updateByID replaces the matching record with apply's result.
func updateByID[T record](list []T, id string, apply func(T) T) []T {
	for i, rec := range list {
		if rec.RecordID() == id {
			list[i] = apply(rec)
			break
		}
	}
	return list
}

// removeByID filters out the record with the given id.
func removeByID[T record](list []T, id string) []T {
	out := list[:0]
	for _, rec := range list {
		if rec.RecordID() != id {
			out = append(out, rec)
		}
	}
	return out
}

// removeWhere filters out every record matching the predicate.
func removeWhere[T any](list []T, match func(T) bool) []T {
	out := list[:0]
	for _, rec := range list {
		if !match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// toggleMembership flips the presence of an id in a set-like string slice.
func toggleMembership(set []string, id string) []string {
	for i, member := range set {
		if member == id {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, id)
}

func containsString(values []string, id string) bool {
	for _, v := range values {
		if v == id {
			return true
		}
	}
	return false
}

func filterString(values []string, id string) []string {
	out := values[:0]
	for _, v := range values {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
