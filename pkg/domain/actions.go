package domain

import "encoding/json"

// ActionType names one requested state transition. The set is closed; the
// reducer returns the input document unchanged for any type it does not
// recognize.
type ActionType string

// Location and position actions.
const (
	ActionAddLocation        ActionType = "ADD_LOCATION"
	ActionUpdateLocation     ActionType = "UPDATE_LOCATION"
	ActionDeleteLocation     ActionType = "DELETE_LOCATION"
	ActionSetCurrentLocation ActionType = "SET_CURRENT_LOCATION"
	ActionAddPosition        ActionType = "ADD_POSITION"
	ActionUpdatePosition     ActionType = "UPDATE_POSITION"
	ActionDeletePosition     ActionType = "DELETE_POSITION"
)

// Employee actions.
const (
	ActionAddEmployee    ActionType = "ADD_EMPLOYEE"
	ActionUpdateEmployee ActionType = "UPDATE_EMPLOYEE"
	ActionDeleteEmployee ActionType = "DELETE_EMPLOYEE"
	ActionSetCurrentUser ActionType = "SET_CURRENT_USER"
)

// Shift, bid, and swap actions.
const (
	ActionAddShift         ActionType = "ADD_SHIFT"
	ActionUpdateShift      ActionType = "UPDATE_SHIFT"
	ActionDeleteShift      ActionType = "DELETE_SHIFT"
	ActionPublishShifts    ActionType = "PUBLISH_SHIFTS"
	ActionAddShiftBid      ActionType = "ADD_SHIFT_BID"
	ActionApproveShiftBid  ActionType = "APPROVE_SHIFT_BID"
	ActionDenyShiftBid     ActionType = "DENY_SHIFT_BID"
	ActionAddShiftSwap     ActionType = "ADD_SHIFT_SWAP"
	ActionClaimShiftSwap   ActionType = "CLAIM_SHIFT_SWAP"
	ActionApproveShiftSwap ActionType = "APPROVE_SHIFT_SWAP"
	ActionDenyShiftSwap    ActionType = "DENY_SHIFT_SWAP"
	ActionCancelShiftSwap  ActionType = "CANCEL_SHIFT_SWAP"
)

// Time clock and absence actions.
const (
	ActionClockIn         ActionType = "CLOCK_IN"
	ActionClockOut        ActionType = "CLOCK_OUT"
	ActionUpdateTimeEntry ActionType = "UPDATE_TIME_ENTRY"
	ActionDeleteTimeEntry ActionType = "DELETE_TIME_ENTRY"
	ActionAddAbsence      ActionType = "ADD_ABSENCE"
	ActionUpdateAbsence   ActionType = "UPDATE_ABSENCE"
	ActionApproveAbsence  ActionType = "APPROVE_ABSENCE"
	ActionDenyAbsence     ActionType = "DENY_ABSENCE"
	ActionDeleteAbsence   ActionType = "DELETE_ABSENCE"
)

// Sales actions.
const (
	ActionAddSalesEntry    ActionType = "ADD_SALES_ENTRY"
	ActionBulkUpdateSales  ActionType = "BULK_UPDATE_SALES"
	ActionDeleteSalesEntry ActionType = "DELETE_SALES_ENTRY"
)

// Feed actions.
const (
	ActionAddPost       ActionType = "ADD_POST"
	ActionUpdatePost    ActionType = "UPDATE_POST"
	ActionDeletePost    ActionType = "DELETE_POST"
	ActionToggleLike    ActionType = "TOGGLE_LIKE"
	ActionAddComment    ActionType = "ADD_COMMENT"
	ActionDeleteComment ActionType = "DELETE_COMMENT"
)

// Task and template actions.
const (
	ActionAddTask            ActionType = "ADD_TASK"
	ActionUpdateTask         ActionType = "UPDATE_TASK"
	ActionDeleteTask         ActionType = "DELETE_TASK"
	ActionAddSubtask         ActionType = "ADD_SUBTASK"
	ActionToggleSubtask      ActionType = "TOGGLE_SUBTASK"
	ActionDeleteSubtask      ActionType = "DELETE_SUBTASK"
	ActionAddTaskTemplate    ActionType = "ADD_TASK_TEMPLATE"
	ActionUpdateTaskTemplate ActionType = "UPDATE_TASK_TEMPLATE"
	ActionDeleteTaskTemplate ActionType = "DELETE_TASK_TEMPLATE"
)

// Training actions.
const (
	ActionAddTrainingProgram       ActionType = "ADD_TRAINING_PROGRAM"
	ActionUpdateTrainingProgram    ActionType = "UPDATE_TRAINING_PROGRAM"
	ActionDeleteTrainingProgram    ActionType = "DELETE_TRAINING_PROGRAM"
	ActionAssignTraining           ActionType = "ASSIGN_TRAINING"
	ActionStartTraining            ActionType = "START_TRAINING"
	ActionCompleteTrainingModule   ActionType = "COMPLETE_TRAINING_MODULE"
	ActionDeleteTrainingAssignment ActionType = "DELETE_TRAINING_ASSIGNMENT"
)

// Survey actions.
const (
	ActionAddSurveyTemplate    ActionType = "ADD_SURVEY_TEMPLATE"
	ActionUpdateSurveyTemplate ActionType = "UPDATE_SURVEY_TEMPLATE"
	ActionDeleteSurveyTemplate ActionType = "DELETE_SURVEY_TEMPLATE"
	ActionAssignSurvey         ActionType = "ASSIGN_SURVEY"
	ActionSubmitSurveyResponse ActionType = "SUBMIT_SURVEY_RESPONSE"
)

// Billing actions.
const (
	ActionAddCustomer    ActionType = "ADD_CUSTOMER"
	ActionUpdateCustomer ActionType = "UPDATE_CUSTOMER"
	ActionDeleteCustomer ActionType = "DELETE_CUSTOMER"
	ActionAddInvoice     ActionType = "ADD_INVOICE"
	ActionUpdateInvoice  ActionType = "UPDATE_INVOICE"
	ActionDeleteInvoice  ActionType = "DELETE_INVOICE"
)

// Messaging actions.
const (
	ActionAddConversation      ActionType = "ADD_CONVERSATION"
	ActionSendMessage          ActionType = "SEND_MESSAGE"
	ActionMarkConversationRead ActionType = "MARK_CONVERSATION_READ"
	ActionDeleteConversation   ActionType = "DELETE_CONVERSATION"
)

// Subcontracting actions.
const (
	ActionAddSubcontractor           ActionType = "ADD_SUBCONTRACTOR"
	ActionUpdateSubcontractor        ActionType = "UPDATE_SUBCONTRACTOR"
	ActionDeleteSubcontractor        ActionType = "DELETE_SUBCONTRACTOR"
	ActionBulkImportRevenue          ActionType = "BULK_IMPORT_SUBCONTRACTOR_REVENUE"
	ActionAddSubcontractorPayment    ActionType = "ADD_SUBCONTRACTOR_PAYMENT"
	ActionDeleteSubcontractorPayment ActionType = "DELETE_SUBCONTRACTOR_PAYMENT"
	ActionAddProviderTag             ActionType = "ADD_PROVIDER_TAG"
	ActionDeleteProviderTag          ActionType = "DELETE_PROVIDER_TAG"
)

// Payroll actions.
const (
	ActionImportPaystubs    ActionType = "IMPORT_PAYSTUBS"
	ActionMatchPaystub      ActionType = "MATCH_PAYSTUB"
	ActionDeletePaystub     ActionType = "DELETE_PAYSTUB"
	ActionAddTimesheet      ActionType = "ADD_TIMESHEET"
	ActionSubmitTimesheet   ActionType = "SUBMIT_TIMESHEET"
	ActionApproveTimesheet  ActionType = "APPROVE_TIMESHEET"
	ActionRejectTimesheet   ActionType = "REJECT_TIMESHEET"
	ActionResubmitTimesheet ActionType = "RESUBMIT_TIMESHEET"
)

// Group, settings, and audit actions.
const (
	ActionAddGroup             ActionType = "ADD_GROUP"
	ActionUpdateGroup          ActionType = "UPDATE_GROUP"
	ActionDeleteGroup          ActionType = "DELETE_GROUP"
	ActionUpdateCompanyProfile ActionType = "UPDATE_COMPANY_PROFILE"
	ActionLogAuditEvent        ActionType = "LOG_AUDIT_EVENT"
	ActionResetData            ActionType = "RESET_DATA"
)

// Action is the {type, payload} message describing a requested transition.
// Payload shapes are fixed per type; malformed payloads make the action a
// silent no-op, never an error.
type Action struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewAction marshals the payload into an Action of the given type.
func NewAction(t ActionType, payload any) (Action, error) {
	if payload == nil {
		return Action{Type: t}, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Action{}, err
	}
	return Action{Type: t, Payload: raw}, nil
}

// MustAction is NewAction for payloads known to marshal; it panics otherwise.
func MustAction(t ActionType, payload any) Action {
	action, err := NewAction(t, payload)
	if err != nil {
		panic(err)
	}
	return action
}

// Target addresses an existing record by id. Deletes and most workflow
// transitions use it as their payload.
type Target struct {
	ID string `json:"id"`
}

// Patch is a merge-patch payload for UPDATE_* actions: the target id plus the
// fields to shallow-merge onto the matching record.
type Patch map[string]json.RawMessage

// TargetID extracts the id field of a patch, if present.
func (p Patch) TargetID() string {
	raw, ok := p["id"]
	if !ok {
		return ""
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return ""
	}
	return id
}

// ClockInPayload starts a time entry for an employee.
type ClockInPayload struct {
	EmployeeID     string         `json:"employeeId"`
	LocationID     string         `json:"locationId,omitempty"`
	GeofenceStatus GeofenceStatus `json:"geofenceStatus,omitempty"`
}

// ClockOutPayload closes the employee's active time entry.
type ClockOutPayload struct {
	EmployeeID string `json:"employeeId"`
}

// ClaimShiftSwapPayload records which employee claims an open swap.
type ClaimShiftSwapPayload struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
}

// PublishShiftsPayload promotes the listed draft shifts to published.
type PublishShiftsPayload struct {
	ShiftIDs []string `json:"shiftIds"`
}

// ToggleLikePayload flips one employee's like on a post.
type ToggleLikePayload struct {
	PostID     string `json:"postId"`
	EmployeeID string `json:"employeeId"`
}

// AddCommentPayload appends a comment to a post.
type AddCommentPayload struct {
	PostID  string  `json:"postId"`
	Comment Comment `json:"comment"`
}

// DeleteCommentPayload removes a comment from a post.
type DeleteCommentPayload struct {
	PostID    string `json:"postId"`
	CommentID string `json:"commentId"`
}

// AddSubtaskPayload appends a subtask to a task.
type AddSubtaskPayload struct {
	TaskID  string  `json:"taskId"`
	Subtask Subtask `json:"subtask"`
}

// SubtaskTarget addresses a subtask within its parent task.
type SubtaskTarget struct {
	TaskID    string `json:"taskId"`
	SubtaskID string `json:"subtaskId"`
}

// AssignTrainingPayload creates an assignment linking a program to an
// employee.
type AssignTrainingPayload struct {
	ProgramID  string `json:"programId"`
	EmployeeID string `json:"employeeId"`
}

// CompleteTrainingModulePayload marks one module complete on an assignment.
type CompleteTrainingModulePayload struct {
	AssignmentID string `json:"assignmentId"`
	ModuleID     string `json:"moduleId"`
}

// AssignSurveyPayload creates a pending response linking a template to an
// employee.
type AssignSurveyPayload struct {
	TemplateID string `json:"templateId"`
	EmployeeID string `json:"employeeId"`
}

// SubmitSurveyPayload completes a pending response with answers.
type SubmitSurveyPayload struct {
	ID      string         `json:"id"`
	Answers []SurveyAnswer `json:"answers"`
}

// SendMessagePayload appends a message to a conversation.
type SendMessagePayload struct {
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	Body           string `json:"body"`
}

// MarkConversationReadPayload stamps a participant's read marker.
type MarkConversationReadPayload struct {
	ConversationID string `json:"conversationId"`
	EmployeeID     string `json:"employeeId"`
}

// MatchPaystubPayload resolves an unmatched paystub to an employee.
type MatchPaystubPayload struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
}

// TimesheetDecisionPayload approves or rejects a submitted timesheet.
type TimesheetDecisionPayload struct {
	ID          string `json:"id"`
	DecidedByID string `json:"decidedById,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
