// Package domain defines the persistent entities, the Document aggregate,
// and the action surface of the shiftcore workforce-management core.
package domain

// EntityType identifies the kind of record stored in the document.
type EntityType string

// Supported entity type identifiers used in audit entries and cascade rules.
const (
	// EntityLocation identifies a business location record.
	EntityLocation EntityType = "location"
	// EntityPosition identifies a schedulable position record.
	EntityPosition EntityType = "position"
	// EntityEmployee identifies an employee record.
	EntityEmployee EntityType = "employee"
	// EntityShift identifies a scheduled shift record.
	EntityShift EntityType = "shift"
	// EntityShiftBid identifies an open-shift bid record.
	EntityShiftBid EntityType = "shift_bid"
	// EntityShiftSwap identifies a shift-swap request record.
	EntityShiftSwap EntityType = "shift_swap"
	// EntityTimeEntry identifies a time-clock entry record.
	EntityTimeEntry EntityType = "time_entry"
	// EntityAbsence identifies an absence request record.
	EntityAbsence EntityType = "absence"
	// EntitySalesEntry identifies a sales figure record.
	EntitySalesEntry EntityType = "sales_entry"
	// EntityPost identifies a feed post record.
	EntityPost EntityType = "post"
	// EntityTask identifies a task record.
	EntityTask EntityType = "task"
	// EntityTaskTemplate identifies a reusable task checklist record.
	EntityTaskTemplate EntityType = "task_template"
	// EntityTrainingProgram identifies a training program record.
	EntityTrainingProgram EntityType = "training_program"
	// EntityTrainingAssignment identifies a training assignment record.
	EntityTrainingAssignment EntityType = "training_assignment"
	// EntitySurveyTemplate identifies a survey template record.
	EntitySurveyTemplate EntityType = "survey_template"
	// EntitySurveyResponse identifies a survey response record.
	EntitySurveyResponse EntityType = "survey_response"
	// EntityInvoice identifies an invoice record.
	EntityInvoice EntityType = "invoice"
	// EntityCustomer identifies a billing customer record.
	EntityCustomer EntityType = "customer"
	// EntityConversation identifies a messaging conversation record.
	EntityConversation EntityType = "conversation"
	// EntityMessage identifies a conversation message record.
	EntityMessage EntityType = "message"
	// EntitySubcontractor identifies a subcontractor record.
	EntitySubcontractor EntityType = "subcontractor"
	// EntitySubcontractorRevenue identifies an imported revenue figure.
	EntitySubcontractorRevenue EntityType = "subcontractor_revenue"
	// EntitySubcontractorPayment identifies a subcontractor payment record.
	EntitySubcontractorPayment EntityType = "subcontractor_payment"
	// EntityProviderTag identifies a provider/assistant pairing tag.
	EntityProviderTag EntityType = "provider_assistant_tag"
	// EntityPaystub identifies an imported paystub record.
	EntityPaystub EntityType = "paystub"
	// EntityTimesheet identifies a payroll timesheet record.
	EntityTimesheet EntityType = "timesheet"
	// EntityGroup identifies an employee group record.
	EntityGroup EntityType = "group"
	// EntityAuditLogEntry identifies an append-only audit log record.
	EntityAuditLogEntry EntityType = "audit_log_entry"
)

// ShiftStatus enumerates the publication state of a scheduled shift.
type ShiftStatus string

// Canonical shift statuses. Any other persisted value is coerced to draft on load.
const (
	ShiftStatusDraft     ShiftStatus = "draft"
	ShiftStatusPublished ShiftStatus = "published"
)

// OpenShiftEmployee is the sentinel employee id marking a shift nobody is
// assigned to yet. Open shifts are picked up through shift bids.
const OpenShiftEmployee = "open"

// TimeEntryStatus enumerates time-clock entry states.
type TimeEntryStatus string

// Canonical time entry statuses.
const (
	TimeEntryActive    TimeEntryStatus = "active"
	TimeEntryCompleted TimeEntryStatus = "completed"
)

// GeofenceStatus records where an employee was relative to the location
// geofence when punching the clock.
type GeofenceStatus string

// Canonical geofence statuses.
const (
	GeofenceInside  GeofenceStatus = "inside"
	GeofenceOutside GeofenceStatus = "outside"
	GeofenceUnknown GeofenceStatus = "unknown"
)

// AbsenceStatus enumerates absence request states.
type AbsenceStatus string

// Canonical absence statuses.
const (
	AbsencePending  AbsenceStatus = "pending"
	AbsenceApproved AbsenceStatus = "approved"
	AbsenceDenied   AbsenceStatus = "denied"
)

// SalesEntryType distinguishes recorded from forecast sales figures.
type SalesEntryType string

// Canonical sales entry types. Missing values default to actual on load.
const (
	SalesActual   SalesEntryType = "actual"
	SalesForecast SalesEntryType = "forecast"
)

// TaskStatus enumerates task workflow states. The status of a task with
// subtasks is derived from subtask completion on every subtask mutation.
type TaskStatus string

// Canonical task statuses.
const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// SwapStatus enumerates shift-swap workflow states: open -> claimed ->
// approved|denied, or cancelled from open/claimed.
type SwapStatus string

// Canonical shift-swap statuses.
const (
	SwapOpen      SwapStatus = "open"
	SwapClaimed   SwapStatus = "claimed"
	SwapApproved  SwapStatus = "approved"
	SwapDenied    SwapStatus = "denied"
	SwapCancelled SwapStatus = "cancelled"
)

// BidStatus enumerates open-shift bid states.
type BidStatus string

// Canonical bid statuses.
const (
	BidPending  BidStatus = "pending"
	BidApproved BidStatus = "approved"
	BidDenied   BidStatus = "denied"
)

// TrainingStatus enumerates training assignment states: assigned ->
// in_progress -> completed.
type TrainingStatus string

// Canonical training assignment statuses.
const (
	TrainingAssigned   TrainingStatus = "assigned"
	TrainingInProgress TrainingStatus = "in_progress"
	TrainingCompleted  TrainingStatus = "completed"
)

// SurveyStatus enumerates survey response states.
type SurveyStatus string

// Canonical survey response statuses.
const (
	SurveyPending   SurveyStatus = "pending"
	SurveyCompleted SurveyStatus = "completed"
)

// PaystubStatus reports whether an imported paystub resolved to an employee.
type PaystubStatus string

// Canonical paystub statuses.
const (
	PaystubMatched   PaystubStatus = "matched"
	PaystubUnmatched PaystubStatus = "unmatched"
)

// TimesheetStatus enumerates payroll timesheet states: pending -> submitted ->
// approved|rejected; a rejected timesheet returns to submitted on resubmit.
type TimesheetStatus string

// Canonical timesheet statuses.
const (
	TimesheetPending   TimesheetStatus = "pending"
	TimesheetSubmitted TimesheetStatus = "submitted"
	TimesheetApproved  TimesheetStatus = "approved"
	TimesheetRejected  TimesheetStatus = "rejected"
)

// Base contains the opaque identifier shared by all document records.
// Identifiers are assigned at creation and never reused.
type Base struct {
	ID string `json:"id"`
}

// RecordID returns the record's identifier.
func (b Base) RecordID() string { return b.ID }

// ClockRules configures time-clock behavior for a location.
type ClockRules struct {
	RequireGeofence     bool    `json:"requireGeofence"`
	EarlyClockInMinutes int     `json:"earlyClockInMinutes"`
	AutoClockOut        bool    `json:"autoClockOut"`
	AutoClockOutHours   float64 `json:"autoClockOutHours"`
}

// Location represents a physical business location. At least one location
// must exist in the document at all times.
type Location struct {
	Base
	Name               string     `json:"name"`
	Address            string     `json:"address,omitempty"`
	Lat                float64    `json:"lat,omitempty"`
	Lng                float64    `json:"lng,omitempty"`
	GeofenceRadius     float64    `json:"geofenceRadius"`
	LaborBudgetWarning float64    `json:"laborBudgetWarning"`
	LaborBudgetMax     float64    `json:"laborBudgetMax"`
	ClockRules         ClockRules `json:"clockRules"`
}

// Position represents a schedulable role within the business.
type Position struct {
	Base
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Wage binds an hourly rate to a role for one employee.
type Wage struct {
	Role       string  `json:"role"`
	HourlyRate float64 `json:"hourlyRate"`
}

// PTOBalance tracks remaining paid-time-off days per category.
type PTOBalance struct {
	Sick     float64 `json:"sick"`
	Vacation float64 `json:"vacation"`
	Personal float64 `json:"personal"`
}

// DefaultPTOBalance is the starting balance granted to new employees.
func DefaultPTOBalance() PTOBalance {
	return PTOBalance{Sick: 10, Vacation: 10, Personal: 3}
}

// EmergencyContact stores the person to call for an employee.
type EmergencyContact struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Employee represents a worker. LocationIDs is non-empty for every stored
// employee; deleting an employee cascades to their shifts, time entries,
// and absences.
type Employee struct {
	Base
	Name             string           `json:"name"`
	PreferredName    string           `json:"preferredName,omitempty"`
	Email            string           `json:"email,omitempty"`
	Phone            string           `json:"phone,omitempty"`
	AvatarColor      string           `json:"avatarColor,omitempty"`
	LocationIDs      []string         `json:"locationIds"`
	Roles            []string         `json:"roles"`
	AccessLevel      AccessLevel      `json:"accessLevel"`
	Wages            []Wage           `json:"wages"`
	PTOBalance       PTOBalance       `json:"ptoBalance"`
	GroupIDs         []string         `json:"groupIds,omitempty"`
	Address          string           `json:"address,omitempty"`
	City             string           `json:"city,omitempty"`
	State            string           `json:"state,omitempty"`
	Zip              string           `json:"zip,omitempty"`
	BirthDate        string           `json:"birthDate,omitempty"`
	HireDate         string           `json:"hireDate,omitempty"`
	TerminationDate  string           `json:"terminationDate,omitempty"`
	EmploymentType   string           `json:"employmentType,omitempty"`
	MaxHoursPerWeek  float64          `json:"maxHoursPerWeek,omitempty"`
	PayrollID        string           `json:"payrollId,omitempty"`
	PIN              string           `json:"pin,omitempty"`
	Certifications   []string         `json:"certifications,omitempty"`
	EmergencyContact EmergencyContact `json:"emergencyContact,omitempty"`
	Notes            string           `json:"notes,omitempty"`
}

// Shift represents a scheduled block of work. EmployeeID may be the
// OpenShiftEmployee sentinel for unassigned shifts. Start and End are ISO
// timestamps stored as opaque strings; the core never validates them.
type Shift struct {
	Base
	EmployeeID      string      `json:"employeeId"`
	LocationID      string      `json:"locationId"`
	Start           string      `json:"start"`
	End             string      `json:"end"`
	Position        string      `json:"position,omitempty"`
	Status          ShiftStatus `json:"status"`
	TaskTemplateIDs []string    `json:"taskTemplateIds,omitempty"`
	BreakMinutes    int         `json:"breakMinutes,omitempty"`
	Notes           string      `json:"notes,omitempty"`
}

// ShiftBid is a request by an employee to pick up an open shift.
type ShiftBid struct {
	Base
	ShiftID    string    `json:"shiftId"`
	EmployeeID string    `json:"employeeId"`
	Status     BidStatus `json:"status"`
	CreatedAt  string    `json:"createdAt,omitempty"`
}

// ShiftSwap tracks the exchange of a shift between employees. ClaimedByID is
// empty until another employee claims the swap; approval requires a claimant
// and reassigns the underlying shift in the same action.
type ShiftSwap struct {
	Base
	ShiftID     string     `json:"shiftId"`
	RequesterID string     `json:"requesterId"`
	ClaimedByID string     `json:"claimedById,omitempty"`
	Status      SwapStatus `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   string     `json:"createdAt,omitempty"`
}

// TimeEntry records a clock-in/clock-out pair. ClockOut is empty while the
// entry is active. An employee has at most one active entry at a time.
type TimeEntry struct {
	Base
	EmployeeID     string          `json:"employeeId"`
	LocationID     string          `json:"locationId,omitempty"`
	ClockIn        string          `json:"clockIn"`
	ClockOut       string          `json:"clockOut,omitempty"`
	Status         TimeEntryStatus `json:"status"`
	GeofenceStatus GeofenceStatus  `json:"geofenceStatus,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// Absence represents a time-off request.
type Absence struct {
	Base
	EmployeeID string        `json:"employeeId"`
	Type       string        `json:"type"`
	StartDate  string        `json:"startDate"`
	EndDate    string        `json:"endDate"`
	Status     AbsenceStatus `json:"status"`
	Notes      string        `json:"notes,omitempty"`
}

// SalesEntry records an actual or forecast sales amount for one location and
// day. Entries are unique on (locationId, date, type) for bulk upserts.
type SalesEntry struct {
	Base
	LocationID string         `json:"locationId"`
	Date       string         `json:"date"`
	Amount     float64        `json:"amount"`
	Type       SalesEntryType `json:"type"`
}

// Comment is a reply nested under a feed post.
type Comment struct {
	Base
	AuthorID  string `json:"authorId"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Post is a message on the company feed. Likes holds employee ids and is
// toggled as set membership.
type Post struct {
	Base
	AuthorID   string    `json:"authorId"`
	LocationID string    `json:"locationId,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  string    `json:"createdAt,omitempty"`
	Likes      []string  `json:"likes"`
	Comments   []Comment `json:"comments"`
}

// Subtask is a checklist item nested under a task.
type Subtask struct {
	Base
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Task represents a unit of work assigned to an employee or location. Its
// status is derived from subtask completion whenever subtasks change: all
// done means completed, any done means in_progress, none done leaves the
// last derived status in place.
type Task struct {
	Base
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssigneeID  string     `json:"assigneeId,omitempty"`
	LocationID  string     `json:"locationId,omitempty"`
	DueDate     string     `json:"dueDate,omitempty"`
	Status      TaskStatus `json:"status"`
	Subtasks    []Subtask  `json:"subtasks"`
}

// TaskTemplate is a reusable checklist attachable to shifts. Deleting a
// template trims its id from shifts rather than deleting the shifts.
type TaskTemplate struct {
	Base
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// TrainingModule is one unit of a training program.
type TrainingModule struct {
	Base
	Title      string `json:"title"`
	ContentURL string `json:"contentUrl,omitempty"`
}

// TrainingProgram groups modules into an assignable curriculum.
type TrainingProgram struct {
	Base
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Modules     []TrainingModule `json:"modules"`
}

// TrainingAssignment tracks one employee's progress through a program.
type TrainingAssignment struct {
	Base
	ProgramID          string         `json:"programId"`
	EmployeeID         string         `json:"employeeId"`
	Status             TrainingStatus `json:"status"`
	CompletedModuleIDs []string       `json:"completedModuleIds"`
	AssignedAt         string         `json:"assignedAt,omitempty"`
	CompletedAt        string         `json:"completedAt,omitempty"`
}

// SurveyQuestion is one prompt within a survey template.
type SurveyQuestion struct {
	Base
	Prompt  string   `json:"prompt"`
	Kind    string   `json:"kind,omitempty"`
	Options []string `json:"options,omitempty"`
}

// SurveyTemplate defines a questionnaire assignable to employees.
type SurveyTemplate struct {
	Base
	Title     string           `json:"title"`
	Questions []SurveyQuestion `json:"questions"`
}

// SurveyAnswer pairs a question with the respondent's value.
type SurveyAnswer struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"value"`
}

// SurveyResponse tracks one employee's answer set for a template.
type SurveyResponse struct {
	Base
	TemplateID  string         `json:"templateId"`
	EmployeeID  string         `json:"employeeId"`
	Status      SurveyStatus   `json:"status"`
	Answers     []SurveyAnswer `json:"answers"`
	SubmittedAt string         `json:"submittedAt,omitempty"`
}

// InvoiceLine is one billable row on an invoice.
type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Invoice bills a customer. CustomerID is cleared, not cascaded, when the
// customer is deleted.
type Invoice struct {
	Base
	CustomerID string        `json:"customerId,omitempty"`
	Number     string        `json:"number"`
	Date       string        `json:"date,omitempty"`
	DueDate    string        `json:"dueDate,omitempty"`
	Lines      []InvoiceLine `json:"lines"`
	Status     string        `json:"status,omitempty"`
}

// Customer is a billing counterparty.
type Customer struct {
	Base
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Conversation is a direct or group message thread. ReadBy maps participant
// ids to the timestamp of their last read.
type Conversation struct {
	Base
	ParticipantIDs []string          `json:"participantIds"`
	Subject        string            `json:"subject,omitempty"`
	ReadBy         map[string]string `json:"readBy,omitempty"`
	CreatedAt      string            `json:"createdAt,omitempty"`
}

// Message is one entry in a conversation.
type Message struct {
	Base
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	Body           string `json:"body"`
	SentAt         string `json:"sentAt,omitempty"`
}

// Subcontractor is an external service provider.
type Subcontractor struct {
	Base
	Name     string   `json:"name"`
	Company  string   `json:"company,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Services []string `json:"services,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// SubcontractorRevenue records revenue attributed to a subcontractor for one
// period. Rows are unique on (subcontractorId, period) for bulk imports.
type SubcontractorRevenue struct {
	Base
	SubcontractorID string  `json:"subcontractorId"`
	Period          string  `json:"period"`
	Amount          float64 `json:"amount"`
}

// SubcontractorPayment records money paid out to a subcontractor.
type SubcontractorPayment struct {
	Base
	SubcontractorID string  `json:"subcontractorId"`
	Date            string  `json:"date"`
	Amount          float64 `json:"amount"`
	Method          string  `json:"method,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

// ProviderAssistantTag pairs a subcontractor provider with an assisting
// employee.
type ProviderAssistantTag struct {
	Base
	SubcontractorID string `json:"subcontractorId"`
	EmployeeID      string `json:"employeeId"`
	Tag             string `json:"tag,omitempty"`
}

// Paystub is an imported payroll stub. EmployeeID is empty and Status is
// unmatched until the stub resolves to an employee.
type Paystub struct {
	Base
	EmployeeID   string        `json:"employeeId,omitempty"`
	EmployeeName string        `json:"employeeName"`
	PeriodStart  string        `json:"periodStart,omitempty"`
	PeriodEnd    string        `json:"periodEnd,omitempty"`
	GrossPay     float64       `json:"grossPay"`
	NetPay       float64       `json:"netPay"`
	Status       PaystubStatus `json:"status"`
}

// Timesheet is a payroll period summary submitted by an employee.
type Timesheet struct {
	Base
	EmployeeID  string          `json:"employeeId"`
	PeriodStart string          `json:"periodStart"`
	PeriodEnd   string          `json:"periodEnd"`
	Hours       float64         `json:"hours"`
	Status      TimesheetStatus `json:"status"`
	SubmittedAt string          `json:"submittedAt,omitempty"`
	DecidedByID string          `json:"decidedById,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// Group is a named set of employees used for targeting schedules and
// announcements.
type Group struct {
	Base
	Name        string   `json:"name"`
	Color       string   `json:"color,omitempty"`
	EmployeeIDs []string `json:"employeeIds"`
}

// AccessLevelDef describes one permission tier for display purposes. The
// ordering itself is fixed by AccessLevel.
type AccessLevelDef struct {
	Base
	Level       AccessLevel `json:"level"`
	Label       string      `json:"label"`
	Description string      `json:"description,omitempty"`
}

// AuditLogEntry records one applied document mutation. The audit log is
// append-only: entries are never updated or deleted.
type AuditLogEntry struct {
	Base
	ActorID    string     `json:"actorId,omitempty"`
	Action     string     `json:"action"`
	EntityType EntityType `json:"entityType,omitempty"`
	EntityID   string     `json:"entityId,omitempty"`
	Details    string     `json:"details,omitempty"`
	Timestamp  string     `json:"timestamp"`
}

// CompanyProfile holds org-wide settings carried on the document root.
type CompanyProfile struct {
	Name         string `json:"name,omitempty"`
	Industry     string `json:"industry,omitempty"`
	Timezone     string `json:"timezone,omitempty"`
	WeekStartDay string `json:"weekStartDay,omitempty"`
}
