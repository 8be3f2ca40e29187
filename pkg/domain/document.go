package domain

// CurrentSchemaVersion stamps the persisted document shape. The migrator
// regenerates any document persisted under an older version, salvaging the
// scheduling collections.
const CurrentSchemaVersion = 4

// Document is the single aggregate root holding all application state. It is
// replaced wholesale on every reducer transition; nothing outside the reducer
// ever mutates it.
type Document struct {
	SchemaVersion     int            `json:"_version"`
	CurrentUserID     string         `json:"currentUserId,omitempty"`
	CurrentLocationID string         `json:"currentLocationId,omitempty"`
	CompanyProfile    CompanyProfile `json:"companyProfile"`

	Locations             []Location             `json:"locations"`
	Positions             []Position             `json:"positions"`
	Employees             []Employee             `json:"employees"`
	Shifts                []Shift                `json:"shifts"`
	ShiftBids             []ShiftBid             `json:"shiftBids"`
	ShiftSwaps            []ShiftSwap            `json:"shiftSwaps"`
	TimeEntries           []TimeEntry            `json:"timeEntries"`
	Absences              []Absence              `json:"absences"`
	SalesEntries          []SalesEntry           `json:"salesEntries"`
	Posts                 []Post                 `json:"posts"`
	Tasks                 []Task                 `json:"tasks"`
	TaskTemplates         []TaskTemplate         `json:"taskTemplates"`
	TrainingPrograms      []TrainingProgram      `json:"trainingPrograms"`
	TrainingAssignments   []TrainingAssignment   `json:"trainingAssignments"`
	SurveyTemplates       []SurveyTemplate       `json:"surveyTemplates"`
	SurveyResponses       []SurveyResponse       `json:"surveyResponses"`
	Invoices              []Invoice              `json:"invoices"`
	Customers             []Customer             `json:"customers"`
	Conversations         []Conversation         `json:"conversations"`
	Messages              []Message              `json:"messages"`
	Subcontractors        []Subcontractor        `json:"subcontractors"`
	SubcontractorRevenues []SubcontractorRevenue `json:"subcontractorRevenues"`
	SubcontractorPayments []SubcontractorPayment `json:"subcontractorPayments"`
	ProviderAssistantTags []ProviderAssistantTag `json:"providerAssistantTags"`
	Paystubs              []Paystub              `json:"paystubs"`
	Timesheets            []Timesheet            `json:"timesheets"`
	Groups                []Group                `json:"groups"`
	AccessLevels          []AccessLevelDef       `json:"accessLevels"`
	AuditLog              []AuditLogEntry        `json:"auditLog"`
}

func cloneSlice[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

// copyOf preserves nil versus empty so a clone stays deep-equal to its
// source; appending onto a nil slice would collapse empty slices to nil.
func copyOf[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneStrings(in []string) []string { return copyOf(in) }

func cloneLocation(l Location) Location { return l }
func clonePosition(p Position) Position { return p }

func cloneEmployee(e Employee) Employee {
	cp := e
	cp.LocationIDs = cloneStrings(e.LocationIDs)
	cp.Roles = cloneStrings(e.Roles)
	cp.Wages = copyOf(e.Wages)
	cp.GroupIDs = cloneStrings(e.GroupIDs)
	cp.Certifications = cloneStrings(e.Certifications)
	return cp
}

func cloneShift(s Shift) Shift {
	cp := s
	cp.TaskTemplateIDs = cloneStrings(s.TaskTemplateIDs)
	return cp
}

func cloneShiftBid(b ShiftBid) ShiftBid    { return b }
func cloneShiftSwap(s ShiftSwap) ShiftSwap { return s }
func cloneTimeEntry(t TimeEntry) TimeEntry { return t }
func cloneAbsence(a Absence) Absence       { return a }
func cloneSales(s SalesEntry) SalesEntry   { return s }

func clonePost(p Post) Post {
	cp := p
	cp.Likes = cloneStrings(p.Likes)
	cp.Comments = copyOf(p.Comments)
	return cp
}

func cloneTask(t Task) Task {
	cp := t
	cp.Subtasks = copyOf(t.Subtasks)
	return cp
}

func cloneTaskTemplate(t TaskTemplate) TaskTemplate {
	cp := t
	cp.Items = cloneStrings(t.Items)
	return cp
}

func cloneTrainingProgram(p TrainingProgram) TrainingProgram {
	cp := p
	cp.Modules = copyOf(p.Modules)
	return cp
}

func cloneTrainingAssignment(a TrainingAssignment) TrainingAssignment {
	cp := a
	cp.CompletedModuleIDs = cloneStrings(a.CompletedModuleIDs)
	return cp
}

func cloneSurveyTemplate(t SurveyTemplate) SurveyTemplate {
	cp := t
	cp.Questions = make([]SurveyQuestion, len(t.Questions))
	for i, q := range t.Questions {
		qc := q
		qc.Options = cloneStrings(q.Options)
		cp.Questions[i] = qc
	}
	return cp
}

func cloneSurveyResponse(r SurveyResponse) SurveyResponse {
	cp := r
	cp.Answers = copyOf(r.Answers)
	return cp
}

func cloneInvoice(i Invoice) Invoice {
	cp := i
	cp.Lines = copyOf(i.Lines)
	return cp
}

func cloneCustomer(c Customer) Customer { return c }

func cloneConversation(c Conversation) Conversation {
	cp := c
	cp.ParticipantIDs = cloneStrings(c.ParticipantIDs)
	if c.ReadBy != nil {
		cp.ReadBy = make(map[string]string, len(c.ReadBy))
		for k, v := range c.ReadBy {
			cp.ReadBy[k] = v
		}
	}
	return cp
}

func cloneMessage(m Message) Message { return m }

func cloneSubcontractor(s Subcontractor) Subcontractor {
	cp := s
	cp.Services = cloneStrings(s.Services)
	return cp
}

func cloneRevenue(r SubcontractorRevenue) SubcontractorRevenue { return r }
func clonePayment(p SubcontractorPayment) SubcontractorPayment { return p }
func cloneProviderTag(t ProviderAssistantTag) ProviderAssistantTag {
	return t
}
func clonePaystub(p Paystub) Paystub       { return p }
func cloneTimesheet(t Timesheet) Timesheet { return t }

func cloneGroup(g Group) Group {
	cp := g
	cp.EmployeeIDs = cloneStrings(g.EmployeeIDs)
	return cp
}

func cloneAccessLevelDef(d AccessLevelDef) AccessLevelDef { return d }
func cloneAuditEntry(e AuditLogEntry) AuditLogEntry       { return e }

// Clone returns a deep copy of the document. Reducer handlers operate on a
// clone so the prior document is never aliased by the next one.
func (d Document) Clone() Document {
	cp := d
	cp.Locations = cloneSlice(d.Locations, cloneLocation)
	cp.Positions = cloneSlice(d.Positions, clonePosition)
	cp.Employees = cloneSlice(d.Employees, cloneEmployee)
	cp.Shifts = cloneSlice(d.Shifts, cloneShift)
	cp.ShiftBids = cloneSlice(d.ShiftBids, cloneShiftBid)
	cp.ShiftSwaps = cloneSlice(d.ShiftSwaps, cloneShiftSwap)
	cp.TimeEntries = cloneSlice(d.TimeEntries, cloneTimeEntry)
	cp.Absences = cloneSlice(d.Absences, cloneAbsence)
	cp.SalesEntries = cloneSlice(d.SalesEntries, cloneSales)
	cp.Posts = cloneSlice(d.Posts, clonePost)
	cp.Tasks = cloneSlice(d.Tasks, cloneTask)
	cp.TaskTemplates = cloneSlice(d.TaskTemplates, cloneTaskTemplate)
	cp.TrainingPrograms = cloneSlice(d.TrainingPrograms, cloneTrainingProgram)
	cp.TrainingAssignments = cloneSlice(d.TrainingAssignments, cloneTrainingAssignment)
	cp.SurveyTemplates = cloneSlice(d.SurveyTemplates, cloneSurveyTemplate)
	cp.SurveyResponses = cloneSlice(d.SurveyResponses, cloneSurveyResponse)
	cp.Invoices = cloneSlice(d.Invoices, cloneInvoice)
	cp.Customers = cloneSlice(d.Customers, cloneCustomer)
	cp.Conversations = cloneSlice(d.Conversations, cloneConversation)
	cp.Messages = cloneSlice(d.Messages, cloneMessage)
	cp.Subcontractors = cloneSlice(d.Subcontractors, cloneSubcontractor)
	cp.SubcontractorRevenues = cloneSlice(d.SubcontractorRevenues, cloneRevenue)
	cp.SubcontractorPayments = cloneSlice(d.SubcontractorPayments, clonePayment)
	cp.ProviderAssistantTags = cloneSlice(d.ProviderAssistantTags, cloneProviderTag)
	cp.Paystubs = cloneSlice(d.Paystubs, clonePaystub)
	cp.Timesheets = cloneSlice(d.Timesheets, cloneTimesheet)
	cp.Groups = cloneSlice(d.Groups, cloneGroup)
	cp.AccessLevels = cloneSlice(d.AccessLevels, cloneAccessLevelDef)
	cp.AuditLog = cloneSlice(d.AuditLog, cloneAuditEntry)
	return cp
}

// FindLocation returns the location with the given id.
func (d Document) FindLocation(id string) (Location, bool) {
	for _, l := range d.Locations {
		if l.ID == id {
			return l, true
		}
	}
	return Location{}, false
}

// FindEmployee returns the employee with the given id.
func (d Document) FindEmployee(id string) (Employee, bool) {
	for _, e := range d.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// FindShift returns the shift with the given id.
func (d Document) FindShift(id string) (Shift, bool) {
	for _, s := range d.Shifts {
		if s.ID == id {
			return s, true
		}
	}
	return Shift{}, false
}

// ActiveTimeEntry returns the active time entry for an employee, if any.
func (d Document) ActiveTimeEntry(employeeID string) (TimeEntry, bool) {
	for _, t := range d.TimeEntries {
		if t.EmployeeID == employeeID && t.Status == TimeEntryActive {
			return t, true
		}
	}
	return TimeEntry{}, false
}
