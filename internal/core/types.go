package core

import "shiftcore/pkg/domain"

type (
	EntityType = domain.EntityType
	Document   = domain.Document
	Action     = domain.Action
	ActionType = domain.ActionType

	Location             = domain.Location
	Position             = domain.Position
	Employee             = domain.Employee
	Shift                = domain.Shift
	ShiftBid             = domain.ShiftBid
	ShiftSwap            = domain.ShiftSwap
	TimeEntry            = domain.TimeEntry
	Absence              = domain.Absence
	SalesEntry           = domain.SalesEntry
	Post                 = domain.Post
	Comment              = domain.Comment
	Task                 = domain.Task
	Subtask              = domain.Subtask
	TaskTemplate         = domain.TaskTemplate
	TrainingProgram      = domain.TrainingProgram
	TrainingAssignment   = domain.TrainingAssignment
	SurveyTemplate       = domain.SurveyTemplate
	SurveyResponse       = domain.SurveyResponse
	Invoice              = domain.Invoice
	Customer             = domain.Customer
	Conversation         = domain.Conversation
	Message              = domain.Message
	Subcontractor        = domain.Subcontractor
	SubcontractorRevenue = domain.SubcontractorRevenue
	SubcontractorPayment = domain.SubcontractorPayment
	ProviderAssistantTag = domain.ProviderAssistantTag
	Paystub              = domain.Paystub
	Timesheet            = domain.Timesheet
	Group                = domain.Group
	AuditLogEntry        = domain.AuditLogEntry

	Adapter        = domain.Adapter
	SampleProvider = domain.SampleProvider
)

const (
	EntityLocation        = domain.EntityLocation
	EntityPosition        = domain.EntityPosition
	EntityEmployee        = domain.EntityEmployee
	EntityShift           = domain.EntityShift
	EntityCustomer        = domain.EntityCustomer
	EntitySubcontractor   = domain.EntitySubcontractor
	EntityTaskTemplate    = domain.EntityTaskTemplate
	EntityTrainingProgram = domain.EntityTrainingProgram
	EntitySurveyTemplate  = domain.EntitySurveyTemplate
	EntityConversation    = domain.EntityConversation
	EntityGroup           = domain.EntityGroup
)
