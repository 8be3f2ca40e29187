// Package sampledata builds the starter document used on first run and as
// the fallback when persisted state is missing or unreadable.
package sampledata

import (
	"shiftcore/pkg/domain"
)

// Provider returns a freshly built sample document. Each call produces an
// independent value; callers may mutate the result freely.
func Provider() domain.Document {
	locations := []domain.Location{
		{
			Base:               domain.Base{ID: "loc-downtown"},
			Name:               "Downtown",
			Address:            "112 Main St",
			Lat:                40.7128,
			Lng:                -74.006,
			GeofenceRadius:     150,
			LaborBudgetWarning: 25,
			LaborBudgetMax:     30,
			ClockRules: domain.ClockRules{
				RequireGeofence:     true,
				EarlyClockInMinutes: 10,
				AutoClockOut:        true,
				AutoClockOutHours:   12,
			},
		},
		{
			Base:               domain.Base{ID: "loc-harbor"},
			Name:               "Harborside",
			Address:            "8 Pier Ave",
			GeofenceRadius:     150,
			LaborBudgetWarning: 25,
			LaborBudgetMax:     30,
		},
	}

	positions := []domain.Position{
		{Base: domain.Base{ID: "pos-server"}, Name: "Server", Color: "#4f86f7"},
		{Base: domain.Base{ID: "pos-cook"}, Name: "Cook", Color: "#e8833a"},
		{Base: domain.Base{ID: "pos-shiftlead"}, Name: "Shift Lead", Color: "#50b87a"},
	}

	employees := []domain.Employee{
		{
			Base:        domain.Base{ID: "emp-avery"},
			Name:        "Avery Collins",
			Email:       "avery@example.com",
			LocationIDs: []string{"loc-downtown", "loc-harbor"},
			Roles:       []string{"Shift Lead"},
			AccessLevel: domain.AccessMasterAdmin,
			Wages:       []domain.Wage{{Role: "Shift Lead", HourlyRate: 24.5}},
			PTOBalance:  domain.DefaultPTOBalance(),
			HireDate:    "2022-03-14",
		},
		{
			Base:        domain.Base{ID: "emp-jordan"},
			Name:        "Jordan Lee",
			Email:       "jordan@example.com",
			LocationIDs: []string{"loc-downtown"},
			Roles:       []string{"Server"},
			AccessLevel: domain.AccessManager,
			Wages:       []domain.Wage{{Role: "Server", HourlyRate: 16}},
			PTOBalance:  domain.DefaultPTOBalance(),
			HireDate:    "2023-01-09",
		},
		{
			Base:        domain.Base{ID: "emp-sam"},
			Name:        "Sam Ortiz",
			LocationIDs: []string{"loc-downtown"},
			Roles:       []string{"Cook"},
			AccessLevel: domain.AccessEmployee,
			Wages:       []domain.Wage{{Role: "Cook", HourlyRate: 18.25}},
			PTOBalance:  domain.DefaultPTOBalance(),
			HireDate:    "2023-06-02",
		},
		{
			Base:        domain.Base{ID: "emp-riley"},
			Name:        "Riley Chen",
			LocationIDs: []string{"loc-harbor"},
			Roles:       []string{"Server"},
			AccessLevel: domain.AccessEmployee,
			Wages:       []domain.Wage{{Role: "Server", HourlyRate: 15.5}},
			PTOBalance:  domain.DefaultPTOBalance(),
			HireDate:    "2024-02-19",
		},
	}

	shifts := []domain.Shift{
		{
			Base:       domain.Base{ID: "shift-1"},
			EmployeeID: "emp-jordan",
			LocationID: "loc-downtown",
			Start:      "2025-09-01T09:00:00Z",
			End:        "2025-09-01T17:00:00Z",
			Position:   "Server",
			Status:     domain.ShiftStatusPublished,
		},
		{
			Base:       domain.Base{ID: "shift-2"},
			EmployeeID: "emp-sam",
			LocationID: "loc-downtown",
			Start:      "2025-09-01T10:00:00Z",
			End:        "2025-09-01T18:00:00Z",
			Position:   "Cook",
			Status:     domain.ShiftStatusPublished,
		},
		{
			Base:            domain.Base{ID: "shift-3"},
			EmployeeID:      domain.OpenShiftEmployee,
			LocationID:      "loc-harbor",
			Start:           "2025-09-02T11:00:00Z",
			End:             "2025-09-02T19:00:00Z",
			Position:        "Server",
			Status:          domain.ShiftStatusDraft,
			TaskTemplateIDs: []string{"tpl-open"},
		},
	}

	timeEntries := []domain.TimeEntry{
		{
			Base:           domain.Base{ID: "te-1"},
			EmployeeID:     "emp-jordan",
			LocationID:     "loc-downtown",
			ClockIn:        "2025-08-25T08:58:12Z",
			ClockOut:       "2025-08-25T17:02:45Z",
			Status:         domain.TimeEntryCompleted,
			GeofenceStatus: domain.GeofenceInside,
		},
	}

	salesEntries := []domain.SalesEntry{
		{Base: domain.Base{ID: "sales-1"}, LocationID: "loc-downtown", Date: "2025-08-25", Amount: 4820.50, Type: domain.SalesActual},
		{Base: domain.Base{ID: "sales-2"}, LocationID: "loc-downtown", Date: "2025-09-01", Amount: 5200, Type: domain.SalesForecast},
	}

	taskTemplates := []domain.TaskTemplate{
		{
			Base:  domain.Base{ID: "tpl-open"},
			Name:  "Opening checklist",
			Items: []string{"Unlock doors", "Count register", "Check walk-in temps"},
		},
	}

	tasks := []domain.Task{
		{
			Base:       domain.Base{ID: "task-1"},
			Title:      "Deep clean espresso machine",
			AssigneeID: "emp-sam",
			LocationID: "loc-downtown",
			DueDate:    "2025-09-05",
			Status:     domain.TaskPending,
			Subtasks: []domain.Subtask{
				{Base: domain.Base{ID: "sub-1"}, Title: "Backflush group heads"},
				{Base: domain.Base{ID: "sub-2"}, Title: "Descale boiler"},
			},
		},
	}

	posts := []domain.Post{
		{
			Base:      domain.Base{ID: "post-1"},
			AuthorID:  "emp-avery",
			Body:      "Welcome aboard! September schedules are published.",
			CreatedAt: "2025-08-28T15:04:00Z",
			Likes:     []string{"emp-jordan"},
			Comments:  []domain.Comment{},
		},
	}

	trainingPrograms := []domain.TrainingProgram{
		{
			Base:        domain.Base{ID: "train-food-safety"},
			Title:       "Food safety basics",
			Description: "Required for all kitchen staff.",
			Modules: []domain.TrainingModule{
				{Base: domain.Base{ID: "mod-hygiene"}, Title: "Personal hygiene"},
				{Base: domain.Base{ID: "mod-temps"}, Title: "Temperature control"},
			},
		},
	}

	surveyTemplates := []domain.SurveyTemplate{
		{
			Base:  domain.Base{ID: "survey-onboarding"},
			Title: "30-day onboarding check-in",
			Questions: []domain.SurveyQuestion{
				{Base: domain.Base{ID: "q-1"}, Prompt: "How has your first month gone?", Kind: "text"},
				{Base: domain.Base{ID: "q-2"}, Prompt: "Do you have the tools you need?", Kind: "choice", Options: []string{"Yes", "Mostly", "No"}},
			},
		},
	}

	accessLevels := []domain.AccessLevelDef{
		{Base: domain.Base{ID: "al-employee"}, Level: domain.AccessEmployee, Label: "Employee", Description: "Own schedule and time clock"},
		{Base: domain.Base{ID: "al-manager"}, Level: domain.AccessManager, Label: "Manager", Description: "Team schedules and approvals"},
		{Base: domain.Base{ID: "al-location"}, Level: domain.AccessLocationAdmin, Label: "Location Admin", Description: "Full control of assigned locations"},
		{Base: domain.Base{ID: "al-master"}, Level: domain.AccessMasterAdmin, Label: "Master Admin", Description: "Company-wide administration"},
	}

	return domain.Document{
		SchemaVersion:     domain.CurrentSchemaVersion,
		CurrentUserID:     "emp-avery",
		CurrentLocationID: "loc-downtown",
		CompanyProfile: domain.CompanyProfile{
			Name:         "Harbor & Main Hospitality",
			Industry:     "Food service",
			Timezone:     "America/New_York",
			WeekStartDay: "monday",
		},
		Locations:             locations,
		Positions:             positions,
		Employees:             employees,
		Shifts:                shifts,
		ShiftBids:             []domain.ShiftBid{},
		ShiftSwaps:            []domain.ShiftSwap{},
		TimeEntries:           timeEntries,
		Absences:              []domain.Absence{},
		SalesEntries:          salesEntries,
		Posts:                 posts,
		Tasks:                 tasks,
		TaskTemplates:         taskTemplates,
		TrainingPrograms:      trainingPrograms,
		TrainingAssignments:   []domain.TrainingAssignment{},
		SurveyTemplates:       surveyTemplates,
		SurveyResponses:       []domain.SurveyResponse{},
		Invoices:              []domain.Invoice{},
		Customers:             []domain.Customer{},
		Conversations:         []domain.Conversation{},
		Messages:              []domain.Message{},
		Subcontractors:        []domain.Subcontractor{},
		SubcontractorRevenues: []domain.SubcontractorRevenue{},
		SubcontractorPayments: []domain.SubcontractorPayment{},
		ProviderAssistantTags: []domain.ProviderAssistantTag{},
		Paystubs:              []domain.Paystub{},
		Timesheets:            []domain.Timesheet{},
		Groups:                []domain.Group{},
		AccessLevels:          accessLevels,
		AuditLog:              []domain.AuditLogEntry{},
	}
}
