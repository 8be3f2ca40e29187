package core

import (
	"shiftcore/pkg/domain"
)

func (r *Reducer) reduceEngagement(doc Document, action Action) Document {
	switch action.Type {
	case domain.ActionAddPost, domain.ActionUpdatePost, domain.ActionDeletePost,
		domain.ActionToggleLike, domain.ActionAddComment, domain.ActionDeleteComment:
		return r.reduceFeed(doc, action)
	case domain.ActionAddTask, domain.ActionUpdateTask, domain.ActionDeleteTask,
		domain.ActionAddSubtask, domain.ActionToggleSubtask, domain.ActionDeleteSubtask,
		domain.ActionAddTaskTemplate, domain.ActionUpdateTaskTemplate, domain.ActionDeleteTaskTemplate:
		return r.reduceTasks(doc, action)
	case domain.ActionAddTrainingProgram, domain.ActionUpdateTrainingProgram,
		domain.ActionDeleteTrainingProgram, domain.ActionAssignTraining, domain.ActionStartTraining,
		domain.ActionCompleteTrainingModule, domain.ActionDeleteTrainingAssignment:
		return r.reduceTraining(doc, action)
	case domain.ActionAddSurveyTemplate, domain.ActionUpdateSurveyTemplate,
		domain.ActionDeleteSurveyTemplate, domain.ActionAssignSurvey, domain.ActionSubmitSurveyResponse:
		return r.reduceSurveys(doc, action)
	default:
		return r.reduceMessaging(doc, action)
	}
}

func (r *Reducer) reduceFeed(doc Document, action Action) Document {
	switch action.Type {
	case domain.ActionAddPost:
		post, ok := decode[domain.Post](action.Payload)
		if !ok {
			return doc
		}
		post.ID = r.fillID(post.ID)
		if post.CreatedAt == "" {
			post.CreatedAt = r.timestamp()
		}
		if post.Likes == nil {
			post.Likes = []string{}
		}
		if post.Comments == nil {
			post.Comments = []domain.Comment{}
		}
		doc.Posts = append(doc.Posts, post)
	case domain.ActionUpdatePost:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.Posts = patchByID(doc.Posts, patch)
	case domain.ActionDeletePost:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.Posts = removeByID(doc.Posts, target.ID)
	case domain.ActionToggleLike:
		payload, ok := decode[domain.ToggleLikePayload](action.Payload)
		if !ok || payload.EmployeeID == "" {
			return doc
		}
		doc.Posts = updateByID(doc.Posts, payload.PostID, func(p domain.Post) domain.Post {
			p.Likes = toggleMembership(p.Likes, payload.EmployeeID)
			return p
		})
	case domain.ActionAddComment:
		payload, ok := decode[domain.AddCommentPayload](action.Payload)
		if !ok {
			return doc
		}
		comment := payload.Comment
		comment.ID = r.fillID(comment.ID)
		if comment.CreatedAt == "" {
			comment.CreatedAt = r.timestamp()
		}
		doc.Posts = updateByID(doc.Posts, payload.PostID, func(p domain.Post) domain.Post {
			p.Comments = append(p.Comments, comment)
			return p
		})
	case domain.ActionDeleteComment:
		payload, ok := decode[domain.DeleteCommentPayload](action.Payload)
		if !ok {
			return doc
		}
		doc.Posts = updateByID(doc.Posts, payload.PostID, func(p domain.Post) domain.Post {
			p.Comments = removeWhere(p.Comments, func(c domain.Comment) bool {
				return c.ID == payload.CommentID
			})
			return p
		})
	}
	return doc
}

func (r *Reducer) reduceTasks(doc Document, action Action) Document {
	switch action.Type {
	case domain.ActionAddTask:
		task, ok := decode[domain.Task](action.Payload)
		if !ok {
			return doc
		}
		task.ID = r.fillID(task.ID)
		if task.Status == "" {
			task.Status = domain.TaskPending
		}
		if task.Subtasks == nil {
			task.Subtasks = []domain.Subtask{}
		}
		doc.Tasks = append(doc.Tasks, task)
	case domain.ActionUpdateTask:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.Tasks = patchByID(doc.Tasks, patch)
	case domain.ActionDeleteTask:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.Tasks = removeByID(doc.Tasks, target.ID)
	case domain.ActionAddSubtask:
		payload, ok := decode[domain.AddSubtaskPayload](action.Payload)
		if !ok {
			return doc
		}
		subtask := payload.Subtask
		subtask.ID = r.fillID(subtask.ID)
		doc.Tasks = updateByID(doc.Tasks, payload.TaskID, func(t domain.Task) domain.Task {
			t.Subtasks = append(t.Subtasks, subtask)
			return deriveTaskStatus(t)
		})
	case domain.ActionToggleSubtask:
		payload, ok := decode[domain.SubtaskTarget](action.Payload)
		if !ok {
			return doc
		}
		doc.Tasks = updateByID(doc.Tasks, payload.TaskID, func(t domain.Task) domain.Task {
			for i, st := range t.Subtasks {
				if st.ID == payload.SubtaskID {
					t.Subtasks[i].Done = !st.Done
					break
				}
			}
			return deriveTaskStatus(t)
		})
	case domain.ActionDeleteSubtask:
		payload, ok := decode[domain.SubtaskTarget](action.Payload)
		if !ok {
			return doc
		}
		doc.Tasks = updateByID(doc.Tasks, payload.TaskID, func(t domain.Task) domain.Task {
			t.Subtasks = removeWhere(t.Subtasks, func(st domain.Subtask) bool {
				return st.ID == payload.SubtaskID
			})
			return deriveTaskStatus(t)
		})
	case domain.ActionAddTaskTemplate:
		tpl, ok := decode[domain.TaskTemplate](action.Payload)
		if !ok {
			return doc
		}
		tpl.ID = r.fillID(tpl.ID)
		if tpl.Items == nil {
			tpl.Items = []string{}
		}
		doc.TaskTemplates = append(doc.TaskTemplates, tpl)
	case domain.ActionUpdateTaskTemplate:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.TaskTemplates = patchByID(doc.TaskTemplates, patch)
	case domain.ActionDeleteTaskTemplate:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc = deleteTaskTemplate(doc, target.ID)
	}
	return doc
}

// deriveTaskStatus recomputes a task's status from subtask completion. All
// subtasks done means completed, a partial set means in progress, and a task
// with no done subtasks keeps its previous status.
func deriveTaskStatus(t domain.Task) domain.Task {
	if len(t.Subtasks) == 0 {
		return t
	}
	done := 0
	for _, st := range t.Subtasks {
		if st.Done {
			done++
		}
	}
	switch {
	case done == len(t.Subtasks):
		t.Status = domain.TaskCompleted
	case done > 0:
		t.Status = domain.TaskInProgress
	}
	return t
}

func (r *Reducer) reduceTraining(doc Document, action Action) Document {
	switch action.Type {
	case domain.ActionAddTrainingProgram:
		program, ok := decode[domain.TrainingProgram](action.Payload)
		if !ok {
			return doc
		}
		program.ID = r.fillID(program.ID)
		for i := range program.Modules {
			program.Modules[i].ID = r.fillID(program.Modules[i].ID)
		}
		doc.TrainingPrograms = append(doc.TrainingPrograms, program)
	case domain.ActionUpdateTrainingProgram:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.TrainingPrograms = patchByID(doc.TrainingPrograms, patch)
	case domain.ActionDeleteTrainingProgram:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.TrainingPrograms = removeByID(doc.TrainingPrograms, target.ID)
		doc.TrainingAssignments = removeWhere(doc.TrainingAssignments, func(a domain.TrainingAssignment) bool {
			return a.ProgramID == target.ID
		})
	case domain.ActionAssignTraining:
		payload, ok := decode[domain.AssignTrainingPayload](action.Payload)
		if !ok {
			return doc
		}
		if !trainingProgramExists(doc, payload.ProgramID) {
			return doc
		}
		if _, found := doc.FindEmployee(payload.EmployeeID); !found {
			return doc
		}
		for _, a := range doc.TrainingAssignments {
			if a.ProgramID == payload.ProgramID && a.EmployeeID == payload.EmployeeID &&
				a.Status != domain.TrainingCompleted {
				return doc
			}
		}
		doc.TrainingAssignments = append(doc.TrainingAssignments, domain.TrainingAssignment{
			Base:               domain.Base{ID: r.newID()},
			ProgramID:          payload.ProgramID,
			EmployeeID:         payload.EmployeeID,
			Status:             domain.TrainingAssigned,
			CompletedModuleIDs: []string{},
			AssignedAt:         r.timestamp(),
		})
	case domain.ActionStartTraining:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.TrainingAssignments = updateByID(doc.TrainingAssignments, target.ID,
			func(a domain.TrainingAssignment) domain.TrainingAssignment {
				if a.Status == domain.TrainingAssigned {
					a.Status = domain.TrainingInProgress
				}
				return a
			})
	case domain.ActionCompleteTrainingModule:
		payload, ok := decode[domain.CompleteTrainingModulePayload](action.Payload)
		if !ok {
			return doc
		}
		doc = completeTrainingModule(doc, payload, r.timestamp())
	case domain.ActionDeleteTrainingAssignment:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.TrainingAssignments = removeByID(doc.TrainingAssignments, target.ID)
	}
	return doc
}

func trainingProgramExists(doc Document, id string) bool {
	for _, p := range doc.TrainingPrograms {
		if p.ID == id {
			return true
		}
	}
	return false
}

// completeTrainingModule records one module completion and promotes the
// assignment to completed once every module of its program is done.
func completeTrainingModule(doc Document, payload domain.CompleteTrainingModulePayload, now string) Document {
	doc.TrainingAssignments = updateByID(doc.TrainingAssignments, payload.AssignmentID,
		func(a domain.TrainingAssignment) domain.TrainingAssignment {
			if a.Status == domain.TrainingCompleted {
				return a
			}
			var program domain.TrainingProgram
			found := false
			for _, p := range doc.TrainingPrograms {
				if p.ID == a.ProgramID {
					program = p
					found = true
					break
				}
			}
			if !found {
				return a
			}
			valid := false
			for _, m := range program.Modules {
				if m.ID == payload.ModuleID {
					valid = true
					break
				}
			}
			if !valid {
				return a
			}
			if !containsString(a.CompletedModuleIDs, payload.ModuleID) {
				a.CompletedModuleIDs = append(a.CompletedModuleIDs, payload.ModuleID)
			}
			a.Status = domain.TrainingInProgress
			if len(program.Modules) > 0 && len(a.CompletedModuleIDs) >= len(program.Modules) {
				a.Status = domain.TrainingCompleted
				a.CompletedAt = now
			}
			return a
		})
	return doc
}

func (r *Reducer) reduceSurveys(doc Document, action Action) Document {
	switch action.Type {
	case domain.ActionAddSurveyTemplate:
		tpl, ok := decode[domain.SurveyTemplate](action.Payload)
		if !ok {
			return doc
		}
		tpl.ID = r.fillID(tpl.ID)
		for i := range tpl.Questions {
			tpl.Questions[i].ID = r.fillID(tpl.Questions[i].ID)
		}
		doc.SurveyTemplates = append(doc.SurveyTemplates, tpl)
	case domain.ActionUpdateSurveyTemplate:
		patch, ok := decode[domain.Patch](action.Payload)
		if !ok {
			return doc
		}
		doc.SurveyTemplates = patchByID(doc.SurveyTemplates, patch)
	case domain.ActionDeleteSurveyTemplate:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.SurveyTemplates = removeByID(doc.SurveyTemplates, target.ID)
		doc.SurveyResponses = removeWhere(doc.SurveyResponses, func(resp domain.SurveyResponse) bool {
			return resp.TemplateID == target.ID
		})
	case domain.ActionAssignSurvey:
		payload, ok := decode[domain.AssignSurveyPayload](action.Payload)
		if !ok {
			return doc
		}
		if !surveyTemplateExists(doc, payload.TemplateID) {
			return doc
		}
		if _, found := doc.FindEmployee(payload.EmployeeID); !found {
			return doc
		}
		doc.SurveyResponses = append(doc.SurveyResponses, domain.SurveyResponse{
			Base:       domain.Base{ID: r.newID()},
			TemplateID: payload.TemplateID,
			EmployeeID: payload.EmployeeID,
			Status:     domain.SurveyPending,
			Answers:    []domain.SurveyAnswer{},
		})
	case domain.ActionSubmitSurveyResponse:
		payload, ok := decode[domain.SubmitSurveyPayload](action.Payload)
		if !ok {
			return doc
		}
		doc.SurveyResponses = updateByID(doc.SurveyResponses, payload.ID,
			func(resp domain.SurveyResponse) domain.SurveyResponse {
				if resp.Status != domain.SurveyPending {
					return resp
				}
				resp.Answers = payload.Answers
				resp.Status = domain.SurveyCompleted
				resp.SubmittedAt = r.timestamp()
				return resp
			})
	}
	return doc
}

func surveyTemplateExists(doc Document, id string) bool {
	for _, t := range doc.SurveyTemplates {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (r *Reducer) reduceMessaging(doc Document, action Action) Document {
	switch action.Type {
	case domain.ActionAddConversation:
		conv, ok := decode[domain.Conversation](action.Payload)
		if !ok || len(conv.ParticipantIDs) == 0 {
			return doc
		}
		conv.ID = r.fillID(conv.ID)
		if conv.CreatedAt == "" {
			conv.CreatedAt = r.timestamp()
		}
		if conv.ReadBy == nil {
			conv.ReadBy = map[string]string{}
		}
		doc.Conversations = append(doc.Conversations, conv)
	case domain.ActionSendMessage:
		payload, ok := decode[domain.SendMessagePayload](action.Payload)
		if !ok {
			return doc
		}
		exists := false
		for _, c := range doc.Conversations {
			if c.ID == payload.ConversationID {
				exists = true
				break
			}
		}
		if !exists {
			return doc
		}
		now := r.timestamp()
		doc.Messages = append(doc.Messages, domain.Message{
			Base:           domain.Base{ID: r.newID()},
			ConversationID: payload.ConversationID,
			SenderID:       payload.SenderID,
			Body:           payload.Body,
			SentAt:         now,
		})
		doc.Conversations = updateByID(doc.Conversations, payload.ConversationID,
			func(c domain.Conversation) domain.Conversation {
				if c.ReadBy == nil {
					c.ReadBy = map[string]string{}
				}
				c.ReadBy[payload.SenderID] = now
				return c
			})
	case domain.ActionMarkConversationRead:
		payload, ok := decode[domain.MarkConversationReadPayload](action.Payload)
		if !ok {
			return doc
		}
		doc.Conversations = updateByID(doc.Conversations, payload.ConversationID,
			func(c domain.Conversation) domain.Conversation {
				if !containsString(c.ParticipantIDs, payload.EmployeeID) {
					return c
				}
				if c.ReadBy == nil {
					c.ReadBy = map[string]string{}
				}
				c.ReadBy[payload.EmployeeID] = r.timestamp()
				return c
			})
	case domain.ActionDeleteConversation:
		target, ok := decode[domain.Target](action.Payload)
		if !ok {
			return doc
		}
		doc.Conversations = removeByID(doc.Conversations, target.ID)
		doc.Messages = removeWhere(doc.Messages, func(m domain.Message) bool {
			return m.ConversationID == target.ID
		})
	}
	return doc
}
