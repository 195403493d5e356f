package handler

// --- Request types ---

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,oneof=todo inprogress done"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	ProjectID   string `json:"projectId"`
	Assignee    string `json:"assignee"`
	Manager     string `json:"manager"`
	DueDate     string `json:"dueDate"     validate:"omitempty,datetime=2006-01-02"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"    validate:"omitempty,oneof=todo inprogress done"`
	Priority    *string `json:"priority"  validate:"omitempty,oneof=low medium high"`
	ProjectID   *string `json:"projectId"`
	Assignee    *string `json:"assignee"`
	Manager     *string `json:"manager"`
	DueDate     *string `json:"dueDate"   validate:"omitempty,datetime=2006-01-02"`
}

type moveTaskRequest struct {
	Status string `json:"status" validate:"required,oneof=todo inprogress done"`
}

type checklistItemRequest struct {
	Text string `json:"text" validate:"required"`
}

type commentRequest struct {
	Text string `json:"text" validate:"required"`
}

type remindRequest struct {
	Message string `json:"message"`
}
