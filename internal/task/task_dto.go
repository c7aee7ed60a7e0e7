package task

type CreateTaskRequest struct {
	EmployeeID   uint   `json:"employee_id" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Priority     string `json:"priority" binding:"required,oneof=Low Medium High Critical"`
	Status       string `json:"status" binding:"omitempty,oneof=Pending Active Done"`
	Deadline     string `json:"deadline" binding:"required,datetime=2006-01-02"`
	AssignedDate string `json:"assigned_date" binding:"required,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	EmployeeID   uint   `json:"employee_id" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Priority     string `json:"priority" binding:"required,oneof=Low Medium High Critical"`
	Status       string `json:"status" binding:"required,oneof=Pending Active Done"`
	Deadline     string `json:"deadline" binding:"required,datetime=2006-01-02"`
	AssignedDate string `json:"assigned_date" binding:"required,datetime=2006-01-02"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Active Done"`
}

type TaskResponse struct {
	ID           uint   `json:"id"`
	EmployeeID   uint   `json:"employee_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	Deadline     string `json:"deadline"`
	AssignedDate string `json:"assigned_date"`
}

// TaskCounters is the per-status breakdown the dashboards display.
// Pending + Active + Done always equals Total.
type TaskCounters struct {
	Pending              int64 `json:"pending"`
	Active               int64 `json:"active"`
	Done                 int64 `json:"done"`
	Total                int64 `json:"total"`
	CompletionPercentage int   `json:"completion_percentage"`
}

func mapToResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		EmployeeID:   t.EmployeeID,
		Title:        t.Title,
		Description:  t.Description,
		Priority:     string(t.Priority),
		Status:       string(t.Status),
		Deadline:     t.Deadline,
		AssignedDate: t.AssignedDate,
	}
}
