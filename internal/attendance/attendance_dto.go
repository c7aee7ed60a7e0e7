package attendance

// Policy decides what happens when a record for (employee, date) already
// exists: "append" adds another row, "replace" overwrites the existing
// one. The store enforces no uniqueness, so the choice is the caller's.
type Policy string

const (
	PolicyAppend  Policy = "append"
	PolicyReplace Policy = "replace"
)

type MarkRequest struct {
	EmployeeID   uint   `json:"employee_id" binding:"required"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
	Status       string `json:"status" binding:"required,oneof=Present Absent 'Half Day' Leave"`
	Remarks      string `json:"remarks"`
	Policy       string `json:"policy" binding:"omitempty,oneof=append replace"`
}

type AttendanceResponse struct {
	ID           uint   `json:"id"`
	EmployeeID   uint   `json:"employee_id"`
	Date         string `json:"date"`
	CheckInTime  string `json:"check_in_time,omitempty"`
	CheckOutTime string `json:"check_out_time,omitempty"`
	Status       string `json:"status"`
	Remarks      string `json:"remarks,omitempty"`
}

func NewResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		Date:         a.Date,
		CheckInTime:  a.CheckInTime,
		CheckOutTime: a.CheckOutTime,
		Status:       string(a.Status),
		Remarks:      a.Remarks,
	}
}
