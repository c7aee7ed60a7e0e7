package dashboard

import (
	"github.com/niranjan-18-25/WorkOrbit/internal/attendance"
	"github.com/niranjan-18-25/WorkOrbit/internal/review"
	"github.com/niranjan-18-25/WorkOrbit/internal/task"
	"github.com/niranjan-18-25/WorkOrbit/internal/user"
)

type AdminDashboardState struct {
	EmployeeCount  int64             `json:"employee_count"`
	TaskCounters   task.TaskCounters `json:"task_counters"`
	AverageRating  float64           `json:"average_rating"`
	ReviewCount    int64             `json:"review_count"`
	TopPerformers  []Performer       `json:"top_performers"`
	RecentActivity []ActivityItem    `json:"recent_activity"`
}

type EmployeeDetailState struct {
	Employee      user.UserResponse               `json:"employee"`
	TaskCounters  task.TaskCounters               `json:"task_counters"`
	AverageRating float64                         `json:"average_rating"`
	Reviews       []review.ReviewResponse         `json:"reviews"`
	Attendance    []attendance.AttendanceResponse `json:"attendance"`
}

type EmployeeHomeState struct {
	TaskCounters  task.TaskCounters `json:"task_counters"`
	AverageRating float64           `json:"average_rating"`
	// LatestReview is nil when the employee has no reviews; the client
	// shows an empty state instead of the section.
	LatestReview *review.ReviewResponse `json:"latest_review,omitempty"`
}
