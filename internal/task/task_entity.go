package task

import "time"

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

type Status string

// Status lifecycle is finite and linear but no transition order is
// enforced; any status may be written over any other.
const (
	StatusPending Status = "Pending"
	StatusActive  Status = "Active"
	StatusDone    Status = "Done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusDone:
		return true
	}
	return false
}

type Task struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID   uint      `gorm:"column:employee_id;not null;index"`
	Title        string    `gorm:"column:title;type:varchar(255);not null"`
	Description  string    `gorm:"column:description;type:text"`
	Priority     Priority  `gorm:"column:priority;type:varchar(20);not null"`
	Status       Status    `gorm:"column:status;type:varchar(20);not null;index"`
	Deadline     string    `gorm:"column:deadline;type:varchar(10)"`
	AssignedDate string    `gorm:"column:assigned_date;type:varchar(10)"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Task) TableName() string {
	return "tasks"
}
