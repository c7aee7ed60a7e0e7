package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half Day"
	StatusLeave   Status = "Leave"
)

type Attendance struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID   uint      `gorm:"column:employee_id;not null;index"`
	Date         string    `gorm:"column:date;type:varchar(10);not null;index"`
	CheckInTime  string    `gorm:"column:check_in_time;type:varchar(20)"`
	CheckOutTime string    `gorm:"column:check_out_time;type:varchar(20)"`
	Status       Status    `gorm:"column:status;type:varchar(20);not null"`
	Remarks      string    `gorm:"column:remarks;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Attendance) TableName() string {
	return "attendance"
}
