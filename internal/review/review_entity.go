package review

import "time"

// Review rows are write-once: there is deliberately no update or delete
// path. Correcting a review means writing a new one.
type Review struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID    uint      `gorm:"column:employee_id;not null;index"`
	Date          string    `gorm:"column:date;type:varchar(10);not null"`
	Quality       float64   `gorm:"column:quality;not null"`
	Communication float64   `gorm:"column:communication;not null"`
	Innovation    float64   `gorm:"column:innovation;not null"`
	Timeliness    float64   `gorm:"column:timeliness;not null"`
	Attendance    float64   `gorm:"column:attendance;not null"`
	OverallRating float64   `gorm:"column:overall_rating;not null"`
	Remarks       string    `gorm:"column:remarks;type:text"`
	ReviewedBy    string    `gorm:"column:reviewed_by;type:varchar(255)"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Review) TableName() string {
	return "reviews"
}
