package message

import "time"

type Message struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"`
	SenderID   uint      `gorm:"column:sender_id;not null;index"`
	ReceiverID uint      `gorm:"column:receiver_id;not null;index"`
	Body       string    `gorm:"column:message;type:text;not null"`
	Timestamp  time.Time `gorm:"column:timestamp;not null"`
	IsRead     bool      `gorm:"column:is_read;not null;default:false"`
}

func (Message) TableName() string {
	return "messages"
}
