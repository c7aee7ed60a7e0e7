package message

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, m *Message) error
	// FindConversation returns both directions of the pair, oldest first.
	FindConversation(ctx context.Context, a, b uint) ([]Message, error)
	CountUnread(ctx context.Context, receiverID uint) (int64, error)
	// MarkConversationRead flips every unread message sent by senderID to
	// receiverID. Other conversations are untouched.
	MarkConversationRead(ctx context.Context, senderID, receiverID uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindConversation(ctx context.Context, a, b uint) ([]Message, error) {
	var rows []Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("timestamp ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CountUnread(ctx context.Context, receiverID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Message{}).
		Where("receiver_id = ?", receiverID).
		Where("is_read = ?", false).
		Count(&n).Error
	return n, err
}

func (r *repository) MarkConversationRead(ctx context.Context, senderID, receiverID uint) error {
	return r.db.WithContext(ctx).Model(&Message{}).
		Where("sender_id = ?", senderID).
		Where("receiver_id = ?", receiverID).
		Where("is_read = ?", false).
		Update("is_read", true).Error
}
