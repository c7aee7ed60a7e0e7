package message

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/niranjan-18-25/WorkOrbit/internal/events"
	messageerrors "github.com/niranjan-18-25/WorkOrbit/internal/message/errors"
	"github.com/niranjan-18-25/WorkOrbit/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	unreadKeyPrefix = "messages:unread:"
	unreadCacheTTL  = 5 * time.Minute
)

// ChatChannel is the redis pub/sub channel carrying live messages for
// one recipient. Every open websocket for that user subscribes to it.
func ChatChannel(userID uint) string {
	return fmt.Sprintf("chat:user:%d", userID)
}

func unreadKey(userID uint) string {
	return unreadKeyPrefix + strconv.FormatUint(uint64(userID), 10)
}

type Service interface {
	Send(ctx context.Context, senderID uint, req SendMessageRequest) (MessageResponse, error)
	// GetConversation returns the full thread and flips the unread flag
	// on messages addressed to the caller, mirroring the app opening the
	// chat screen.
	GetConversation(ctx context.Context, callerID, otherID uint) ([]MessageResponse, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
	MarkConversationRead(ctx context.Context, callerID, otherID uint) error
}

type service struct {
	repo Repository
	bus  *events.Bus
	rdb  *redis.Client
	sf   *singleflight.Group
}

func NewService(repo Repository, bus *events.Bus, rdb *redis.Client) Service {
	return &service{repo: repo, bus: bus, rdb: rdb, sf: &singleflight.Group{}}
}

func (s *service) Send(ctx context.Context, senderID uint, req SendMessageRequest) (MessageResponse, error) {
	if req.ReceiverID == senderID {
		return MessageResponse{}, messageerrors.ErrSelfMessage
	}

	m := &Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Body:       req.Message,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return MessageResponse{}, apperror.Storage(err)
	}

	resp := mapToResponse(*m)
	s.bus.Publish(events.Change{Table: events.TableMessages, Op: events.OpInsert, RowID: m.ID})

	if s.rdb != nil {
		s.rdb.Del(ctx, unreadKey(m.ReceiverID))
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Publish(ctx, ChatChannel(m.ReceiverID), string(payload)).Err(); err != nil {
				zap.L().Warn("chat publish failed", zap.Uint("receiver_id", m.ReceiverID), zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (s *service) GetConversation(ctx context.Context, callerID, otherID uint) ([]MessageResponse, error) {
	if otherID == 0 {
		return nil, messageerrors.ErrInvalidParticipant
	}

	if err := s.MarkConversationRead(ctx, callerID, otherID); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindConversation(ctx, callerID, otherID)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	resp := make([]MessageResponse, len(rows))
	for i, m := range rows {
		resp[i] = mapToResponse(m)
	}
	return resp, nil
}

func (s *service) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	key := unreadKey(userID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			if n, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return n, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		n, err := s.repo.CountUnread(ctx, userID)
		if err != nil {
			return int64(0), err
		}
		if s.rdb != nil {
			s.rdb.Set(ctx, key, strconv.FormatInt(n, 10), unreadCacheTTL)
		}
		return n, nil
	})
	if err != nil {
		return 0, apperror.Storage(err)
	}
	return v.(int64), nil
}

func (s *service) MarkConversationRead(ctx context.Context, callerID, otherID uint) error {
	if err := s.repo.MarkConversationRead(ctx, otherID, callerID); err != nil {
		return apperror.Storage(err)
	}

	if s.rdb != nil {
		s.rdb.Del(ctx, unreadKey(callerID))
	}

	s.bus.Publish(events.Change{Table: events.TableMessages, Op: events.OpUpdate})
	return nil
}
