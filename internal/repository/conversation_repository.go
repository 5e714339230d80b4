package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sreeja24H51A66DH/lendahand1/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationRepository interface {
	CreateIfAbsent(ctx context.Context, cv *model.Conversation) error
	FindByID(ctx context.Context, id model.ConversationID) (*model.Conversation, error)
	FindByParticipant(ctx context.Context, uid string) ([]model.Conversation, error)
	TouchLastMessage(ctx context.Context, id model.ConversationID, at time.Time) error
	CreateMessage(ctx context.Context, msg *model.Message) error
	ListMessages(ctx context.Context, id model.ConversationID) ([]model.Message, error)
	MarkRead(ctx context.Context, id model.ConversationID, senderID string) error
	LastMessage(ctx context.Context, id model.ConversationID) (*model.Message, error)
	CountUnread(ctx context.Context, id model.ConversationID, senderID string) (int64, error)
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// CreateIfAbsent inserts the conversation keyed by its derived id, doing
// nothing when the row already exists. The insert is a single atomic
// statement, so two concurrent first-sends for the same pair and item can
// never produce two rows.
func (r *conversationRepository) CreateIfAbsent(ctx context.Context, cv *model.Conversation) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(cv).Error
}

func (r *conversationRepository) FindByID(ctx context.Context, id model.ConversationID) (*model.Conversation, error) {
	var cv model.Conversation
	if err := r.db.WithContext(ctx).First(&cv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *conversationRepository) FindByParticipant(ctx context.Context, uid string) ([]model.Conversation, error) {
	var list []model.Conversation
	if err := r.db.WithContext(ctx).
		Where("participant_lo = ? OR participant_hi = ?", uid, uid).
		Order("last_message_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *conversationRepository) TouchLastMessage(ctx context.Context, id model.ConversationID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Conversation{}).
		Where("id = ?", id).
		Update("last_message_at", at).Error
}

func (r *conversationRepository) CreateMessage(ctx context.Context, msg *model.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *conversationRepository) ListMessages(ctx context.Context, id model.ConversationID) ([]model.Message, error) {
	var msgs []model.Message
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", id).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// MarkRead flips every unread message from senderID in one conditional
// update. Re-running it is a no-op.
func (r *conversationRepository) MarkRead(ctx context.Context, id model.ConversationID, senderID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("conversation_id = ? AND sender_id = ? AND is_read = ?", id, senderID, false).
		Update("is_read", true).Error
}

// LastMessage returns (nil, nil) for a conversation with no messages.
func (r *conversationRepository) LastMessage(ctx context.Context, id model.ConversationID) (*model.Message, error) {
	var msg model.Message
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", id).
		Order("created_at DESC, id DESC").
		First(&msg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

func (r *conversationRepository) CountUnread(ctx context.Context, id model.ConversationID, senderID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("conversation_id = ? AND sender_id = ? AND is_read = ?", id, senderID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
