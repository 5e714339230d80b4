package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sreeja24H51A66DH/lendahand1/internal/model"
	"github.com/sreeja24H51A66DH/lendahand1/internal/repository"
	"gorm.io/gorm"
)

// ConversationSummary is one entry of the inbox listing: the conversation
// joined with the counterpart's public profile, the item it is about, the
// latest message body and the number of still-unread counterpart messages.
type ConversationSummary struct {
	ConversationID model.ConversationID
	Item           ItemSummary
	OtherUser      UserSummary
	LastMessage    string
	LastMessageAt  time.Time
	UnreadCount    int64
}

type ItemSummary struct {
	ID       string
	Title    string
	ImageURL string
}

type UserSummary struct {
	ID   string
	Name string
}

type ConversationService interface {
	SendMessage(ctx context.Context, senderID, receiverID, itemID, body string) (*model.Message, error)
	ListMessages(ctx context.Context, requesterID, otherUserID, itemID string) ([]model.Message, error)
	ListConversations(ctx context.Context, userID string) ([]ConversationSummary, error)
}

type conversationService struct {
	convRepo repository.ConversationRepository
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
}

func NewConversationService(convRepo repository.ConversationRepository, itemRepo repository.ItemRepository, userRepo repository.UserRepository) ConversationService {
	return &conversationService{convRepo: convRepo, itemRepo: itemRepo, userRepo: userRepo}
}

func (s *conversationService) SendMessage(ctx context.Context, senderID, receiverID, itemID, body string) (*model.Message, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: message body is required", ErrValidation)
	}

	convID, err := model.NewConversationID(senderID, receiverID, itemID)
	if err != nil {
		return nil, err
	}

	sender, err := s.userRepo.FindByID(ctx, senderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, receiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	lo, hi := senderID, receiverID
	if hi < lo {
		lo, hi = hi, lo
	}

	now := time.Now().UTC()
	cv := &model.Conversation{
		ID:            convID,
		ItemID:        itemID,
		ParticipantLo: lo,
		ParticipantHi: hi,
		CreatedAt:     now,
		LastMessageAt: now,
	}
	if err := s.convRepo.CreateIfAbsent(ctx, cv); err != nil {
		return nil, err
	}

	msg := &model.Message{
		ID:             uuid.NewString(),
		ConversationID: convID,
		SenderID:       sender.ID,
		SenderName:     sender.Name,
		Body:           body,
		Read:           false,
		CreatedAt:      now,
	}
	if err := s.convRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	if err := s.convRepo.TouchLastMessage(ctx, convID, now); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListMessages returns the chronological transcript between the requester and
// otherUserID about itemID, then flips the counterpart's unread messages to
// read. The requester is always a participant because the conversation id is
// derived from the authenticated requester id itself.
func (s *conversationService) ListMessages(ctx context.Context, requesterID, otherUserID, itemID string) ([]model.Message, error) {
	convID, err := model.NewConversationID(requesterID, otherUserID, itemID)
	if err != nil {
		return nil, err
	}

	msgs, err := s.convRepo.ListMessages(ctx, convID)
	if err != nil {
		return nil, err
	}

	if err := s.convRepo.MarkRead(ctx, convID, otherUserID); err != nil {
		return nil, err
	}
	return msgs, nil
}

// ListConversations resolves the inbox for userID, most recently active
// first. Entries whose item or counterpart no longer exists are skipped; a
// dangling reference never fails the whole listing.
func (s *conversationService) ListConversations(ctx context.Context, userID string) ([]ConversationSummary, error) {
	convs, err := s.convRepo.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]ConversationSummary, 0, len(convs))
	for i := range convs {
		cv := &convs[i]

		otherID := cv.Other(userID)
		if otherID == "" {
			continue
		}

		other, err := s.userRepo.FindByID(ctx, otherID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		item, err := s.itemRepo.FindByID(ctx, cv.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		last, err := s.convRepo.LastMessage(ctx, cv.ID)
		if err != nil {
			return nil, err
		}
		lastBody := ""
		if last != nil {
			lastBody = last.Body
		}

		unread, err := s.convRepo.CountUnread(ctx, cv.ID, otherID)
		if err != nil {
			return nil, err
		}

		result = append(result, ConversationSummary{
			ConversationID: cv.ID,
			Item:           ItemSummary{ID: item.ID, Title: item.Title, ImageURL: item.ImageURL},
			OtherUser:      UserSummary{ID: other.ID, Name: other.Name},
			LastMessage:    lastBody,
			LastMessageAt:  cv.LastMessageAt,
			UnreadCount:    unread,
		})
	}
	return result, nil
}
