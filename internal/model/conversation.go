package model

import (
	"errors"
	"time"
)

// ErrInvalidParticipants is returned when a conversation id is requested for
// a degenerate pair (same user twice, or a missing id).
var ErrInvalidParticipants = errors.New("conversation requires two distinct participants")

// ConversationID identifies the single conversation between an unordered pair
// of users about one item. The id is derived, never generated: the sorted
// pair joined with the item id is itself the lookup key, so the same pair and
// item always lands on the same row.
type ConversationID string

// NewConversationID derives the id for the pair (a, b) about itemID.
// Derivation is order-independent: NewConversationID(a, b, i) equals
// NewConversationID(b, a, i).
func NewConversationID(a, b, itemID string) (ConversationID, error) {
	if a == "" || b == "" || itemID == "" || a == b {
		return "", ErrInvalidParticipants
	}
	lo, hi := a, b
	if hi < lo {
		lo, hi = hi, lo
	}
	return ConversationID(lo + "_" + hi + "_" + itemID), nil
}

func (id ConversationID) String() string {
	return string(id)
}

type Conversation struct {
	ID            ConversationID `gorm:"primaryKey;size:110" json:"id"`
	ItemID        string         `gorm:"column:item_id;size:36;index" json:"itemId"`
	ParticipantLo string         `gorm:"column:participant_lo;size:36;index" json:"-"`
	ParticipantHi string         `gorm:"column:participant_hi;size:36;index" json:"-"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	LastMessageAt time.Time      `gorm:"column:last_message_at;index" json:"lastMessageAt"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// HasParticipant reports whether uid is one of the two members.
func (c *Conversation) HasParticipant(uid string) bool {
	return uid == c.ParticipantLo || uid == c.ParticipantHi
}

// Other returns the counterpart of uid, or "" when uid is not a member.
func (c *Conversation) Other(uid string) string {
	switch uid {
	case c.ParticipantLo:
		return c.ParticipantHi
	case c.ParticipantHi:
		return c.ParticipantLo
	}
	return ""
}
