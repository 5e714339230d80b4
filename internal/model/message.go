package model

import "time"

type Message struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	ConversationID ConversationID `gorm:"column:conversation_id;size:110;index" json:"conversationId"`
	SenderID       string         `gorm:"column:sender_id;size:36;index" json:"senderId"`
	SenderName     string         `gorm:"column:sender_name;size:120" json:"senderName"`
	Body           string         `gorm:"type:text;not null" json:"body"`
	Read           bool           `gorm:"column:is_read;not null;default:false" json:"read"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (Message) TableName() string {
	return "messages"
}
