package model

import "time"

type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "available"
	ItemStatusTaken     ItemStatus = "taken"
)

// ValidItemStatus reports whether s is one of the two supported states.
func ValidItemStatus(s ItemStatus) bool {
	return s == ItemStatusAvailable || s == ItemStatusTaken
}

type Item struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Title        string     `gorm:"size:120;not null" json:"title"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Category     string     `gorm:"size:64;index" json:"category"`
	ImageURL     string     `gorm:"column:image_url;size:512;not null" json:"imageUrl"`
	Location     string     `gorm:"size:120" json:"location"`
	ContactName  string     `gorm:"column:contact_name;size:120" json:"contactName"`
	ContactEmail string     `gorm:"column:contact_email;size:255" json:"contactEmail"`
	ContactPhone string     `gorm:"column:contact_phone;size:32" json:"contactPhone"`
	OwnerID      string     `gorm:"column:owner_id;size:36;index" json:"ownerId"`
	Status       ItemStatus `gorm:"size:16;not null;default:available" json:"status"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (Item) TableName() string {
	return "items"
}
