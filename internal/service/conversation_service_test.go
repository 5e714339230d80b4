package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sreeja24H51A66DH/lendahand1/internal/db"
	"github.com/sreeja24H51A66DH/lendahand1/internal/model"
	"github.com/sreeja24H51A66DH/lendahand1/internal/repository"
	"gorm.io/gorm"
)

func newConversationService(t *testing.T) (ConversationService, *gorm.DB) {
	t.Helper()
	gdb := db.NewTestDB(t)
	svc := NewConversationService(
		repository.NewConversationRepository(gdb),
		repository.NewItemRepository(gdb),
		repository.NewUserRepository(gdb),
	)
	return svc, gdb
}

func seedItem(t *testing.T, gdb *gorm.DB, owner *model.User, title string) *model.Item {
	t.Helper()
	item := &model.Item{
		ID:          uuid.NewString(),
		Title:       title,
		Description: "desc",
		Category:    "Misc",
		ImageURL:    "https://media.example/" + title,
		OwnerID:     owner.ID,
		Status:      model.ItemStatusAvailable,
	}
	if err := gdb.Create(item).Error; err != nil {
		t.Fatalf("seeding item: %v", err)
	}
	return item
}

func TestSendMessageRoutesToSameConversation(t *testing.T) {
	svc, gdb := newConversationService(t)
	ctx := context.Background()

	a := seedUser(t, gdb, "Asha", "asha"+testEmailDomain)
	b := seedUser(t, gdb, "Vikram", "vikram"+testEmailDomain)
	item := seedItem(t, gdb, a, "calculator")

	first, err := svc.SendMessage(ctx, a.ID, b.ID, item.ID, "hello")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	// Reply from the other side lands in the same conversation.
	second, err := svc.SendMessage(ctx, b.ID, a.ID, item.ID, "hi, still available?")
	if err != nil {
		t.Fatalf("SendMessage reply: %v", err)
	}
	if first.ConversationID != second.ConversationID {
		t.Errorf("messages split across conversations: %q vs %q", first.ConversationID, second.ConversationID)
	}
	if first.SenderName != a.Name {
		t.Errorf("sender name snapshot=%q, want %q", first.SenderName, a.Name)
	}

	var count int64
	gdb.Model(&model.Conversation{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 conversation, got %d", count)
	}
}

func TestSendMessageValidation(t *testing.T) {
	svc, gdb := newConversationService(t)
	ctx := context.Background()

	a := seedUser(t, gdb, "Asha", "asha"+testEmailDomain)
	b := seedUser(t, gdb, "Vikram", "vikram"+testEmailDomain)
	item := seedItem(t, gdb, a, "calculator")

	if _, err := svc.SendMessage(ctx, a.ID, a.ID, item.ID, "hi me"); !errors.Is(err, model.ErrInvalidParticipants) {
		t.Errorf("self-message: err=%v, want ErrInvalidParticipants", err)
	}
	if _, err := svc.SendMessage(ctx, a.ID, b.ID, item.ID, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("empty body: err=%v, want ErrValidation", err)
	}
	if _, err := svc.SendMessage(ctx, a.ID, "ghost", item.ID, "hello"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing receiver: err=%v, want ErrNotFound", err)
	}
}

func TestListMessagesMarksCounterpartRead(t *testing.T) {
	svc, gdb := newConversationService(t)
	ctx := context.Background()

	a := seedUser(t, gdb, "Asha", "asha"+testEmailDomain)
	b := seedUser(t, gdb, "Vikram", "vikram"+testEmailDomain)
	item := seedItem(t, gdb, a, "calculator")

	svc.SendMessage(ctx, a.ID, b.ID, item.ID, "hello")
	svc.SendMessage(ctx, a.ID, b.ID, item.ID, "are you there")

	// B views the thread.
	msgs, err := svc.ListMessages(ctx, b.ID, a.ID, item.ID)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Body != "hello" || msgs[1].Body != "are you there" {
		t.Errorf("transcript out of order: %q, %q", msgs[0].Body, msgs[1].Body)
	}

	// After B's view, A's unread count for the thread is 0 on both sides.
	summaries, err := svc.ListConversations(ctx, b.ID)
	if err != nil {
		t.Fatalf("ListConversations: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].UnreadCount != 0 {
		t.Errorf("unread after viewing=%d, want 0", summaries[0].UnreadCount)
	}

	// A never had unread messages from B.
	aSummaries, err := svc.ListConversations(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListConversations(a): %v", err)
	}
	if aSummaries[0].UnreadCount != 0 {
		t.Errorf("sender's own unread=%d, want 0", aSummaries[0].UnreadCount)
	}

	// Re-listing with no new messages changes nothing.
	again, err := svc.ListMessages(ctx, b.ID, a.ID, item.ID)
	if err != nil {
		t.Fatalf("ListMessages again: %v", err)
	}
	if len(again) != 2 {
		t.Fatalf("expected same transcript, got %d messages", len(again))
	}
	for i := range again {
		if !again[i].Read {
			t.Errorf("message %q should stay read", again[i].Body)
		}
	}
}

func TestListConversationsSummaries(t *testing.T) {
	svc, gdb := newConversationService(t)
	ctx := context.Background()

	a := seedUser(t, gdb, "Asha", "asha"+testEmailDomain)
	b := seedUser(t, gdb, "Vikram", "vikram"+testEmailDomain)
	c := seedUser(t, gdb, "Meera", "meera"+testEmailDomain)
	item1 := seedItem(t, gdb, a, "calculator")
	item2 := seedItem(t, gdb, a, "textbook")

	svc.SendMessage(ctx, b.ID, a.ID, item1.ID, "is the calculator free?")
	svc.SendMessage(ctx, b.ID, a.ID, item1.ID, "ping")
	svc.SendMessage(ctx, c.ID, a.ID, item2.ID, "I need that textbook")

	summaries, err := svc.ListConversations(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListConversations: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	// Most recently active first.
	if summaries[0].Item.ID != item2.ID {
		t.Errorf("first summary item=%q, want most recent %q", summaries[0].Item.ID, item2.ID)
	}
	if summaries[0].OtherUser.ID != c.ID || summaries[0].OtherUser.Name != c.Name {
		t.Errorf("counterpart=%+v, want %s", summaries[0].OtherUser, c.Name)
	}
	if summaries[0].LastMessage != "I need that textbook" {
		t.Errorf("last message=%q", summaries[0].LastMessage)
	}
	if summaries[1].LastMessage != "ping" {
		t.Errorf("last message=%q, want latest body", summaries[1].LastMessage)
	}
	if summaries[1].UnreadCount != 2 {
		t.Errorf("unread=%d, want 2", summaries[1].UnreadCount)
	}

	// B only sees its own conversation.
	bSummaries, err := svc.ListConversations(ctx, b.ID)
	if err != nil {
		t.Fatalf("ListConversations(b): %v", err)
	}
	if len(bSummaries) != 1 || bSummaries[0].OtherUser.ID != a.ID {
		t.Errorf("b's inbox=%+v", bSummaries)
	}
}

func TestListConversationsSkipsDanglingReferences(t *testing.T) {
	svc, gdb := newConversationService(t)
	ctx := context.Background()

	a := seedUser(t, gdb, "Asha", "asha"+testEmailDomain)
	b := seedUser(t, gdb, "Vikram", "vikram"+testEmailDomain)
	item1 := seedItem(t, gdb, a, "calculator")
	item2 := seedItem(t, gdb, a, "textbook")

	svc.SendMessage(ctx, b.ID, a.ID, item1.ID, "about the calculator")
	svc.SendMessage(ctx, b.ID, a.ID, item2.ID, "about the textbook")

	// The item vanishes underneath an existing conversation.
	if err := gdb.Delete(&model.Item{}, "id = ?", item1.ID).Error; err != nil {
		t.Fatalf("deleting item: %v", err)
	}

	summaries, err := svc.ListConversations(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListConversations: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected dangling entry to be skipped, got %d summaries", len(summaries))
	}
	if summaries[0].Item.ID != item2.ID {
		t.Errorf("surviving summary item=%q, want %q", summaries[0].Item.ID, item2.ID)
	}
}
