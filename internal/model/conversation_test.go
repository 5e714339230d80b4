package model

import "testing"

func TestNewConversationID(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		itemID  string
		want    ConversationID
		wantErr bool
	}{
		{"already ordered", "a1", "b1", "it1", "a1_b1_it1", false},
		{"reversed pair", "b1", "a1", "it1", "a1_b1_it1", false},
		{"lexicographic not numeric", "u10", "u2", "it1", "u10_u2_it1", false},
		{"same user twice", "a1", "a1", "it1", "", true},
		{"empty participant", "", "b1", "it1", "", true},
		{"empty item", "a1", "b1", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewConversationID(tt.a, tt.b, tt.itemID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("got=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestNewConversationIDOrderIndependent(t *testing.T) {
	pairs := [][2]string{{"a1", "b1"}, {"zz", "aa"}, {"user-9", "user-10"}}
	for _, p := range pairs {
		ab, err := NewConversationID(p[0], p[1], "item-x")
		if err != nil {
			t.Fatalf("NewConversationID(%q,%q): %v", p[0], p[1], err)
		}
		ba, err := NewConversationID(p[1], p[0], "item-x")
		if err != nil {
			t.Fatalf("NewConversationID(%q,%q): %v", p[1], p[0], err)
		}
		if ab != ba {
			t.Errorf("derivation depends on order: %q vs %q", ab, ba)
		}
	}
}

func TestConversationParticipantHelpers(t *testing.T) {
	cv := &Conversation{ParticipantLo: "a1", ParticipantHi: "b1"}

	if !cv.HasParticipant("a1") || !cv.HasParticipant("b1") {
		t.Error("expected both members to be participants")
	}
	if cv.HasParticipant("c1") {
		t.Error("expected outsider not to be a participant")
	}
	if got := cv.Other("a1"); got != "b1" {
		t.Errorf("Other(a1)=%q, want b1", got)
	}
	if got := cv.Other("b1"); got != "a1" {
		t.Errorf("Other(b1)=%q, want a1", got)
	}
	if got := cv.Other("c1"); got != "" {
		t.Errorf("Other(c1)=%q, want empty", got)
	}
}
