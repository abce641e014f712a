package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/voltpoint/voltpoint/internal/model"
)

func TestParseTimestamp_Layouts(t *testing.T) {
	t.Parallel()

	want := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
	}{
		{"RFC3339", "2026-03-01T10:30:00Z"},
		{"no offset", "2026-03-01T10:30:00"},
		{"datetime-local", "2026-03-01T10:30"},
		{"space separated", "2026-03-01 10:30:00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTimestamp(tt.value)
			if err != nil {
				t.Fatalf("ParseTimestamp(%s) failed: %v", tt.value, err)
			}
			if !got.Equal(want) {
				t.Errorf("ParseTimestamp(%s) = %s, want %s", tt.value, got, want)
			}
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "not-a-time", "01/03/2026 10:30", "2026-03-01"} {
		if _, err := ParseTimestamp(value); !errors.Is(err, ErrBadTimestamp) {
			t.Errorf("ParseTimestamp(%q) error = %v, want ErrBadTimestamp", value, err)
		}
	}
}

func TestToUserInfo(t *testing.T) {
	t.Parallel()

	id := &model.Identity{
		ID:    "user-1",
		Role:  model.RoleUser,
		Email: "mario.rossi@example.com",
		Name:  "Mario Rossi",
	}

	info := ToUserInfo(id)

	if info.ID != "user-1" {
		t.Errorf("ID = %s, want user-1", info.ID)
	}
	if info.Email != "mario.rossi@example.com" {
		t.Errorf("Email = %s, want mario.rossi@example.com", info.Email)
	}
	if info.Name != "Mario Rossi" {
		t.Errorf("Name = %s, want Mario Rossi", info.Name)
	}
}
