package service

import (
	"context"
	"testing"
	"time"

	"practicego/internal/models"
)

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time { return c.now }

type fakeSender struct {
	enabled bool
	sent    []int
}

func (f *fakeSender) IsEnabled() bool { return f.enabled }

func (f *fakeSender) SendStreakReminderEmail(ctx context.Context, toEmail string, streak int) error {
	f.sent = append(f.sent, streak)
	return nil
}

func reminderRecord(streak int, lastPracticed time.Time) *fakeProgress {
	last := lastPracticed
	return &fakeProgress{record: models.ProgressRecord{
		Streak:        streak,
		LastPracticed: &last,
	}}
}

func TestReminderCheck(t *testing.T) {
	evening := time.Date(2025, 6, 10, 19, 0, 0, 0, time.Local)
	yesterday := evening.AddDate(0, 0, -1)

	tests := []struct {
		name     string
		streak   int
		last     time.Time
		now      time.Time
		wantSend bool
	}{
		{name: "due", streak: 5, last: yesterday, now: evening, wantSend: true},
		{name: "streak too short", streak: 2, last: yesterday, now: evening, wantSend: false},
		{name: "too early in the day", streak: 5, last: yesterday, now: evening.Add(-3 * time.Hour), wantSend: false},
		{name: "already practiced today", streak: 5, last: evening.Add(-2 * time.Hour), now: evening, wantSend: false},
		{name: "streak already broken", streak: 5, last: evening.AddDate(0, 0, -3), now: evening, wantSend: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{enabled: true}
			svc := NewReminderService(reminderRecord(tt.streak, tt.last), sender, &stubClock{now: tt.now}, "learner@example.com", 18)

			sent, err := svc.Check(context.Background())
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if sent != tt.wantSend {
				t.Errorf("Check() sent = %v, want %v", sent, tt.wantSend)
			}
		})
	}
}

func TestReminderOncePerDay(t *testing.T) {
	evening := time.Date(2025, 6, 10, 19, 0, 0, 0, time.Local)
	clock := &stubClock{now: evening}
	sender := &fakeSender{enabled: true}
	svc := NewReminderService(reminderRecord(4, evening.AddDate(0, 0, -1)), sender, clock, "learner@example.com", 18)

	for i := 0; i < 3; i++ {
		if _, err := svc.Check(context.Background()); err != nil {
			t.Fatalf("Check() error = %v", err)
		}
		clock.now = clock.now.Add(time.Hour)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("got %d reminders in one day, want 1", len(sender.sent))
	}

	// Next evening with the record still one day behind sends again
	clock.now = evening.AddDate(0, 0, 1)
	svc.progress = reminderRecord(4, evening)
	if _, err := svc.Check(context.Background()); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if len(sender.sent) != 2 {
		t.Errorf("got %d reminders across two days, want 2", len(sender.sent))
	}
}

func TestReminderDisabledSender(t *testing.T) {
	evening := time.Date(2025, 6, 10, 19, 0, 0, 0, time.Local)
	sender := &fakeSender{enabled: false}
	svc := NewReminderService(reminderRecord(5, evening.AddDate(0, 0, -1)), sender, &stubClock{now: evening}, "learner@example.com", 18)

	sent, err := svc.Check(context.Background())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if sent {
		t.Error("Check() sent with a disabled sender")
	}
}
