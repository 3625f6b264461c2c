package service

import (
	"context"
	"fmt"

	"practicego/internal/models"
	"practicego/internal/progress"
)

// reminderMinStreak is the smallest streak worth a reminder email
const reminderMinStreak = 3

// ProgressReader exposes the current record for display. Satisfied by
// progress.Service.
type ProgressReader interface {
	Progress() *models.ProgressRecord
}

// ReminderSender sends the streak reminder. Satisfied by EmailService.
type ReminderSender interface {
	IsEnabled() bool
	SendStreakReminderEmail(ctx context.Context, toEmail string, streak int) error
}

// ReminderService decides when to nudge the learner about an expiring
// streak. Check is meant to run on an hourly ticker; it sends at most
// one email per calendar day, in the evening of a day with no practice
// yet while yesterday's streak is still alive.
type ReminderService struct {
	progress  ProgressReader
	sender    ReminderSender
	clock     progress.Clock
	toEmail   string
	afterHour int

	lastSentDay string
}

// NewReminderService creates a new reminder service
func NewReminderService(reader ProgressReader, sender ReminderSender, clock progress.Clock, toEmail string, afterHour int) *ReminderService {
	return &ReminderService{
		progress:  reader,
		sender:    sender,
		clock:     clock,
		toEmail:   toEmail,
		afterHour: afterHour,
	}
}

// Check sends a reminder if one is due. The returned boolean reports
// whether an email was sent.
func (s *ReminderService) Check(ctx context.Context) (bool, error) {
	if !s.sender.IsEnabled() || s.toEmail == "" {
		return false, nil
	}

	now := s.clock.Now()
	today := progress.DateKey(now)

	if s.lastSentDay == today {
		return false, nil
	}
	if now.Hour() < s.afterHour {
		return false, nil
	}

	record := s.progress.Progress()
	if record.Streak < reminderMinStreak || record.LastPracticed == nil {
		return false, nil
	}
	// Only when yesterday was practiced and today was not: practicing
	// today moves lastPracticed to today, which disarms the reminder.
	yesterday := progress.DateKey(now.AddDate(0, 0, -1))
	if progress.DateKey(*record.LastPracticed) != yesterday {
		return false, nil
	}

	if err := s.sender.SendStreakReminderEmail(ctx, s.toEmail, record.Streak); err != nil {
		return false, fmt.Errorf("failed to send streak reminder: %w", err)
	}
	s.lastSentDay = today
	return true, nil
}
