package services

import (
	"fmt"
	"log"
	"time"

	"partner-portal-api/config"
	"partner-portal-api/models"
)

// DeliverableDueWithin reports whether the deliverable falls in a reminder
// window of the given length: due between now (inclusive, same calendar day)
// and daysBefore days ahead. Deliverables without a due date never match.
func DeliverableDueWithin(d models.Deliverable, now time.Time, daysBefore int) bool {
	if d.DueDate == nil {
		return false
	}
	days := calendarDaysUntil(now, *d.DueDate)
	return days >= 0 && days <= daysBefore
}

// RunReminderSweep evaluates every enabled reminder rule against open
// deliverables and notifies the owning partners. Returns the number of
// reminders sent. Deliverables whose latest submission is already approved
// are skipped.
func RunReminderSweep(now time.Time) (int, error) {
	var rules []models.ReminderRule
	if err := config.DB.Where("enabled = ? AND delete_at IS NULL", true).Find(&rules).Error; err != nil {
		return 0, fmt.Errorf("failed to load reminder rules: %w", err)
	}
	if len(rules) == 0 {
		return 0, nil
	}

	var deliverables []models.Deliverable
	if err := config.DB.Where("due_date IS NOT NULL AND delete_at IS NULL").Find(&deliverables).Error; err != nil {
		return 0, fmt.Errorf("failed to load deliverables: %w", err)
	}

	sent := 0
	for _, rule := range rules {
		for _, d := range deliverables {
			if !DeliverableDueWithin(d, now, rule.DaysBefore) {
				continue
			}
			if latestSubmissionApproved(d.DeliverableID) {
				continue
			}
			message := fmt.Sprintf("%s: \"%s\" is due on %s.",
				rule.Message, d.Title, d.DueDate.Format("2006-01-02"))
			NotifyPartnerUsers(d.PartnerID, rule.Title, message, "warning", "deliverable", d.DeliverableID)
			sent++
		}

		runAt := now
		if err := config.DB.Model(&models.ReminderRule{}).
			Where("rule_id = ?", rule.RuleID).
			Update("last_run_at", runAt).Error; err != nil {
			log.Printf("Warning: failed to stamp reminder rule %d: %v", rule.RuleID, err)
		}
	}

	return sent, nil
}

func latestSubmissionApproved(deliverableID int) bool {
	var latest models.Submission
	err := config.DB.Where("deliverable_id = ?", deliverableID).
		Order("version DESC").
		First(&latest).Error
	if err != nil {
		return false
	}
	return latest.Status == models.SubmissionStatusApproved
}
