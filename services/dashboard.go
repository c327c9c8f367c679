package services

import (
	"strings"
	"time"

	"partner-portal-api/models"
)

// DashboardInput carries the already-fetched record collections the dashboard
// metrics are derived from. Collections are expected to be access-scoped before
// they get here; a collection that failed to load is passed as an empty slice.
type DashboardInput struct {
	Partners       []models.Partner
	Deliverables   []models.Deliverable
	Submissions    []models.Submission
	Nominations    []models.Nomination
	Progress       []models.PartnerProgress
	MediaFileCount int
	RecentActivity []models.ActivityLog
}

type DeliverableStats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

type NominationStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
}

// CompletionDistribution partitions progress percentages into five fixed
// buckets with inclusive upper boundaries.
type CompletionDistribution struct {
	UpTo20  int `json:"0-20"`
	UpTo40  int `json:"21-40"`
	UpTo60  int `json:"41-60"`
	UpTo80  int `json:"61-80"`
	UpTo100 int `json:"81-100"`
}

type WorkflowFunnel struct {
	Uploaded int `json:"uploaded"`
	InReview int `json:"in_review"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// DeadlineBuckets counts deliverables by distance to their due date.
// A deliverable without a due date is counted in none of them.
type DeadlineBuckets struct {
	Overdue     int `json:"overdue"`
	DueToday    int `json:"due_today"`
	DueThisWeek int `json:"due_this_week"`
	DueLater    int `json:"due_later"`
}

type DashboardStats struct {
	TotalPartners  int                    `json:"total_partners"`
	ActivePartners int                    `json:"active_partners"`
	Deliverables   DeliverableStats       `json:"deliverables"`
	Nominations    NominationStats        `json:"nominations"`
	Completion     CompletionDistribution `json:"completion_distribution"`
	Funnel         WorkflowFunnel         `json:"workflow_funnel"`
	Deadlines      DeadlineBuckets        `json:"deadlines"`
	MediaFileCount int                    `json:"media_file_count"`
	RecentActivity []models.ActivityLog   `json:"recent_activity"`
}

// ComputeDashboardStats derives all dashboard metrics from the input snapshot
// in a single pass per collection. Pure: no I/O, no ambient state; callers
// re-invoke it on every new snapshot.
func ComputeDashboardStats(in DashboardInput, now time.Time) DashboardStats {
	stats := DashboardStats{
		TotalPartners:  len(in.Partners),
		MediaFileCount: in.MediaFileCount,
		RecentActivity: in.RecentActivity,
	}

	for _, p := range in.Progress {
		if p.ProgressPercentage > 60 {
			stats.ActivePartners++
		}
		switch {
		case p.ProgressPercentage <= 20:
			stats.Completion.UpTo20++
		case p.ProgressPercentage <= 40:
			stats.Completion.UpTo40++
		case p.ProgressPercentage <= 60:
			stats.Completion.UpTo60++
		case p.ProgressPercentage <= 80:
			stats.Completion.UpTo80++
		default:
			stats.Completion.UpTo100++
		}
	}

	stats.Deliverables.Total = len(in.Deliverables)
	for _, s := range in.Submissions {
		switch s.Status {
		case models.SubmissionStatusSubmitted, models.SubmissionStatusPendingReview:
			stats.Deliverables.Pending++
		case models.SubmissionStatusApproved:
			stats.Deliverables.Approved++
		case models.SubmissionStatusRejected:
			stats.Deliverables.Rejected++
		}
	}

	stats.Funnel = WorkflowFunnel{
		Uploaded: len(in.Submissions),
		InReview: stats.Deliverables.Pending,
		Approved: stats.Deliverables.Approved,
		Rejected: stats.Deliverables.Rejected,
	}

	stats.Nominations.Total = len(in.Nominations)
	for _, n := range in.Nominations {
		switch strings.ToLower(n.Status) {
		case models.NominationStatusSubmitted, models.NominationStatusUnderReview, models.NominationStatusPending:
			stats.Nominations.Pending++
		case models.NominationStatusApproved:
			stats.Nominations.Approved++
		}
	}

	for _, d := range in.Deliverables {
		if d.DueDate == nil {
			continue
		}
		switch days := calendarDaysUntil(now, *d.DueDate); {
		case days == 0:
			stats.Deadlines.DueToday++
		case days < 0:
			stats.Deadlines.Overdue++
		case days <= 7:
			stats.Deadlines.DueThisWeek++
		default:
			stats.Deadlines.DueLater++
		}
	}

	return stats
}

// calendarDaysUntil returns the whole-day distance between now and due,
// comparing calendar dates so a deadline later today still counts as today.
func calendarDaysUntil(now, due time.Time) int {
	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dueDate := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	return int(dueDate.Sub(nowDate).Hours() / 24)
}
