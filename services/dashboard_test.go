package services

import (
	"reflect"
	"testing"
	"time"

	"partner-portal-api/models"
)

func progressRecords(percentages ...int) []models.PartnerProgress {
	records := make([]models.PartnerProgress, len(percentages))
	for i, p := range percentages {
		records[i] = models.PartnerProgress{PartnerID: i + 1, ProgressPercentage: p}
	}
	return records
}

func submissionsWithStatuses(statuses ...string) []models.Submission {
	subs := make([]models.Submission, len(statuses))
	for i, s := range statuses {
		subs[i] = models.Submission{SubmissionID: i + 1, Status: s}
	}
	return subs
}

func TestDeliverableStatsCountsSubmissionsByStatus(t *testing.T) {
	in := DashboardInput{
		Deliverables: []models.Deliverable{
			{DeliverableID: 1}, {DeliverableID: 2}, {DeliverableID: 3},
		},
		Submissions: submissionsWithStatuses(
			models.SubmissionStatusSubmitted,
			models.SubmissionStatusSubmitted,
			models.SubmissionStatusApproved,
		),
	}

	stats := ComputeDashboardStats(in, time.Now())

	want := DeliverableStats{Pending: 2, Approved: 1, Rejected: 0, Total: 3}
	if stats.Deliverables != want {
		t.Fatalf("unexpected deliverable stats: got %+v, want %+v", stats.Deliverables, want)
	}

	if stats.Funnel.Uploaded != 3 || stats.Funnel.InReview != 2 || stats.Funnel.Approved != 1 {
		t.Fatalf("unexpected funnel: %+v", stats.Funnel)
	}
}

func TestCompletionDistributionOneRecordPerBucket(t *testing.T) {
	in := DashboardInput{Progress: progressRecords(10, 25, 45, 65, 95)}

	stats := ComputeDashboardStats(in, time.Now())

	want := CompletionDistribution{UpTo20: 1, UpTo40: 1, UpTo60: 1, UpTo80: 1, UpTo100: 1}
	if stats.Completion != want {
		t.Fatalf("unexpected distribution: got %+v, want %+v", stats.Completion, want)
	}
}

func TestCompletionBucketsAreDisjointAndSumToRecordCount(t *testing.T) {
	percentages := []int{0, 1, 20, 21, 40, 41, 60, 61, 80, 81, 99, 100, 55, 55}
	in := DashboardInput{Progress: progressRecords(percentages...)}

	stats := ComputeDashboardStats(in, time.Now())

	sum := stats.Completion.UpTo20 + stats.Completion.UpTo40 + stats.Completion.UpTo60 +
		stats.Completion.UpTo80 + stats.Completion.UpTo100
	if sum != len(percentages) {
		t.Fatalf("bucket counts sum to %d, want %d", sum, len(percentages))
	}

	// Boundary values land in the inclusive-upper bucket.
	if stats.Completion.UpTo20 != 3 { // 0, 1, 20
		t.Fatalf("expected 3 records in the first bucket, got %d", stats.Completion.UpTo20)
	}
	if stats.Completion.UpTo100 != 3 { // 81, 99, 100
		t.Fatalf("expected 3 records in the last bucket, got %d", stats.Completion.UpTo100)
	}
}

func TestActivePartnersRequireProgressAboveSixty(t *testing.T) {
	in := DashboardInput{
		Partners: []models.Partner{{PartnerID: 1}, {PartnerID: 2}, {PartnerID: 3}},
		Progress: progressRecords(60, 61, 100),
	}

	stats := ComputeDashboardStats(in, time.Now())

	if stats.TotalPartners != 3 {
		t.Fatalf("expected 3 total partners, got %d", stats.TotalPartners)
	}
	if stats.ActivePartners != 2 {
		t.Fatalf("expected 2 active partners (progress > 60), got %d", stats.ActivePartners)
	}
}

func TestNominationStatsMatchCaseInsensitively(t *testing.T) {
	in := DashboardInput{
		Nominations: []models.Nomination{
			{Status: "Submitted"},
			{Status: "UNDER_REVIEW"},
			{Status: "pending"},
			{Status: "Approved"},
			{Status: "rejected"},
		},
	}

	stats := ComputeDashboardStats(in, time.Now())

	if stats.Nominations.Total != 5 {
		t.Fatalf("expected 5 nominations, got %d", stats.Nominations.Total)
	}
	if stats.Nominations.Pending != 3 {
		t.Fatalf("expected 3 pending nominations, got %d", stats.Nominations.Pending)
	}
	if stats.Nominations.Approved != 1 {
		t.Fatalf("expected 1 approved nomination, got %d", stats.Nominations.Approved)
	}
}

func TestDeadlineBucketsPartitionDeliverables(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	due := func(year int, month time.Month, day int) *time.Time {
		d := time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
		return &d
	}

	in := DashboardInput{
		Deliverables: []models.Deliverable{
			{DeliverableID: 1, DueDate: due(2025, 1, 5)},  // overdue
			{DeliverableID: 2, DueDate: due(2025, 1, 10)}, // today
			{DeliverableID: 3, DueDate: due(2025, 1, 14)}, // this week
			{DeliverableID: 4, DueDate: due(2025, 2, 1)},  // later
			{DeliverableID: 5},                            // no due date: excluded
		},
	}

	stats := ComputeDashboardStats(in, now)

	want := DeadlineBuckets{Overdue: 1, DueToday: 1, DueThisWeek: 1, DueLater: 1}
	if stats.Deadlines != want {
		t.Fatalf("unexpected deadline buckets: got %+v, want %+v", stats.Deadlines, want)
	}

	total := stats.Deadlines.Overdue + stats.Deadlines.DueToday +
		stats.Deadlines.DueThisWeek + stats.Deadlines.DueLater
	if total != 4 {
		t.Fatalf("deliverables with due dates should appear in exactly one bucket, counted %d", total)
	}
}

func TestDeadlineSevenDayBoundary(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	exactlySeven := time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)
	eightDays := time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC)

	in := DashboardInput{
		Deliverables: []models.Deliverable{
			{DeliverableID: 1, DueDate: &exactlySeven},
			{DeliverableID: 2, DueDate: &eightDays},
		},
	}

	stats := ComputeDashboardStats(in, now)

	if stats.Deadlines.DueThisWeek != 1 || stats.Deadlines.DueLater != 1 {
		t.Fatalf("unexpected boundary handling: %+v", stats.Deadlines)
	}
}

func TestComputeDashboardStatsIsIdempotent(t *testing.T) {
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 2, 20, 8, 0, 0, 0, time.UTC)
	in := DashboardInput{
		Partners:     []models.Partner{{PartnerID: 1}},
		Deliverables: []models.Deliverable{{DeliverableID: 1, DueDate: &due}},
		Submissions:  submissionsWithStatuses(models.SubmissionStatusPendingReview),
		Nominations:  []models.Nomination{{Status: models.NominationStatusApproved}},
		Progress:     progressRecords(75),
	}

	first := ComputeDashboardStats(in, now)
	second := ComputeDashboardStats(in, now)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results for identical inputs:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestEmptyInputYieldsZeroedStats(t *testing.T) {
	stats := ComputeDashboardStats(DashboardInput{}, time.Now())

	if stats.TotalPartners != 0 || stats.ActivePartners != 0 {
		t.Fatalf("expected zero partner counts, got %+v", stats)
	}
	if stats.Deliverables != (DeliverableStats{}) {
		t.Fatalf("expected zero deliverable stats, got %+v", stats.Deliverables)
	}
	if stats.Deadlines != (DeadlineBuckets{}) {
		t.Fatalf("expected zero deadline buckets, got %+v", stats.Deadlines)
	}
}
