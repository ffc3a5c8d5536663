package appdata

import (
	"testing"
	"time"
)

func TestSubjectByID(t *testing.T) {
	t.Parallel() // Enable parallel execution

	subject, ok := SubjectByID("physics")
	if !ok {
		t.Fatal("Expected physics subject to exist")
	}
	if subject.Name != "Physics" {
		t.Errorf("Expected name Physics, got %s", subject.Name)
	}

	// Lookup is case-insensitive
	if _, ok := SubjectByID("COMPUTERSCIENCE"); !ok {
		t.Error("Expected case-insensitive subject lookup")
	}

	if _, ok := SubjectByID("chemistry"); ok {
		t.Error("Expected unknown subject to be absent")
	}
}

func TestTopicsForSubject(t *testing.T) {
	t.Parallel() // Enable parallel execution

	topics := TopicsForSubject("physics")
	if len(topics) == 0 {
		t.Fatal("Expected physics topics")
	}

	if topics := TopicsForSubject("chemistry"); topics != nil {
		t.Errorf("Expected nil for unknown subject, got %v", topics)
	}
}

func TestFormatSubjectName(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		id       string
		expected string
	}{
		{"computerscience", "Computer Science"},
		{"computerScience", "Computer Science"},
		{"physics", "Physics"},
		{"mathematics", "Mathematics"},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := FormatSubjectName(tc.id); got != tc.expected {
			t.Errorf("FormatSubjectName(%q) = %q, want %q", tc.id, got, tc.expected)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	t.Parallel() // Enable parallel execution

	today := time.Date(2025, 5, 20, 22, 30, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		date     time.Time
		expected int
	}{
		{
			name:     "later the same day counts as zero",
			date:     time.Date(2025, 5, 20, 23, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "early tomorrow is one whole day",
			date:     time.Date(2025, 5, 21, 8, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "next week",
			date:     time.Date(2025, 5, 27, 9, 0, 0, 0, time.UTC),
			expected: 7,
		},
		{
			name:     "a passed date is negative",
			date:     time.Date(2025, 5, 18, 9, 0, 0, 0, time.UTC),
			expected: -2,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := DaysUntil(tc.date, today); got != tc.expected {
				t.Errorf("Expected %d days, got %d", tc.expected, got)
			}
		})
	}
}

func TestExamScheduleCoversAllSubjects(t *testing.T) {
	t.Parallel() // Enable parallel execution

	schedule := ExamSchedule()
	for _, subject := range Subjects() {
		papers, ok := schedule[subject.ID]
		if !ok || len(papers) == 0 {
			t.Errorf("Expected exam papers for subject %s", subject.ID)
		}
	}
}

func TestBreakDurations(t *testing.T) {
	t.Parallel() // Enable parallel execution

	short, long := BreakDurations()
	if short != 5 || long != 15 {
		t.Errorf("Expected 5/15 minute breaks, got %d/%d", short, long)
	}
}
