package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avoevodin/kedobot/internal/repository"
)

type statsService struct {
	submissions repository.SubmissionRepo
}

// NewStatsService builds usage reports from the submission store.
func NewStatsService(submissions repository.SubmissionRepo) StatsService {
	return &statsService{submissions: submissions}
}

// statWindows are the trailing periods of the overview, longest last.
var statWindows = []struct {
	name string
	back func(time.Time) time.Time
}{
	{"day", func(t time.Time) time.Time { return t.AddDate(0, 0, -1) }},
	{"week", func(t time.Time) time.Time { return t.AddDate(0, 0, -7) }},
	{"month", func(t time.Time) time.Time { return t.AddDate(0, -1, 0) }},
	{"quarter", func(t time.Time) time.Time { return t.AddDate(0, -3, 0) }},
	{"year", func(t time.Time) time.Time { return t.AddDate(-1, 0, 0) }},
}

func (s *statsService) Overview(ctx context.Context, now time.Time) (*StatsOverview, error) {
	now = now.UTC()
	var counts [5]int
	for i, w := range statWindows {
		n, err := s.submissions.CountDistinctUsers(ctx, w.back(now), now)
		if err != nil {
			return nil, fmt.Errorf("counting users for %s: %w", w.name, err)
		}
		counts[i] = n
	}

	users, err := s.submissions.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return &StatsOverview{
		Day:     counts[0],
		Week:    counts[1],
		Month:   counts[2],
		Quarter: counts[3],
		Year:    counts[4],
		Total:   len(users),
	}, nil
}
