package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/avoevodin/kedobot/internal/repository"
)

type announceService struct {
	submissions repository.SubmissionRepo
	sender      Sender
}

// NewAnnounceService wires broadcasts to every user known from the
// submission store.
func NewAnnounceService(submissions repository.SubmissionRepo, sender Sender) AnnounceService {
	return &announceService{submissions: submissions, sender: sender}
}

func (s *announceService) Broadcast(ctx context.Context, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, fmt.Errorf("broadcast text is empty")
	}

	userIDs, err := s.submissions.ListUserIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing users: %w", err)
	}

	delivered := 0
	for _, id := range userIDs {
		if err := ctx.Err(); err != nil {
			return delivered, err
		}
		// One blocked user must not stop the rest of the broadcast.
		if err := s.sender.Send(ctx, id, text); err != nil {
			log.Printf("broadcast to %d: %v", id, err)
			continue
		}
		delivered++
	}
	return delivered, nil
}
