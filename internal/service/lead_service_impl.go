package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avoevodin/kedobot/internal/calc"
	"github.com/avoevodin/kedobot/internal/crm"
	"github.com/avoevodin/kedobot/internal/domain"
	"github.com/avoevodin/kedobot/internal/repository"
)

type leadService struct {
	crm         crm.Client
	submissions repository.SubmissionRepo
}

// NewLeadService wires lead hand-off to the CRM client. The user's
// latest calculation, when present, travels along in the lead comments.
func NewLeadService(client crm.Client, submissions repository.SubmissionRepo) LeadService {
	return &leadService{crm: client, submissions: submissions}
}

func (s *leadService) Submit(ctx context.Context, userID int64, contact domain.Contact) error {
	if missing := contact.MissingFields(); len(missing) > 0 {
		return &domain.MissingFieldsError{Fields: missing}
	}

	lead := domain.Lead{Contact: contact}
	sub, err := s.submissions.LatestByUser(ctx, userID)
	switch {
	case err == nil:
		lead.Submission = sub
	case errors.Is(err, repository.ErrNotFound):
		// A lead without a finished calculation is still a lead.
	default:
		return fmt.Errorf("loading latest submission: %w", err)
	}

	req := crm.LeadRequest{
		Title:    "Заявка с бота КЭДО " + contact.Name,
		Name:     contact.Name,
		Phone:    contact.Phone,
		Email:    contact.Email,
		Comments: leadComments(lead),
	}
	if _, err := s.crm.CreateLead(ctx, req); err != nil {
		return fmt.Errorf("forwarding lead for user %d: %w", userID, err)
	}
	return nil
}

// leadComments serializes everything Bitrix has no dedicated field for.
func leadComments(lead domain.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Организация: %s\n", lead.Contact.Organization)
	if lead.Contact.Preference != "" {
		fmt.Fprintf(&b, "Предпочтительный способ связи: %s\n", lead.Contact.Preference)
	}

	if sub := lead.Submission; sub != nil {
		a := sub.Answers
		t := sub.Totals
		fmt.Fprintf(&b, "\nРасчёт от %s:\n", sub.CreatedAt.Format("02.01.2006"))
		fmt.Fprintf(&b, "Сотрудников: %d, кадровых специалистов: %d\n", a.EmployeeCount, a.HRSpecialistCount)
		fmt.Fprintf(&b, "Тариф: %s\n", a.Tier.TariffName())
		fmt.Fprintf(&b, "Расходы на бумажное КДП: %s руб./год\n", calc.FormatMoney(t.PaperWorkflow()))
		fmt.Fprintf(&b, "Стоимость лицензий: %s руб./год\n", calc.FormatMoney(t.License))
		fmt.Fprintf(&b, "Экономия: %s руб./год\n", calc.FormatMoney(t.NetSavings()))
	}

	return strings.TrimRight(b.String(), "\n")
}
