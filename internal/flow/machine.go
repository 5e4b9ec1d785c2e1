package flow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/avoevodin/kedobot/internal/calc"
	"github.com/avoevodin/kedobot/internal/domain"
	"github.com/avoevodin/kedobot/internal/validate"
)

// Machine advances sessions through the conversation. One instance
// serves all users; all per-user state lives in the Session.
type Machine struct {
	calc  Finalizer
	leads LeadSubmitter
}

// NewMachine creates a Machine over the calculator and lead ports.
func NewMachine(finalizer Finalizer, leads LeadSubmitter) *Machine {
	return &Machine{calc: finalizer, leads: leads}
}

// Welcome returns the greeting shown on first contact.
func (m *Machine) Welcome() Reply {
	return Reply{
		Text:    textWelcome,
		Options: []Option{{Label: labelStart, Action: ActionStart}},
	}
}

// HandleAction processes a discrete signal. Start, restart and stop are
// honored from any state; the rest only where the keyboard offered them.
func (m *Machine) HandleAction(ctx context.Context, s *Session, action Action) ([]Reply, error) {
	switch action {
	case ActionStart, ActionRestart:
		s.reset()
		s.Step = StepEmployeeCount
		return []Reply{{Text: promptEmployeeCount}}, nil

	case ActionStop:
		s.reset()
		return []Reply{{
			Text:    textStopped,
			Options: []Option{{Label: labelStart, Action: ActionStart}},
		}}, nil

	case ActionTierLite, ActionTierStandard:
		if s.Step != StepLicenseChoice {
			return m.fallback(), nil
		}
		tier := domain.TierStandard
		if action == ActionTierLite {
			tier = domain.TierLite
		}
		s.Answers.Tier = tier
		s.Step = StepHRSpecialistCount
		return []Reply{{Text: promptHRSpecialistCount}}, nil

	case ActionConfirm:
		if s.Step != StepAwaitConfirm || s.LastResult == nil {
			return m.fallback(), nil
		}
		s.Step = StepAwaitContact
		return m.resultReplies(s.LastResult), nil

	case ActionContactMe:
		if s.Step != StepAwaitConfirm && s.Step != StepAwaitContact {
			return m.fallback(), nil
		}
		s.Contact = domain.Contact{}
		s.Step = StepLeadName
		return []Reply{{Text: promptContactName}}, nil
	}

	return m.fallback(), nil
}

// textHandlers dispatches free-text input by current step.
var textHandlers = map[Step]func(*Machine, context.Context, *Session, string) ([]Reply, error){
	StepEmployeeCount:     (*Machine).handleEmployeeCount,
	StepLicenseChoice:     (*Machine).handleLicenseChoiceText,
	StepHRSpecialistCount: (*Machine).handleHRSpecialistCount,
	StepDocsPerEmployee:   (*Machine).handleDocsPerEmployee,
	StepPagesPerDoc:       (*Machine).handlePagesPerDoc,
	StepTurnoverPct:       (*Machine).handleTurnoverPct,
	StepAvgSalary:         (*Machine).handleAvgSalary,
	StepCourierCost:       (*Machine).handleCourierCost,
	StepHRDeliveryPct:     (*Machine).handleHRDeliveryPct,
	StepLeadName:          (*Machine).handleLeadName,
	StepLeadPhone:         (*Machine).handleLeadPhone,
	StepLeadEmail:         (*Machine).handleLeadEmail,
	StepLeadOrg:           (*Machine).handleLeadOrg,
	StepLeadPreference:    (*Machine).handleLeadPreference,
}

// HandleText processes a free-text reply for the session's current step.
func (m *Machine) HandleText(ctx context.Context, s *Session, text string) ([]Reply, error) {
	if h, ok := textHandlers[s.Step]; ok {
		return h(m, ctx, s, text)
	}
	return m.fallback(), nil
}

func (m *Machine) fallback() []Reply {
	return []Reply{{
		Text:    textEcho,
		Options: []Option{{Label: labelStart, Action: ActionStart}},
	}}
}

// ── calculator form steps ───────────────────────────────────────────────

func (m *Machine) handleEmployeeCount(ctx context.Context, s *Session, text string) ([]Reply, error) {
	n, err := validate.EmployeeCount(text)
	if err != nil {
		return []Reply{{Text: errInteger}}, nil
	}
	s.Answers.EmployeeCount = &n

	if tier, auto := domain.AutoTier(n); auto {
		s.Answers.Tier = tier
		s.Step = StepHRSpecialistCount
		return []Reply{{Text: promptHRSpecialistCount}}, nil
	}

	s.Step = StepLicenseChoice
	return []Reply{{
		Text: promptLicenseChoice,
		Options: []Option{
			{Label: labelTierLite, Action: ActionTierLite},
			{Label: labelTierStandard, Action: ActionTierStandard},
		},
	}}, nil
}

func (m *Machine) handleLicenseChoiceText(ctx context.Context, s *Session, text string) ([]Reply, error) {
	// Tier is picked with buttons; typed text is not a valid answer here.
	return []Reply{{
		Text: errUseButtons,
		Options: []Option{
			{Label: labelTierLite, Action: ActionTierLite},
			{Label: labelTierStandard, Action: ActionTierStandard},
		},
	}}, nil
}

func (m *Machine) handleHRSpecialistCount(ctx context.Context, s *Session, text string) ([]Reply, error) {
	n, err := validate.Count(text)
	if err != nil {
		return []Reply{{Text: errInteger}}, nil
	}
	s.Answers.HRSpecialistCount = &n
	s.Step = StepDocsPerEmployee
	return []Reply{{Text: promptDocsPerEmployee}}, nil
}

func (m *Machine) handleDocsPerEmployee(ctx context.Context, s *Session, text string) ([]Reply, error) {
	v, err := validate.PositiveDecimal(text)
	if err != nil {
		return []Reply{{Text: errPositiveNumber}}, nil
	}
	s.Answers.DocsPerEmployee = &v
	s.Step = StepPagesPerDoc
	return []Reply{{Text: promptPagesPerDoc}}, nil
}

func (m *Machine) handlePagesPerDoc(ctx context.Context, s *Session, text string) ([]Reply, error) {
	v, err := validate.Decimal(text)
	if err != nil {
		return []Reply{{Text: errDecimalNumber}}, nil
	}
	s.Answers.PagesPerDocument = &v
	s.Step = StepTurnoverPct
	return []Reply{{Text: promptTurnoverPct}}, nil
}

func (m *Machine) handleTurnoverPct(ctx context.Context, s *Session, text string) ([]Reply, error) {
	v, err := validate.Percent(text)
	if err != nil {
		return []Reply{{Text: errNumber}}, nil
	}
	s.Answers.TurnoverPct = &v
	s.Step = StepAvgSalary
	return []Reply{{Text: promptAvgSalary}}, nil
}

func (m *Machine) handleAvgSalary(ctx context.Context, s *Session, text string) ([]Reply, error) {
	v, err := validate.PositiveDecimal(text)
	if err != nil {
		return []Reply{{Text: errPositiveNumber}}, nil
	}
	s.Answers.AverageSalary = &v
	s.Step = StepCourierCost
	return []Reply{{Text: promptCourierCost}}, nil
}

func (m *Machine) handleCourierCost(ctx context.Context, s *Session, text string) ([]Reply, error) {
	v, err := validate.NonNegativeDecimal(text)
	if err != nil {
		return []Reply{{Text: errNumber}}, nil
	}
	s.Answers.CourierCost = &v

	if v > 0 {
		s.Step = StepHRDeliveryPct
		return []Reply{{Text: promptHRDeliveryPct}}, nil
	}

	// No courier deliveries: the share question makes no sense, default
	// it to zero and finish the form.
	zero := 0.0
	s.Answers.HRDeliveryPct = &zero
	return m.finish(ctx, s)
}

func (m *Machine) handleHRDeliveryPct(ctx context.Context, s *Session, text string) ([]Reply, error) {
	v, err := validate.Percent(text)
	if err != nil {
		return []Reply{{Text: errNumber}}, nil
	}
	s.Answers.HRDeliveryPct = &v
	return m.finish(ctx, s)
}

// finish hands the completed answers to the calculator, remembers the
// result and shows the echo summary with the confirmation keyboard.
func (m *Machine) finish(ctx context.Context, s *Session) ([]Reply, error) {
	if missing := s.Answers.MissingKeys(); len(missing) > 0 {
		// The step table must make this impossible.
		return nil, fmt.Errorf("form finished with missing answers: %s", strings.Join(missing, ", "))
	}

	result, err := m.calc.Finalize(ctx, s.UserID, s.Answers.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("finalizing form: %w", err)
	}
	s.LastResult = result
	s.Step = StepAwaitConfirm

	return []Reply{{
		Text: "Вы ввели следующие данные:\n" + answersSummary(result.Submission.Answers),
		Options: []Option{
			{Label: labelConfirm, Action: ActionConfirm},
			{Label: labelRestart, Action: ActionRestart},
			{Label: labelStop, Action: ActionStop},
		},
	}}, nil
}

// resultReplies renders the detailed comparison: the chart, the paper
// cost breakdown, the license offer and the contact invitation.
func (m *Machine) resultReplies(r *Result) []Reply {
	t := r.Submission.Totals

	breakdown := fmt.Sprintf(
		"ОСНОВНЫЕ ВЫВОДЫ ПО ВВЕДЁННЫМ ДАННЫМ\n"+
			"\n"+
			"Ваши расходы на бумажное КДП: %s рублей в год\n"+
			"\n"+
			"Печать и хранение кадровых документов: %s рублей в год\n"+
			"Доставка кадровых документов: %s рублей в год\n"+
			"Оплата времени кадрового специалиста, которое он тратит на работу с документами: %s рублей в год",
		calc.FormatMoney(t.PaperWorkflow()),
		calc.FormatMoney(t.Paper),
		calc.FormatMoney(t.Logistics),
		calc.FormatMoney(t.Operations),
	)

	offer := fmt.Sprintf(
		"Внедрив КЭДО от HRlink, вы сможете сэкономить: %s рублей в год.\n"+
			"Стоимость HRlink для вашей компании: от %s рублей в год.\n"+
			"Цена лицензии сотрудника: от %s рублей в год.\n"+
			"\n"+
			"%s",
		calc.FormatMoney(t.NetSavings()),
		calc.FormatMoney(t.License),
		calc.FormatMoney(r.EmployeeFee),
		textResultsTail,
	)

	totals := t
	return []Reply{
		{Text: breakdown, Chart: &totals},
		{Text: offer},
		{
			Text: textContactOffer,
			Options: []Option{
				{Label: labelContactMe, Action: ActionContactMe},
				{Label: labelRestart, Action: ActionRestart},
			},
		},
	}
}

// ── lead-capture sub-flow ───────────────────────────────────────────────

func (m *Machine) handleLeadName(ctx context.Context, s *Session, text string) ([]Reply, error) {
	s.Contact.Name = strings.TrimSpace(text)
	s.Step = StepLeadPhone
	return []Reply{{Text: promptContactPhone}}, nil
}

func (m *Machine) handleLeadPhone(ctx context.Context, s *Session, text string) ([]Reply, error) {
	s.Contact.Phone = strings.TrimSpace(text)
	s.Step = StepLeadEmail
	return []Reply{{Text: promptContactEmail}}, nil
}

func (m *Machine) handleLeadEmail(ctx context.Context, s *Session, text string) ([]Reply, error) {
	// An address that does not validate is dropped, not re-asked.
	s.Contact.Email = validate.Email(text)
	s.Step = StepLeadOrg
	return []Reply{{Text: promptContactOrg}}, nil
}

func (m *Machine) handleLeadOrg(ctx context.Context, s *Session, text string) ([]Reply, error) {
	text = strings.TrimSpace(text)

	// All-digit input is taken for an INN and must be a valid one;
	// anything else is the company name.
	if isAllDigits(text) {
		inn, err := validate.INN(text)
		if err != nil {
			return []Reply{{Text: errINN}}, nil
		}
		s.Contact.Organization = "ИНН " + inn
	} else {
		s.Contact.Organization = text
	}

	s.Step = StepLeadPreference
	return []Reply{{Text: promptContactPreference}}, nil
}

func (m *Machine) handleLeadPreference(ctx context.Context, s *Session, text string) ([]Reply, error) {
	s.Contact.Preference = strings.TrimSpace(text)

	err := m.leads.Submit(ctx, s.UserID, s.Contact)

	var missing *domain.MissingFieldsError
	if errors.As(err, &missing) {
		s.Step = StepLeadName
		return []Reply{{
			Text: "Не хватает данных для заявки: " + strings.Join(missing.Fields, ", ") +
				". Давайте попробуем ещё раз. Как вас зовут?",
		}}, nil
	}
	if err != nil {
		// CRM trouble is an operator problem; the user still gets the
		// confirmation and a manager follows up from the logged lead.
		log.Printf("lead submission for user %d: %v", s.UserID, err)
	}

	s.reset()
	return []Reply{{
		Text:    textLeadThanks,
		Options: []Option{{Label: labelRestart, Action: ActionRestart}},
	}}, nil
}

// ── helpers ─────────────────────────────────────────────────────────────

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// answersSummary renders the echoed answers shown before confirmation.
func answersSummary(a domain.AnswerValues) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Число сотрудников: %d\n", a.EmployeeCount)
	fmt.Fprintf(&b, "Число кадровых специалистов: %d\n", a.HRSpecialistCount)
	fmt.Fprintf(&b, "Документов в год на сотрудника: %s\n", fmtNum(a.DocsPerEmployee))
	fmt.Fprintf(&b, "Страниц в документе: %s\n", fmtNum(a.PagesPerDocument))
	fmt.Fprintf(&b, "Текучка в процентах: %s%%\n", fmtNum(a.TurnoverPct))
	fmt.Fprintf(&b, "Средняя зарплата: %s руб.\n", calc.FormatMoney(a.AverageSalary))
	fmt.Fprintf(&b, "Стоимость курьерской доставки: %s руб.\n", fmtNum(a.CourierCost))
	fmt.Fprintf(&b, "Процент отправки кадровых документов: %s%%\n", fmtNum(a.HRDeliveryPct))
	fmt.Fprintf(&b, "Подходящий тариф: %s", a.Tier.TariffName())
	return b.String()
}
