package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoevodin/kedobot/internal/domain"
)

// completeForm drives a session through the whole form and confirmation
// so lead tests start at the contact offer.
func completeForm(t *testing.T, m *Machine, s *Session) {
	t.Helper()
	_, err := m.HandleAction(context.Background(), s, ActionStart)
	require.NoError(t, err)
	for _, a := range []string{"600", "2", "30", "1.5", "10", "80000", "0"} {
		_, err := m.HandleText(context.Background(), s, a)
		require.NoError(t, err)
	}
	require.Equal(t, StepAwaitConfirm, s.Step)
	_, err = m.HandleAction(context.Background(), s, ActionConfirm)
	require.NoError(t, err)
	require.Equal(t, StepAwaitContact, s.Step)
}

func TestLeadFlowSubmitsContact(t *testing.T) {
	m, _, leads, s := newTestMachine()
	completeForm(t, m, s)

	_, err := m.HandleAction(context.Background(), s, ActionContactMe)
	require.NoError(t, err)
	require.Equal(t, StepLeadName, s.Step)

	answer(t, m, s, "Мария", StepLeadPhone)
	answer(t, m, s, "+7 900 123-45-67", StepLeadEmail)
	answer(t, m, s, "maria@example.com", StepLeadOrg)
	answer(t, m, s, "ООО Ромашка", StepLeadPreference)
	replies := answer(t, m, s, "по телефону", StepIdle)

	require.Equal(t, 1, leads.calls)
	assert.Equal(t, domain.Contact{
		Name:         "Мария",
		Phone:        "+7 900 123-45-67",
		Email:        "maria@example.com",
		Organization: "ООО Ромашка",
		Preference:   "по телефону",
	}, leads.got)
	assert.Equal(t, textLeadThanks, replies[0].Text)
}

func TestLeadFlowDropsInvalidEmail(t *testing.T) {
	m, _, leads, s := newTestMachine()
	completeForm(t, m, s)

	_, err := m.HandleAction(context.Background(), s, ActionContactMe)
	require.NoError(t, err)

	answer(t, m, s, "Иван", StepLeadPhone)
	answer(t, m, s, "89001234567", StepLeadEmail)
	answer(t, m, s, "not-an-email", StepLeadOrg)
	answer(t, m, s, "ООО Василёк", StepLeadPreference)
	answer(t, m, s, "в мессенджере", StepIdle)

	require.Equal(t, 1, leads.calls)
	assert.Empty(t, leads.got.Email, "unparseable address is sent empty, not re-asked")
}

func TestLeadFlowAcceptsINNAsOrganization(t *testing.T) {
	m, _, leads, s := newTestMachine()
	completeForm(t, m, s)

	_, err := m.HandleAction(context.Background(), s, ActionContactMe)
	require.NoError(t, err)

	answer(t, m, s, "Иван", StepLeadPhone)
	answer(t, m, s, "89001234567", StepLeadEmail)
	answer(t, m, s, "ivan@example.com", StepLeadOrg)

	replies := answer(t, m, s, "12345", StepLeadOrg)
	assert.Equal(t, errINN, replies[0].Text)

	answer(t, m, s, "7707083893", StepLeadPreference)
	answer(t, m, s, "по почте", StepIdle)

	require.Equal(t, 1, leads.calls)
	assert.Equal(t, "ИНН 7707083893", leads.got.Organization)
}

func TestLeadFlowMissingFieldsRestartsContact(t *testing.T) {
	m, _, leads, s := newTestMachine()
	completeForm(t, m, s)
	leads.err = &domain.MissingFieldsError{Fields: []string{"phone"}}

	_, err := m.HandleAction(context.Background(), s, ActionContactMe)
	require.NoError(t, err)

	answer(t, m, s, "Иван", StepLeadPhone)
	answer(t, m, s, " ", StepLeadEmail)
	answer(t, m, s, "ivan@example.com", StepLeadOrg)
	answer(t, m, s, "ООО Ромашка", StepLeadPreference)

	replies := answer(t, m, s, "по телефону", StepLeadName)
	assert.Contains(t, replies[0].Text, "phone")
	require.Equal(t, 1, leads.calls)
}

func TestLeadFlowCRMFailureStillThanksUser(t *testing.T) {
	m, _, leads, s := newTestMachine()
	completeForm(t, m, s)
	leads.err = errors.New("crm unreachable")

	_, err := m.HandleAction(context.Background(), s, ActionContactMe)
	require.NoError(t, err)

	answer(t, m, s, "Иван", StepLeadPhone)
	answer(t, m, s, "89001234567", StepLeadEmail)
	answer(t, m, s, "ivan@example.com", StepLeadOrg)
	answer(t, m, s, "ООО Ромашка", StepLeadPreference)
	replies := answer(t, m, s, "по телефону", StepIdle)

	assert.Equal(t, textLeadThanks, replies[0].Text)
}

func TestContactMeFromConfirmScreen(t *testing.T) {
	m, _, _, s := newTestMachine()
	_, err := m.HandleAction(context.Background(), s, ActionStart)
	require.NoError(t, err)
	for _, a := range []string{"600", "2", "30", "1.5", "10", "80000", "0"} {
		_, err := m.HandleText(context.Background(), s, a)
		require.NoError(t, err)
	}
	require.Equal(t, StepAwaitConfirm, s.Step)

	replies, err := m.HandleAction(context.Background(), s, ActionContactMe)
	require.NoError(t, err)
	assert.Equal(t, StepLeadName, s.Step)
	assert.Equal(t, promptContactName, replies[0].Text)
}
