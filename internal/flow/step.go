// Package flow drives one user through the cost-calculator conversation:
// the question sequence, its branches, the confirmation screen and the
// lead-capture sub-flow. It is transport-agnostic; handlers consume raw
// text or discrete actions and return replies for the chat surface to
// render.
package flow

// Step is the position of a session inside the conversation.
type Step int

const (
	// StepIdle is the state before start and after stop.
	StepIdle Step = iota

	// Calculator form, in question order.
	StepEmployeeCount
	StepLicenseChoice // only for companies of ChoiceMaxEmployees or fewer
	StepHRSpecialistCount
	StepDocsPerEmployee
	StepPagesPerDoc
	StepTurnoverPct
	StepAvgSalary
	StepCourierCost
	StepHRDeliveryPct // skipped when courier cost is zero

	// StepAwaitConfirm shows the echo summary and waits for confirm.
	StepAwaitConfirm
	// StepAwaitContact shows the results and waits for contact_me.
	StepAwaitContact

	// Lead-capture sub-flow.
	StepLeadName
	StepLeadPhone
	StepLeadEmail
	StepLeadOrg
	StepLeadPreference
)

var stepNames = map[Step]string{
	StepIdle:              "idle",
	StepEmployeeCount:     "employee_count",
	StepLicenseChoice:     "license_choice",
	StepHRSpecialistCount: "hr_specialist_count",
	StepDocsPerEmployee:   "documents_per_employee",
	StepPagesPerDoc:       "pages_per_document",
	StepTurnoverPct:       "turnover_percentage",
	StepAvgSalary:         "average_salary",
	StepCourierCost:       "courier_delivery_cost",
	StepHRDeliveryPct:     "hr_delivery_percentage",
	StepAwaitConfirm:      "await_confirm",
	StepAwaitContact:      "await_contact",
	StepLeadName:          "lead_name",
	StepLeadPhone:         "lead_phone",
	StepLeadEmail:         "lead_email",
	StepLeadOrg:           "lead_org",
	StepLeadPreference:    "lead_preference",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// Action is a discrete signal from the chat surface, as opposed to a
// free-text reply: a pressed button or a command.
type Action string

const (
	ActionStart        Action = "start"
	ActionRestart      Action = "restart"
	ActionStop         Action = "stop"
	ActionConfirm      Action = "confirm"
	ActionTierLite     Action = "tier_lite"
	ActionTierStandard Action = "tier_standard"
	ActionContactMe    Action = "contact_me"
)
