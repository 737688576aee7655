package tournament

import "strings"

// LifecycleStatus is the forward-only phase of a tournament.
type LifecycleStatus string

const (
	StatusDraft              LifecycleStatus = "DRAFT"
	StatusRegistrationOpen   LifecycleStatus = "REGISTRATION_OPEN"
	StatusRegistrationClosed LifecycleStatus = "REGISTRATION_CLOSED"
	StatusOngoing            LifecycleStatus = "ONGOING"
	StatusCompleted          LifecycleStatus = "COMPLETED"
	StatusResultsFinalized   LifecycleStatus = "RESULTS_FINALIZED"
	StatusCancelled          LifecycleStatus = "CANCELLED"
)

var lifecycleTransitions = map[LifecycleStatus][]LifecycleStatus{
	StatusDraft:              {StatusRegistrationOpen, StatusCancelled},
	StatusRegistrationOpen:   {StatusRegistrationClosed, StatusCancelled},
	StatusRegistrationClosed: {StatusOngoing, StatusCancelled},
	StatusOngoing:            {StatusCompleted},
	StatusCompleted:          {StatusResultsFinalized},
}

func (s LifecycleStatus) CanTransitionTo(next LifecycleStatus) bool {
	for _, allowed := range lifecycleTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowsRegistration reports whether squads may register.
func (s LifecycleStatus) AllowsRegistration() bool {
	return s == StatusRegistrationOpen
}

// AllowsRegistrationReview reports whether the organizer may still approve
// or reject registrations.
func (s LifecycleStatus) AllowsRegistrationReview() bool {
	return s == StatusRegistrationOpen || s == StatusRegistrationClosed
}

func (s LifecycleStatus) AllowsDisqualification() bool {
	return s == StatusOngoing || s == StatusCompleted
}

// Action is an organizer command that moves the lifecycle forward.
type Action string

const (
	ActionOpenRegistration  Action = "open-registration"
	ActionCloseRegistration Action = "close-registration"
	ActionStart             Action = "start"
	ActionComplete          Action = "complete"
	ActionFinalize          Action = "finalize"
	ActionCancel            Action = "cancel"
)

var actionTargets = map[Action]LifecycleStatus{
	ActionOpenRegistration:  StatusRegistrationOpen,
	ActionCloseRegistration: StatusRegistrationClosed,
	ActionStart:             StatusOngoing,
	ActionComplete:          StatusCompleted,
	ActionFinalize:          StatusResultsFinalized,
	ActionCancel:            StatusCancelled,
}

// ParseAction returns the status an action leads to.
func ParseAction(raw string) (Action, LifecycleStatus, bool) {
	a := Action(strings.ToLower(strings.TrimSpace(raw)))
	target, ok := actionTargets[a]
	return a, target, ok
}
