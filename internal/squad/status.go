package squad

import (
	"strings"

	"github.com/DhavalSuthar-24/squadhub/internal/apperrors"
)

// Status is the lifecycle state of a squad.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusDisbanded Status = "DISBANDED"
)

var squadTransitions = map[Status][]Status{
	StatusActive:   {StatusInactive, StatusDisbanded},
	StatusInactive: {StatusActive, StatusDisbanded},
}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDisbanded:
		return true
	}
	return false
}

// CanTransitionTo reports whether the squad may move to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range squadTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.Valid()
}

// RequestKind names one of the three request workflows.
type RequestKind string

const (
	KindInvite RequestKind = "INVITE"
	KindJoin   RequestKind = "JOIN"
	KindLeave  RequestKind = "LEAVE"
)

// RequestStatus is the state of an invite, join request or leave request.
type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestAccepted  RequestStatus = "ACCEPTED"
	RequestApproved  RequestStatus = "APPROVED"
	RequestRejected  RequestStatus = "REJECTED"
	RequestCancelled RequestStatus = "CANCELLED"
	RequestExpired   RequestStatus = "EXPIRED"
)

// Every terminal state has no outgoing edge.
var requestTransitions = map[RequestKind]map[RequestStatus][]RequestStatus{
	KindInvite: {
		RequestPending: {RequestAccepted, RequestRejected, RequestCancelled, RequestExpired},
	},
	KindJoin: {
		RequestPending: {RequestApproved, RequestRejected, RequestCancelled},
	},
	KindLeave: {
		RequestPending: {RequestApproved, RequestRejected, RequestCancelled},
	},
}

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestApproved, RequestRejected, RequestCancelled, RequestExpired:
		return true
	}
	return false
}

// ParseRequestStatus accepts "" as "any status".
func ParseRequestStatus(s string) (RequestStatus, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	st := RequestStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", apperrors.Validation("Invalid request status")
	}
	return st, nil
}

// CheckRequestTransition returns InvalidState unless the table allows
// from -> to for the kind.
func CheckRequestTransition(kind RequestKind, from, to RequestStatus) error {
	for _, allowed := range requestTransitions[kind][from] {
		if allowed == to {
			return nil
		}
	}
	if from != RequestPending {
		return apperrors.InvalidState("Request is no longer pending")
	}
	return apperrors.InvalidState("Transition not allowed")
}
