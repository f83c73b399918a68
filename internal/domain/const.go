package domain

import "fmt"

// Hard upper bounds on text fields. Exactly-at-limit is accepted,
// one-over is rejected.
const (
	MaxNameLength        = 50
	MaxBioLength         = 200
	MaxLinkLength        = 100
	MaxLinkCount         = 5
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxContentURLLength  = 200
	MaxCollabMsgLength   = 300
	MaxCommentLength     = 280
)

type InteractionKind string

const (
	InteractionLike    InteractionKind = "like"
	InteractionComment InteractionKind = "comment"
)

func ParseInteractionKind(s string) (InteractionKind, error) {
	switch InteractionKind(s) {
	case InteractionLike:
		return InteractionLike, nil
	case InteractionComment:
		return InteractionComment, nil
	default:
		return "", InvalidInteractionError{Reason: fmt.Sprintf("unknown interaction kind %q", s)}
	}
}

type CollabStatus string

const (
	CollabPending  CollabStatus = "pending"
	CollabAccepted CollabStatus = "accepted"
	CollabRejected CollabStatus = "rejected"
)

func ParseCollabStatus(s string) (CollabStatus, error) {
	switch CollabStatus(s) {
	case CollabPending:
		return CollabPending, nil
	case CollabAccepted:
		return CollabAccepted, nil
	case CollabRejected:
		return CollabRejected, nil
	default:
		return "", InvalidTransitionError{Reason: fmt.Sprintf("unknown collab status %q", s)}
	}
}

// Terminal reports whether no further transition is permitted from s.
func (s CollabStatus) Terminal() bool {
	return s == CollabAccepted || s == CollabRejected
}
