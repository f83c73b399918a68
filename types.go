package atelier

import (
	"time"
)

// Instruction is the signed unit of change. Value carries the operation
// arguments for the schema; Author is the caller identity and must match
// the signature on the enclosing SignedInstruction.
type Instruction[T any] struct {
	Schema string `json:"schema"`
	Author string `json:"author"`

	// Target names the record the operation acts on: an artist identity
	// for profile-scoped operations, a work URI for interactions. Empty
	// when the author acts on their own records.
	Target string `json:"target,omitempty"`

	Value T `json:"value"`

	IssuedAt time.Time `json:"issuedAt"`
}

type Proof struct {
	Type      string `json:"type"`
	Signature string `json:"signature"`
}

type SignedInstruction struct {
	Instruction string `json:"instruction"`
	Proof       Proof  `json:"proof"`
}

// Event is published on the signal bus after every applied transition.
type Event struct {
	Schema    string    `json:"schema"`
	Key       string    `json:"key"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

type WellKnownAtelier struct {
	Version   string                     `json:"version"`
	Domain    string                     `json:"domain"`
	ASID      string                     `json:"asid"`
	Endpoints map[string]AtelierEndpoint `json:"endpoints"`
}

type AtelierEndpoint struct {
	Template string    `json:"template"`
	Method   string    `json:"method"`
	Query    *[]string `json:"query,omitempty"`
}
