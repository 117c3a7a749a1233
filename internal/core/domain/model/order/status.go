package order

import (
	"fmt"
	"strings"

	"pedidos/internal/pkg/errs"
)

// Status represents where an order is in the warehouse flow.
//
//	Received <──> Picking <──> Finalized
//	    ^                          │
//	    └──────────────────────────┘
//
// Every valid status may follow every other. The stored form is the integer value;
// the wire form is the lowercase name returned by String.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota

	// Received is assigned at creation.
	Received

	// Picking means the volumes are being separated.
	Picking

	// Finalized means the order is ready to ship.
	Finalized
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Received:  "received",
		Picking:   "picking",
		Finalized: "finalized",
	}
}

// getStatusAliases maps every accepted wire spelling to its status. The Portuguese
// names are the ones older dashboard builds still send.
func getStatusAliases() map[string]Status {
	return map[string]Status{
		"received":   Received,
		"picking":    Picking,
		"finalized":  Finalized,
		"recebido":   Received,
		"separacao":  Picking,
		"finalizado": Finalized,
	}
}

// ParseStatus converts a wire value into a Status. Matching ignores case and
// surrounding whitespace; unknown values are rejected with a ValueIsInvalidError.
func ParseStatus(s string) (Status, error) {
	status, ok := getStatusAliases()[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%q is not one of received, picking, finalized", s),
		)
	}
	return status, nil
}

// Validate accepts Received, Picking and Finalized only.
func (s Status) Validate() error {
	if s != Received && s != Picking && s != Finalized {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// MarshalText lets Status appear directly in JSON payloads.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	status, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}
