package domain

import (
	"fmt"
	"strings"
)

// Direction names the record shape a conversion produces.
type Direction string

const (
	// DirectionView converts domain records into view records.
	DirectionView Direction = "view"
	// DirectionDomain converts view records back into domain records.
	DirectionDomain Direction = "domain"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionView:
		return DirectionView, nil
	case DirectionDomain:
		return DirectionDomain, nil
	default:
		return "", fmt.Errorf("unsupported direction %q (expected view|domain)", s)
	}
}

// Input returns the record shape consumed when converting in direction d.
func (d Direction) Input() string {
	if d == DirectionDomain {
		return "view"
	}
	return "domain"
}
