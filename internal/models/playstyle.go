package models

import "strings"

// PlaystyleRole describes a player's in-game function.
type PlaystyleRole string

const (
	RolePrimary   PlaystyleRole = "PRIMARY"
	RoleSecondary PlaystyleRole = "SECONDARY"
	RoleSniper    PlaystyleRole = "SNIPER"
	RoleNader     PlaystyleRole = "NADER"
)

// PlaystyleRoles lists the tags in preference order.
var PlaystyleRoles = []PlaystyleRole{RolePrimary, RoleSecondary, RoleSniper, RoleNader}

func (r PlaystyleRole) Valid() bool {
	for _, known := range PlaystyleRoles {
		if r == known {
			return true
		}
	}
	return false
}

// ParsePlaystyleRole accepts a tag in any case.
func ParsePlaystyleRole(s string) (PlaystyleRole, bool) {
	r := PlaystyleRole(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}

// PreferredRole returns the first of the player's tags that is a known
// playstyle, or PRIMARY when none is.
func PreferredRole(roles []string) PlaystyleRole {
	for _, raw := range roles {
		if r, ok := ParsePlaystyleRole(raw); ok {
			return r
		}
	}
	return RolePrimary
}

// SameRoleSet compares two tag lists ignoring order, case and duplicates.
func SameRoleSet(a, b []string) bool {
	set := func(list []string) map[string]struct{} {
		out := make(map[string]struct{}, len(list))
		for _, v := range list {
			out[strings.ToUpper(strings.TrimSpace(v))] = struct{}{}
		}
		return out
	}
	sa, sb := set(a), set(b)
	if len(sa) != len(sb) {
		return false
	}
	for k := range sa {
		if _, ok := sb[k]; !ok {
			return false
		}
	}
	return true
}
