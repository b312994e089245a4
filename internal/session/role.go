package session

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Role is the canonical account kind. The backend emits roles both as
// numbers and as string names; everything entering this package goes
// through ParseRole so the rest of the application only ever compares
// Role values.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleSeller
	RoleContentAdmin
	RolePlatformAdmin
)

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "Customer"
	case RoleSeller:
		return "Seller"
	case RoleContentAdmin:
		return "ContentAdmin"
	case RolePlatformAdmin:
		return "PlatformAdmin"
	default:
		return "Unknown"
	}
}

// ParseRole normalizes any representation the backend is known to emit:
// 1, "1", "Customer", "customer" all map to RoleCustomer, and so on.
// Anything unrecognized is RoleUnknown, which never matches an
// allowed-roles set.
func ParseRole(raw any) Role {
	switch v := raw.(type) {
	case nil:
		return RoleUnknown
	case Role:
		return v
	case int:
		return roleFromNumber(v)
	case int64:
		return roleFromNumber(int(v))
	case float64:
		return roleFromNumber(int(v))
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return roleFromNumber(int(n))
		}
		return roleFromName(v.String())
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return roleFromNumber(n)
		}
		return roleFromName(v)
	default:
		return RoleUnknown
	}
}

func roleFromNumber(n int) Role {
	switch n {
	case 1:
		return RoleCustomer
	case 2:
		return RoleSeller
	case 3:
		return RoleContentAdmin
	case 4:
		return RolePlatformAdmin
	default:
		return RoleUnknown
	}
}

func roleFromName(name string) Role {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "customer":
		return RoleCustomer
	case "seller":
		return RoleSeller
	case "contentadmin", "content-admin":
		return RoleContentAdmin
	case "platformadmin", "platform-admin":
		return RolePlatformAdmin
	default:
		return RoleUnknown
	}
}

// ParseApproved reduces the backend's assorted truthy spellings of the
// seller approval flag. Exactly true, "true", 1 and "1" count as
// approved; everything else, including absence, does not.
func ParseApproved(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case int64:
		return v == 1
	case float64:
		return v == 1
	case json.Number:
		return v.String() == "1"
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "true" || s == "1"
	default:
		return false
	}
}
