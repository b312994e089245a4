package session

import (
	"encoding/json"
	"strconv"
)

// Profile is the snapshot of the authenticated user the backend returns
// alongside the token. Role and Approved are normalized during decoding
// so heterogeneous backend values never leak past this package.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Approved bool   `json:"isApproved"`
}

type rawProfile struct {
	ID       any `json:"id"`
	Username any `json:"username"`
	Email    any `json:"email"`
	Role     any `json:"role"`
	Approved any `json:"isApproved"`
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	var raw rawProfile
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.ID = asString(raw.ID)
	p.Username = asString(raw.Username)
	p.Email = asString(raw.Email)
	p.Role = ParseRole(raw.Role)
	p.Approved = ParseApproved(raw.Approved)
	return nil
}

func (p Profile) MarshalJSON() ([]byte, error) {
	type persisted struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Approved bool   `json:"isApproved"`
	}
	return json.Marshal(persisted{
		ID:       p.ID,
		Username: p.Username,
		Email:    p.Email,
		Role:     p.Role.String(),
		Approved: p.Approved,
	})
}

// asString tolerates numeric ids, which some backend responses use.
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}
