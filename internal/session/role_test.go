package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoleEquivalentForms(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want Role
	}{
		{"customer number", 1, RoleCustomer},
		{"customer numeric string", "1", RoleCustomer},
		{"customer name", "Customer", RoleCustomer},
		{"customer lowercase", "customer", RoleCustomer},
		{"customer json number", json.Number("1"), RoleCustomer},
		{"customer float", float64(1), RoleCustomer},
		{"seller number", 2, RoleSeller},
		{"seller name", "Seller", RoleSeller},
		{"seller numeric string", "2", RoleSeller},
		{"content admin number", 3, RoleContentAdmin},
		{"content admin name", "ContentAdmin", RoleContentAdmin},
		{"content admin hyphenated", "content-admin", RoleContentAdmin},
		{"platform admin number", 4, RolePlatformAdmin},
		{"platform admin name", "PlatformAdmin", RolePlatformAdmin},
		{"platform admin numeric string", "4", RolePlatformAdmin},
		{"padded name", "  Seller ", RoleSeller},
		{"unknown number", 9, RoleUnknown},
		{"unknown numeric string", "9", RoleUnknown},
		{"unknown name", "Wizard", RoleUnknown},
		{"nil", nil, RoleUnknown},
		{"empty string", "", RoleUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseRole(tc.raw))
		})
	}
}

func TestParseRoleNumericStringAgree(t *testing.T) {
	pairs := []struct {
		number any
		name   any
	}{
		{1, "Customer"},
		{2, "Seller"},
		{3, "ContentAdmin"},
		{4, "PlatformAdmin"},
		{"1", "customer"},
		{"2", "seller"},
	}
	for _, p := range pairs {
		assert.Equal(t, ParseRole(p.number), ParseRole(p.name),
			"forms %v and %v must normalize identically", p.number, p.name)
	}
}

func TestParseApproved(t *testing.T) {
	truthy := []any{true, "true", "TRUE", 1, "1", json.Number("1"), float64(1)}
	for _, v := range truthy {
		assert.True(t, ParseApproved(v), "%v (%T) should be approved", v, v)
	}

	falsy := []any{false, "false", "0", 0, "yes", nil, "", 2, float64(0)}
	for _, v := range falsy {
		assert.False(t, ParseApproved(v), "%v (%T) should not be approved", v, v)
	}
}

func TestProfileUnmarshalNormalizes(t *testing.T) {
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "u-7",
		"username": "maria",
		"email": "maria@example.com",
		"role": "2",
		"isApproved": "1"
	}`), &p))

	assert.Equal(t, RoleSeller, p.Role)
	assert.True(t, p.Approved)
	assert.Equal(t, "u-7", p.ID)
}

func TestProfileUnmarshalNumericRole(t *testing.T) {
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"role":4,"isApproved":false}`), &p))

	assert.Equal(t, RolePlatformAdmin, p.Role)
	assert.False(t, p.Approved)
	assert.Equal(t, "42", p.ID)
}

func TestProfileRoundTripKeepsCanonicalRole(t *testing.T) {
	original := Profile{ID: "u-1", Username: "lee", Role: RoleCustomer}
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Profile
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}
