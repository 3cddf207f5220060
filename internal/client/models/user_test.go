package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUser_Apply_MergesOnlyPresentFields(t *testing.T) {
	u := User{ID: 1, Email: "a@b.c", Firstname: "A", Lastname: "B", Role: RoleUser}

	got := u.Apply(ProfilePatch{Firstname: strPtr("C")})

	assert.Equal(t, User{ID: 1, Email: "a@b.c", Firstname: "C", Lastname: "B", Role: RoleUser}, got)
	assert.Equal(t, "A", u.Firstname, "receiver must stay untouched")
}

func TestUser_Apply_EmptyPatchIsIdentity(t *testing.T) {
	u := User{ID: 1, Firstname: "A", Lastname: "B"}
	assert.Equal(t, u, u.Apply(ProfilePatch{}))
	assert.True(t, ProfilePatch{}.Empty())
	assert.False(t, ProfilePatch{Lastname: strPtr("")}.Empty())
}

func TestProfilePatch_JSONOmitsNilFields(t *testing.T) {
	b, err := json.Marshal(ProfilePatch{Firstname: strPtr("C")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstname":"C"}`, string(b))
}

func TestUpdateUserRequest_Patch(t *testing.T) {
	p := UpdateUserRequest{Firstname: "X", Lastname: "Y"}.Patch()
	require.NotNil(t, p.Firstname)
	require.NotNil(t, p.Lastname)
	assert.Equal(t, "X", *p.Firstname)
	assert.Equal(t, "Y", *p.Lastname)
}

func TestUser_RoleAndName(t *testing.T) {
	assert.True(t, User{Role: RoleAdmin}.IsAdmin())
	assert.False(t, User{Role: RoleUser}.IsAdmin())
	assert.False(t, User{}.IsAdmin())

	assert.Equal(t, "Ada Lovelace", User{Firstname: "Ada", Lastname: "Lovelace"}.FullName())
	assert.Equal(t, "Ada", User{Firstname: "Ada"}.FullName())
	assert.Equal(t, "Lovelace", User{Lastname: "Lovelace"}.FullName())
}

func TestUser_DecodesBackendPayload(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":5,"email":"x@y.z","firstname":"F","lastname":"L","role":"ADMIN"}`), &u))
	assert.Equal(t, User{ID: 5, Email: "x@y.z", Firstname: "F", Lastname: "L", Role: RoleAdmin}, u)
}
