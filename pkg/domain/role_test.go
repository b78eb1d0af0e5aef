package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dErrors "roster/pkg/domain-errors"
)

type RoleSuite struct {
	suite.Suite
}

func TestRoleSuite(t *testing.T) {
	suite.Run(t, new(RoleSuite))
}

func (s *RoleSuite) TestMeetsOrExceeds() {
	s.Run("lower role does not meet higher requirement", func() {
		s.False(MeetsOrExceeds(RoleMember, RoleNCO))
	})

	s.Run("higher role exceeds lower requirement", func() {
		s.True(MeetsOrExceeds(RoleAdmin, RoleNCO))
	})

	s.Run("absent role never meets a requirement", func() {
		s.False(MeetsOrExceeds(RoleNone, RoleMember))
	})

	s.Run("unknown numeric role is treated as absent", func() {
		s.False(MeetsOrExceeds(Role(42), RoleMember))
	})

	s.Run("equal role meets requirement", func() {
		for _, r := range []Role{RoleMember, RoleNCO, RoleCommand, RoleAdmin} {
			s.True(MeetsOrExceeds(r, r), "role %s", r)
		}
	})

	s.Run("full grid follows the hierarchy", func() {
		ordered := []Role{RoleMember, RoleNCO, RoleCommand, RoleAdmin}
		for i, actor := range ordered {
			for j, required := range ordered {
				s.Equal(i >= j, actor.MeetsOrExceeds(required), "%s vs %s", actor, required)
			}
		}
	})
}

func (s *RoleSuite) TestParseRole() {
	s.Run("known roles parse", func() {
		for want, name := range roleNames {
			got, err := ParseRole(name)
			s.Require().NoError(err)
			s.Equal(want, got)
		}
	})

	s.Run("empty claim is no role", func() {
		got, err := ParseRole("")
		s.Require().NoError(err)
		s.Equal(RoleNone, got)
	})

	s.Run("unknown claim is rejected", func() {
		_, err := ParseRole("general")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func (s *RoleSuite) TestLabels() {
	s.Equal("Non-Commissioned Officer", RoleNCO.Label())
	s.Equal("No Role", RoleNone.Label())
	s.Equal("", RoleNone.String())
}

func TestActor(t *testing.T) {
	actor := Actor{ID: UserID(uuid.New()), Role: RoleCommand}
	assert.True(t, actor.Can(RoleNCO))
	assert.False(t, actor.Can(RoleAdmin))
	assert.False(t, actor.IsAnonymous())
	assert.True(t, Anonymous.IsAnonymous())
	assert.False(t, Anonymous.Can(RoleMember))

	assert.NoError(t, actor.Authorize(RoleCommand))
	assert.True(t, dErrors.HasCode(actor.Authorize(RoleAdmin), dErrors.CodeForbidden))
	assert.True(t, dErrors.HasCode(Anonymous.Authorize(RoleMember), dErrors.CodeForbidden))

	require.NotNil(t, actor.UserRef())
	assert.Equal(t, actor.ID, *actor.UserRef())
	assert.Nil(t, Anonymous.UserRef())
}

func TestRoleJSON(t *testing.T) {
	raw, err := json.Marshal(map[string]Role{"role": RoleCommand})
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"command"}`, string(raw))

	var decoded struct {
		Role Role `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"role":"nco"}`), &decoded))
	assert.Equal(t, RoleNCO, decoded.Role)
}
