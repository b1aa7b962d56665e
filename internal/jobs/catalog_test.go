package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolesOrderIsStable(t *testing.T) {
	expected := []string{
		"Cloud / DevOps Intern (AWS Focused)",
		"GenAI Intern",
		"UI/UX Design",
		"Full-Stack Development Intern",
		CustomRole,
	}

	assert.Equal(t, expected, Roles())
	// A second call must observe the same order even if a caller mutated
	// the previous return value.
	first := Roles()
	first[0] = "mutated"
	assert.Equal(t, expected, Roles())
}

func TestDescriptionLookup(t *testing.T) {
	description, ok := Description("Cloud / DevOps Intern (AWS Focused)")
	require.True(t, ok)
	assert.Contains(t, description, "AWS")
	assert.Contains(t, description, "Terraform")

	_, ok = Description("Staff Astronaut")
	assert.False(t, ok)
}

func TestCustomRoleIsPresentAndEmpty(t *testing.T) {
	description, ok := Description(CustomRole)
	require.True(t, ok)
	assert.Empty(t, description)
	assert.True(t, IsCustom(CustomRole))
	assert.False(t, IsCustom("GenAI Intern"))
}
