package directory

import (
	"testing"
	"time"

	"cropconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func user(name, email, role, region string, created time.Time) models.User {
	u := models.User{Name: name, Email: email, Role: role, Region: region}
	u.CreatedAt = created
	return u
}

func sampleUsers() []models.User {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.User{
		user("Alice", "alice@farm.example", models.RoleFarmer, "North", base),
		user("Bob", "bob@farm.example", models.RoleFarmer, "South", base.Add(24*time.Hour)),
		user("Carol", "carol@cropconnect.example", models.RoleEmployee, "North", base.Add(48*time.Hour)),
		user("Dave", "dave@cropconnect.example", models.RoleAdmin, "", base.Add(72*time.Hour)),
	}
}

func names(users []models.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Name
	}
	return out
}

func TestApplyConjunctiveFilter(t *testing.T) {
	result := Apply(sampleUsers(), Filter{Role: models.RoleFarmer, Region: "North"}, Sort{})

	require.Len(t, result, 1)
	assert.Equal(t, "Alice", result[0].Name)
}

func TestApplyEmptyResultIsEmptyList(t *testing.T) {
	result := Apply(sampleUsers(), Filter{Role: models.RoleAdmin, Region: "North"}, Sort{})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestApplySearchMatchesNameOrEmailCaseInsensitive(t *testing.T) {
	result := Apply(sampleUsers(), Filter{Search: "CROPCONNECT"}, Sort{Field: SortByName, Direction: "asc"})
	assert.Equal(t, []string{"Carol", "Dave"}, names(result))

	result = Apply(sampleUsers(), Filter{Search: "ali"}, Sort{})
	assert.Equal(t, []string{"Alice"}, names(result))
}

func TestApplySortByName(t *testing.T) {
	asc := Apply(sampleUsers(), Filter{}, Sort{Field: SortByName, Direction: "asc"})
	assert.Equal(t, []string{"Alice", "Bob", "Carol", "Dave"}, names(asc))

	desc := Apply(sampleUsers(), Filter{}, Sort{Field: SortByName, Direction: "desc"})
	assert.Equal(t, []string{"Dave", "Carol", "Bob", "Alice"}, names(desc))
}

func TestApplySortByCreatedAtDesc(t *testing.T) {
	result := Apply(sampleUsers(), Filter{}, Sort{Field: SortByCreatedAt, Direction: "desc"})
	assert.Equal(t, []string{"Dave", "Carol", "Bob", "Alice"}, names(result))
}

func TestApplySortByRoleIsStable(t *testing.T) {
	// Alice and Bob share the farmer role; their relative input order must
	// survive the sort.
	result := Apply(sampleUsers(), Filter{}, Sort{Field: SortByRole, Direction: "asc"})
	assert.Equal(t, []string{"Dave", "Carol", "Alice", "Bob"}, names(result))
}

func TestApplyLeavesInputUntouched(t *testing.T) {
	users := sampleUsers()
	Apply(users, Filter{}, Sort{Field: SortByName, Direction: "desc"})
	assert.Equal(t, "Alice", users[0].Name)
}

func TestAssignedFarmers(t *testing.T) {
	employeeID := uint(9)
	users := sampleUsers()
	users[0].AssignedTo = &employeeID
	users[1].AssignedTo = &employeeID
	otherID := uint(3)
	users[2].AssignedTo = &otherID // employee row; must never match

	assigned := AssignedFarmers(users, employeeID)

	assert.Equal(t, []string{"Alice", "Bob"}, names(assigned))
}

func TestAssignedFarmersNoneAssigned(t *testing.T) {
	assigned := AssignedFarmers(sampleUsers(), 9)
	assert.NotNil(t, assigned)
	assert.Empty(t, assigned)
}
