package roster_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uar-project/uar/internal/roster"
	"github.com/uar-project/uar/pkg/errclass"
	"github.com/uar-project/uar/pkg/model"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeRoster(t, `
- name: Alice
  age: 25
  active: true
  role: Admin
  address:
    street: 123 Main St
    city: Metropolis
    country: USA
  activities:
    - actor: Alice
      action: login
      timestamp: 2023-01-01T00:00:00Z
`)

	users, err := roster.Load(path)
	require.NoError(t, err)
	require.Len(t, users, 1)

	alice := users[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, 25, alice.Age)
	assert.True(t, alice.Active)
	assert.Equal(t, model.RoleAdmin, alice.Role)
	assert.Equal(t, "123 Main St", alice.Address["street"])
	require.Len(t, alice.Activities, 1)
	assert.Equal(t, "login", alice.Activities[0].Action)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), alice.Activities[0].Timestamp.UTC())
}

func TestLoad_NegativeAgeAccepted(t *testing.T) {
	// Loading is shape-only: negative ages pass through.
	path := writeRoster(t, `
- name: Odd
  age: -3
  active: true
  role: User
`)

	users, err := roster.Load(path)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, -3, users[0].Age)
}

func TestLoad_UnknownRole(t *testing.T) {
	path := writeRoster(t, `
- name: Eve
  age: 30
  active: true
  role: Superuser
`)

	_, err := roster.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errclass.ErrRoleUnknown))
}

func TestLoad_NotAList(t *testing.T) {
	path := writeRoster(t, "name: Alice\nage: 25\n")

	_, err := roster.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errclass.ErrRosterCorrupt))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := roster.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Unwrap(err)))
}

func TestLoad_NormalizesNames(t *testing.T) {
	// "é" written as e + combining acute must load as the composed form.
	decomposed := "Re\u0301my"
	composed := "R\u00e9my"
	path := writeRoster(t,
		"- name: \""+decomposed+"\"\n"+
			"  age: 30\n"+
			"  active: true\n"+
			"  role: User\n"+
			"  activities:\n"+
			"    - actor: \""+decomposed+"\"\n"+
			"      action: login\n"+
			"      timestamp: 2023-05-01T00:00:00Z\n")

	users, err := roster.Load(path)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, composed, users[0].Name)
	assert.Equal(t, composed, users[0].Activities[0].Actor)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "users.yaml")

	require.NoError(t, roster.Save(path, roster.Sample()))

	users, err := roster.Load(path)
	require.NoError(t, err)
	require.Len(t, users, 3)

	want := roster.Sample()
	for i := range want {
		assert.Equal(t, want[i].Name, users[i].Name)
		assert.Equal(t, want[i].Age, users[i].Age)
		assert.Equal(t, want[i].Active, users[i].Active)
		assert.Equal(t, want[i].Role, users[i].Role)
		assert.Equal(t, want[i].Address, users[i].Address)
		require.Len(t, users[i].Activities, len(want[i].Activities))
		for j := range want[i].Activities {
			assert.Equal(t, want[i].Activities[j].Action, users[i].Activities[j].Action)
			assert.True(t, want[i].Activities[j].Timestamp.Equal(users[i].Activities[j].Timestamp))
		}
	}
}

func TestSample(t *testing.T) {
	users := roster.Sample()
	require.Len(t, users, 3)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
	assert.False(t, users[1].Active)
	assert.Equal(t, "Charlie", users[2].Name)
}
