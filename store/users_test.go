package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserStore(t *testing.T) *UserStore {
	t.Helper()
	s, err := NewUserStore(filepath.Join(t.TempDir(), "users.json"))
	require.NoError(t, err)
	return s
}

func bobInput() CreateUserInput {
	return CreateUserInput{
		Username:    "bob",
		FirstName:   "Боб",
		LastName:    "Иванов",
		Email:       "bob@example.com",
		PhoneNumber: "+77011234567",
		Password:    "Abcdefg1",
		CarMake:     "Toyota",
		CarModel:    "Camry",
		VINCode:     "1HGCM82633A004352",
	}
}

func TestCreateUser(t *testing.T) {
	s := newTestUserStore(t)

	user, err := s.Create(bobInput())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "bob", user.Username)
	assert.Empty(t, user.Password, "created user must not expose the password")
	assert.False(t, user.IsAdmin)
	assert.Equal(t, "1HGCM82633A004352", user.VINCode)
}

func TestCreateDuplicateIdentity(t *testing.T) {
	s := newTestUserStore(t)

	_, err := s.Create(bobInput())
	require.NoError(t, err)

	// Same email
	in := bobInput()
	in.Username = "bob2"
	in.VINCode = "JTDKN3DU0A0123456"
	_, err = s.Create(in)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// Same VIN
	in = bobInput()
	in.Username = "bob3"
	in.Email = "bob3@example.com"
	_, err = s.Create(in)
	assert.ErrorIs(t, err, ErrDuplicateVIN)

	// VIN comparison is case-insensitive
	in.VINCode = strings.ToLower(in.VINCode)
	_, err = s.Create(in)
	assert.ErrorIs(t, err, ErrDuplicateVIN)

	// Same username
	in = bobInput()
	in.Email = "bob4@example.com"
	in.VINCode = "JTDKN3DU0A0123456"
	_, err = s.Create(in)
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestCreateMissingPassword(t *testing.T) {
	s := newTestUserStore(t)

	in := bobInput()
	in.Password = ""
	_, err := s.Create(in)
	assert.ErrorIs(t, err, ErrMissingPassword)
}

func TestVerifyPassword(t *testing.T) {
	s := newTestUserStore(t)

	_, err := s.Create(bobInput())
	require.NoError(t, err)

	user, err := s.VerifyPassword("bob@example.com", "Abcdefg1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "bob", user.Username)
	assert.Empty(t, user.Password)

	// Wrong password and unknown email are indistinguishable
	wrongPass, err := s.VerifyPassword("bob@example.com", "nope12345")
	require.NoError(t, err)
	unknown, err2 := s.VerifyPassword("nobody@example.com", "Abcdefg1")
	require.NoError(t, err2)
	assert.Nil(t, wrongPass)
	assert.Nil(t, unknown)
}

func TestUpdateUser(t *testing.T) {
	s := newTestUserStore(t)

	created, err := s.Create(bobInput())
	require.NoError(t, err)

	newName := "Роберт"
	updated, err := s.Update(created.ID, UpdateUserInput{FirstName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Роберт", updated.FirstName)
	assert.Equal(t, "bob", updated.Username, "untouched fields survive a partial update")
	assert.Empty(t, updated.Password)

	_, err = s.Update("missing-id", UpdateUserInput{FirstName: &newName})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserDuplicateChecks(t *testing.T) {
	s := newTestUserStore(t)

	_, err := s.Create(bobInput())
	require.NoError(t, err)

	in := bobInput()
	in.Username = "alice"
	in.Email = "alice@example.com"
	in.VINCode = "JTDKN3DU0A0123456"
	alice, err := s.Create(in)
	require.NoError(t, err)

	bobEmail := "bob@example.com"
	_, err = s.Update(alice.ID, UpdateUserInput{Email: &bobEmail})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUpdatePassword(t *testing.T) {
	s := newTestUserStore(t)

	created, err := s.Create(bobInput())
	require.NoError(t, err)

	require.NoError(t, s.UpdatePassword(created.ID, "Newpass99"))

	old, err := s.VerifyPassword("bob@example.com", "Abcdefg1")
	require.NoError(t, err)
	assert.Nil(t, old)

	fresh, err := s.VerifyPassword("bob@example.com", "Newpass99")
	require.NoError(t, err)
	assert.NotNil(t, fresh)

	assert.ErrorIs(t, s.UpdatePassword("missing-id", "Newpass99"), ErrNotFound)
}

func TestListStripsPasswords(t *testing.T) {
	s := newTestUserStore(t)

	_, err := s.Create(bobInput())
	require.NoError(t, err)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Password)
}

func TestUserStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	s, err := NewUserStore(path)
	require.NoError(t, err)

	vins := []string{"1HGCM82633A004352", "JTDKN3DU0A0123456", "2T1BURHE5JC123456"}
	for i, vin := range vins {
		in := bobInput()
		in.Username = "user" + string(rune('a'+i))
		in.Email = in.Username + "@example.com"
		in.VINCode = vin
		_, err := s.Create(in)
		require.NoError(t, err)
	}

	// Reopen against the same file
	reopened, err := NewUserStore(path)
	require.NoError(t, err)
	list, err := reopened.List()
	require.NoError(t, err)
	assert.Len(t, list, len(vins))
}

func TestUserStoreParseErrorIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	s, err := NewUserStore(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err = s.List()
	assert.Error(t, err)
}
