package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bookshelf/internal/model"
)

// -------- test fakes --------

type fakeUserStore struct {
	users     []*model.User
	nextID    uint
	createErr error
	getErr    error
}

func (f *fakeUserStore) Create(user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByID(id uint) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func newAuthService(store *fakeUserStore) *AuthService {
	return NewAuthService(store, bcrypt.MinCost)
}

// -------- tests --------

func TestRegisterHashesPassword(t *testing.T) {
	store := &fakeUserStore{}
	svc := newAuthService(store)

	user, err := svc.Register(RegisterInput{
		Email:    "ana@example.com",
		Username: "ana",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "correct horse", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := &fakeUserStore{}
	svc := newAuthService(store)

	_, err := svc.Register(RegisterInput{Email: "ana@example.com", Username: "ana", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Email: "ana@example.com", Username: "other", Password: "password2"})
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.Len(t, store.users, 1)
}

func TestRegisterDuplicateKeyRace(t *testing.T) {
	// Pre-check passes but the insert loses the race: the constraint error
	// must still come back as an email conflict.
	store := &fakeUserStore{createErr: gorm.ErrDuplicatedKey}
	svc := newAuthService(store)

	_, err := svc.Register(RegisterInput{Email: "ana@example.com", Username: "ana", Password: "password1"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegisterInvalidInput(t *testing.T) {
	svc := newAuthService(&fakeUserStore{})

	for _, input := range []RegisterInput{
		{Email: "", Username: "ana", Password: "password1"},
		{Email: "ana@example.com", Username: "", Password: "password1"},
		{Email: "ana@example.com", Username: "ana", Password: ""},
	} {
		_, err := svc.Register(input)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestLogin(t *testing.T) {
	store := &fakeUserStore{}
	svc := newAuthService(store)

	registered, err := svc.Register(RegisterInput{Email: "ana@example.com", Username: "ana", Password: "password1"})
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		user, err := svc.Login(LoginInput{Email: "ana@example.com", Password: "password1"})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(LoginInput{Email: "ana@example.com", Password: "password2"})
		assert.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(LoginInput{Email: "nobody@example.com", Password: "password1"})
		assert.ErrorIs(t, err, ErrInvalidCredential)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		broken := &fakeUserStore{getErr: errors.New("db gone")}
		_, err := newAuthService(broken).Login(LoginInput{Email: "ana@example.com", Password: "password1"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredential)
	})
}

func TestLoginMalformedStoredHash(t *testing.T) {
	store := &fakeUserStore{users: []*model.User{{
		ID:           1,
		Email:        "ana@example.com",
		Username:     "ana",
		PasswordHash: "not-a-bcrypt-digest",
	}}}
	svc := newAuthService(store)

	_, err := svc.Login(LoginInput{Email: "ana@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
