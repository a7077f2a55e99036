package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mibon4ik/toyota-sub000/models"
)

// UserStore keeps user records in a single JSON file (an indented array of
// User objects). Every mutation is a whole-file read-modify-write guarded by
// an in-process mutex; concurrent writers from other processes can still race
// and the last writer wins, which is an accepted limitation at this traffic
// level.
type UserStore struct {
	mu   sync.Mutex
	path string
}

// NewUserStore ensures the backing directory and file exist and returns the
// store. A missing file is initialized to an empty array; any other I/O error
// is returned.
func NewUserStore(path string) (*UserStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	s := &UserStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.save([]models.User{}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat users file: %w", err)
	}
	return s, nil
}

type CreateUserInput struct {
	Username    string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
	CarMake     string
	CarModel    string
	VINCode     string
}

// UpdateUserInput carries a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Username    *string
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	CarMake     *string
	CarModel    *string
	VINCode     *string
	IsAdmin     *bool
}

// Create registers a new user. It rejects duplicate email, VIN and username,
// hashes the password with bcrypt and persists the full file. The returned
// record has the password hash stripped.
func (s *UserStore) Create(in CreateUserInput) (models.User, error) {
	if in.Password == "" {
		return models.User{}, ErrMissingPassword
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return models.User{}, err
	}

	vin := strings.ToUpper(in.VINCode)
	for _, u := range users {
		if in.Email != "" && strings.EqualFold(u.Email, in.Email) {
			return models.User{}, ErrDuplicateEmail
		}
		if strings.EqualFold(u.VINCode, vin) {
			return models.User{}, ErrDuplicateVIN
		}
		if strings.EqualFold(u.Username, in.Username) {
			return models.User{}, ErrDuplicateUsername
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:          uuid.NewString(),
		Username:    in.Username,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Password:    string(hash),
		CarMake:     in.CarMake,
		CarModel:    in.CarModel,
		VINCode:     vin,
		IsAdmin:     false,
	}

	users = append(users, user)
	if err := s.save(users); err != nil {
		return models.User{}, err
	}
	return user.Public(), nil
}

// VerifyPassword checks credentials by email. It returns (nil, nil) for an
// unknown email, a record without a stored hash, or a wrong password — the
// three cases are indistinguishable on purpose, so callers cannot enumerate
// accounts. On success it returns the user with the hash stripped.
func (s *UserStore) VerifyPassword(email, candidate string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if !strings.EqualFold(u.Email, email) || u.Email == "" {
			continue
		}
		if u.Password == "" {
			return nil, nil
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate)) != nil {
			return nil, nil
		}
		pub := u.Public()
		return &pub, nil
	}
	return nil, nil
}

// GetByID returns the user with the hash stripped, or (nil, nil) when absent.
func (s *UserStore) GetByID(id string) (*models.User, error) {
	return s.find(func(u models.User) bool { return u.ID == id })
}

// GetByEmail returns the user with the hash stripped, or (nil, nil) when absent.
func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	return s.find(func(u models.User) bool { return u.Email != "" && strings.EqualFold(u.Email, email) })
}

// GetByVIN returns the user with the hash stripped, or (nil, nil) when absent.
func (s *UserStore) GetByVIN(vin string) (*models.User, error) {
	return s.find(func(u models.User) bool { return strings.EqualFold(u.VINCode, vin) })
}

func (s *UserStore) find(match func(models.User) bool) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if match(u) {
			pub := u.Public()
			return &pub, nil
		}
	}
	return nil, nil
}

// Update merges the provided fields into the record and persists the file.
// Identity fields are re-checked against the rest of the store when they
// change.
func (s *UserStore) Update(id string, in UpdateUserInput) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return models.User{}, err
	}

	idx := -1
	for i := range users {
		if users[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.User{}, ErrNotFound
	}

	for i, u := range users {
		if i == idx {
			continue
		}
		if in.Email != nil && *in.Email != "" && strings.EqualFold(u.Email, *in.Email) {
			return models.User{}, ErrDuplicateEmail
		}
		if in.VINCode != nil && strings.EqualFold(u.VINCode, *in.VINCode) {
			return models.User{}, ErrDuplicateVIN
		}
		if in.Username != nil && strings.EqualFold(u.Username, *in.Username) {
			return models.User{}, ErrDuplicateUsername
		}
	}

	u := &users[idx]
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.PhoneNumber != nil {
		u.PhoneNumber = *in.PhoneNumber
	}
	if in.CarMake != nil {
		u.CarMake = *in.CarMake
	}
	if in.CarModel != nil {
		u.CarModel = *in.CarModel
	}
	if in.VINCode != nil {
		u.VINCode = strings.ToUpper(*in.VINCode)
	}
	if in.IsAdmin != nil {
		u.IsAdmin = *in.IsAdmin
	}

	if err := s.save(users); err != nil {
		return models.User{}, err
	}
	return u.Public(), nil
}

// UpdatePassword re-hashes and replaces the stored password.
func (s *UserStore) UpdatePassword(id, newPassword string) error {
	if newPassword == "" {
		return ErrMissingPassword
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			users[i].Password = string(hash)
			return s.save(users)
		}
	}
	return ErrNotFound
}

// List returns every record with the password hash stripped.
func (s *UserStore) List() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]models.User, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out, nil
}

// load reads the whole file. Only a missing file is tolerated (treated as an
// empty store); parse errors are surfaced because silently dropping user
// records is worse than failing the request.
func (s *UserStore) load() ([]models.User, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []models.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}
	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse users file: %w", err)
	}
	return users, nil
}

func (s *UserStore) save(users []models.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}
