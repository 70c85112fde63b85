package services

import (
	"context"
	"strings"

	"asset-management-api/models"
)

// fakeStore is an in-memory ImportStore for tests. Creates append to the
// same slices lookups read, so a row persisted earlier in a batch is
// visible to later duplicate checks, like the real store.
type fakeStore struct {
	categories []*models.Category
	rooms      []*models.Room
	users      []*models.User
	assets     []*models.Asset
	runs       []*models.ExcelImport

	nextRunID uint
	txErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextRunID: 1}
}

func (s *fakeStore) seedCategory(id uint, name string) {
	s.categories = append(s.categories, &models.Category{ID: id, Name: name})
}

func (s *fakeStore) seedRoom(id uint, code, name string) {
	s.rooms = append(s.rooms, &models.Room{ID: id, Code: code, Name: name})
}

func (s *fakeStore) seedUser(id uint, firstname, lastname, email string) {
	s.users = append(s.users, &models.User{ID: id, Firstname: firstname, Lastname: lastname, Email: email})
}

func (s *fakeStore) CategoryByID(_ context.Context, id uint) (*models.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) CategoryByName(_ context.Context, name string) (*models.Category, error) {
	for _, c := range s.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) RoomByID(_ context.Context, id uint) (*models.Room, error) {
	for _, r := range s.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) RoomByCode(_ context.Context, code string) (*models.Room, error) {
	for _, r := range s.rooms {
		if r.Code == code {
			return r, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) UserByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) UserByName(_ context.Context, firstname, lastname string) (*models.User, error) {
	for _, u := range s.users {
		if u.Firstname == firstname && u.Lastname == lastname {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) AssetCodeExists(_ context.Context, code string) (bool, error) {
	for _, a := range s.assets {
		if a.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) AssetSerialExists(_ context.Context, serial string) (bool, error) {
	for _, a := range s.assets {
		if a.SerialNumber != nil && *a.SerialNumber == serial {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) RoomCodeExists(ctx context.Context, code string) (bool, error) {
	r, _ := s.RoomByCode(ctx, code)
	return r != nil, nil
}

func (s *fakeStore) CategoryNameExists(ctx context.Context, name string) (bool, error) {
	c, _ := s.CategoryByName(ctx, name)
	return c != nil, nil
}

func (s *fakeStore) UserEmailExists(ctx context.Context, email string) (bool, error) {
	u, _ := s.UserByEmail(ctx, email)
	return u != nil, nil
}

func (s *fakeStore) UserUsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range s.users {
		if u.Username != nil && *u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) CreateAsset(_ context.Context, asset *models.Asset) error {
	s.assets = append(s.assets, asset)
	return nil
}

func (s *fakeStore) CreateRoom(_ context.Context, room *models.Room) error {
	s.rooms = append(s.rooms, room)
	return nil
}

func (s *fakeStore) CreateCategory(_ context.Context, category *models.Category) error {
	s.categories = append(s.categories, category)
	return nil
}

func (s *fakeStore) CreateUser(_ context.Context, user *models.User) error {
	s.users = append(s.users, user)
	return nil
}

func (s *fakeStore) CreateImportRun(_ context.Context, run *models.ExcelImport) error {
	run.ID = s.nextRunID
	s.nextRunID++
	s.runs = append(s.runs, run)
	return nil
}

// Transaction applies fn to a scratch copy and merges it back only on
// success, so a failed commit leaves the store untouched.
func (s *fakeStore) Transaction(_ context.Context, fn func(ImportStore) error) error {
	if s.txErr != nil {
		return s.txErr
	}
	scratch := *s
	if err := fn(&scratch); err != nil {
		return err
	}
	*s = scratch
	return nil
}
