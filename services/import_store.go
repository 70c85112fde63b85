package services

import (
	"context"
	"errors"

	"asset-management-api/config"
	"asset-management-api/models"

	"gorm.io/gorm"
)

// GormImportStore is the production ImportStore backed by the shared
// gorm handle. One instance per process is injected into the importer.
type GormImportStore struct {
	db *gorm.DB
}

func NewGormImportStore(db *gorm.DB) *GormImportStore {
	if db == nil {
		db = config.DB
	}
	return &GormImportStore{db: db}
}

func (s *GormImportStore) CategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormImportStore) CategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormImportStore) RoomByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *GormImportStore) RoomByCode(ctx context.Context, code string) (*models.Room, error) {
	var room models.Room
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *GormImportStore) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormImportStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormImportStore) UserByName(ctx context.Context, firstname, lastname string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("firstname = ? AND lastname = ?", firstname, lastname).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormImportStore) AssetCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Asset{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (s *GormImportStore) AssetSerialExists(ctx context.Context, serial string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Asset{}).Where("serial_number = ?", serial).Count(&count).Error
	return count > 0, err
}

func (s *GormImportStore) RoomCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Room{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (s *GormImportStore) CategoryNameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Category{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (s *GormImportStore) UserEmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (s *GormImportStore) UserUsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (s *GormImportStore) CreateAsset(ctx context.Context, asset *models.Asset) error {
	return s.db.WithContext(ctx).Create(asset).Error
}

func (s *GormImportStore) CreateRoom(ctx context.Context, room *models.Room) error {
	return s.db.WithContext(ctx).Create(room).Error
}

func (s *GormImportStore) CreateCategory(ctx context.Context, category *models.Category) error {
	return s.db.WithContext(ctx).Create(category).Error
}

func (s *GormImportStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormImportStore) CreateImportRun(ctx context.Context, run *models.ExcelImport) error {
	return s.db.WithContext(ctx).Create(run).Error
}

func (s *GormImportStore) Transaction(ctx context.Context, fn func(ImportStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormImportStore{db: tx})
	})
}
