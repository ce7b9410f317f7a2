package user

import (
	"errors"

	"gorm.io/gorm"
)

// Repository 封装users表的读写
type Repository struct {
	db *gorm.DB
}

// NewRepository 构造用户仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create 插入一个新用户，用户名冲突时返回数据库错误
func (r *Repository) Create(u *User) error {
	return r.db.Create(u).Error
}

// FindByUsername 按用户名查找，未找到返回(nil, nil)
func (r *Repository) FindByUsername(username string) (*User, error) {
	var u User
	err := r.db.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID 按主键查找，未找到返回(nil, nil)
func (r *Repository) FindByID(id uint) (*User, error) {
	var u User
	err := r.db.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ExistsByUsername 报告用户名是否已被占用
func (r *Repository) ExistsByUsername(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByID 报告用户是否存在
func (r *Repository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save 保存对用户的修改
func (r *Repository) Save(u *User) error {
	return r.db.Save(u).Error
}
