package word

import (
	"errors"

	"gorm.io/gorm"
)

// Repository 封装items表的读写
type Repository struct {
	db *gorm.DB
}

// NewRepository 构造单词仓库
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create 插入一个新条目
func (r *Repository) Create(e *Entry) error {
	return r.db.Create(e).Error
}

// ListByUser 返回用户的全部条目，按ID升序（即添加顺序）
func (r *Repository) ListByUser(userID uint) ([]Entry, error) {
	var entries []Entry
	err := r.db.Where("user_id = ?", userID).Order("id asc").Find(&entries).Error
	return entries, err
}

// ListAll 返回所有用户的全部条目，按ID升序
func (r *Repository) ListAll() ([]Entry, error) {
	var entries []Entry
	err := r.db.Order("id asc").Find(&entries).Error
	return entries, err
}

// FindByIDForUser 按主键查找属于指定用户的条目，未找到返回(nil, nil)
func (r *Repository) FindByIDForUser(id, userID uint) (*Entry, error) {
	var e Entry
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteByID 按主键删除条目
func (r *Repository) DeleteByID(id uint) error {
	return r.db.Delete(&Entry{}, id).Error
}

// Save 保存对条目的修改
func (r *Repository) Save(e *Entry) error {
	return r.db.Save(e).Error
}
