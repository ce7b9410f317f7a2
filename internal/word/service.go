package word

import (
	"fmt"
	"strings"

	"github.com/vocab-notebook/vocabulary-backend/internal/user"
	"github.com/vocab-notebook/vocabulary-backend/pkg/apperr"
	"go.uber.org/zap"
)

// Service 实现单词本的业务逻辑
type Service struct {
	repo  *Repository
	users *user.Repository

	// allowGlobalList 控制不带userId的列表请求是否返回全部用户的单词
	allowGlobalList bool
	logger          *zap.Logger
}

// NewService 构造单词服务
func NewService(repo *Repository, users *user.Repository, allowGlobalList bool, logger *zap.Logger) *Service {
	return &Service{repo: repo, users: users, allowGlobalList: allowGlobalList, logger: logger}
}

// requireUser 确认用户存在，不存在时返回401语义的错误
func (s *Service) requireUser(userID uint) error {
	exists, err := s.users.ExistsByID(userID)
	if err != nil {
		return fmt.Errorf("查询用户失败: %w", err)
	}
	if !exists {
		return apperr.New(apperr.ErrUnauthorized, "用户不存在")
	}
	return nil
}

// Add 向用户的单词本添加一个单词，meaning可选
func (s *Service) Add(userID uint, wordText, meaning string) (*Entry, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	wordText = strings.TrimSpace(wordText)
	if wordText == "" {
		return nil, apperr.New(apperr.ErrValidation, "单词不能为空")
	}

	e := &Entry{
		Word:    wordText,
		Meaning: strings.TrimSpace(meaning),
		UserID:  userID,
	}
	if err := s.repo.Create(e); err != nil {
		return nil, fmt.Errorf("保存单词失败: %w", err)
	}

	s.logger.Info("单词添加成功", zap.Uint("userID", userID), zap.String("word", wordText), zap.Uint("id", e.ID))
	return e, nil
}

// Entries 返回完整条目列表。
// userID为nil时，在allowGlobalList开启的情况下返回所有用户的条目（首页兼容行为）；
// 指定的用户不存在时返回空列表而不是错误，与原有接口保持一致。
func (s *Service) Entries(userID *uint) ([]Entry, error) {
	if userID == nil {
		if !s.allowGlobalList {
			return []Entry{}, nil
		}
		return s.repo.ListAll()
	}

	exists, err := s.users.ExistsByID(*userID)
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if !exists {
		return []Entry{}, nil
	}
	return s.repo.ListByUser(*userID)
}

// Words 返回只含单词文本的列表，规则同Entries
func (s *Service) Words(userID *uint) ([]string, error) {
	entries, err := s.Entries(userID)
	if err != nil {
		return nil, err
	}
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Word
	}
	return words, nil
}

// DeleteByID 删除用户的一个条目。条目不存在或不属于该用户时返回404语义的错误。
func (s *Service) DeleteByID(userID, id uint) error {
	if err := s.requireUser(userID); err != nil {
		return err
	}

	e, err := s.repo.FindByIDForUser(id, userID)
	if err != nil {
		return fmt.Errorf("查询单词失败: %w", err)
	}
	if e == nil {
		return apperr.New(apperr.ErrNotFound, "单词不存在")
	}
	if err := s.repo.DeleteByID(e.ID); err != nil {
		return fmt.Errorf("删除单词失败: %w", err)
	}
	return nil
}

// RememberByID 把条目的记住次数加一
func (s *Service) RememberByID(userID, id uint) error {
	if err := s.requireUser(userID); err != nil {
		return err
	}

	e, err := s.repo.FindByIDForUser(id, userID)
	if err != nil {
		return fmt.Errorf("查询单词失败: %w", err)
	}
	if e == nil {
		return apperr.New(apperr.ErrNotFound, "单词不存在")
	}
	e.RememberedCount++
	if err := s.repo.Save(e); err != nil {
		return fmt.Errorf("更新记住次数失败: %w", err)
	}
	return nil
}

// resolveIndex 把位置索引解析为条目ID。
// 索引基于按ID升序的当前列表，在并发修改下可能指向不同的条目，
// 仅为兼容旧接口保留；新代码应该直接用条目ID。
func (s *Service) resolveIndex(userID uint, index int) (uint, error) {
	entries, err := s.repo.ListByUser(userID)
	if err != nil {
		return 0, fmt.Errorf("查询单词列表失败: %w", err)
	}
	if index < 0 || index >= len(entries) {
		return 0, apperr.New(apperr.ErrValidation, "无效的索引！")
	}
	return entries[index].ID, nil
}

// DeleteByIndex 按位置索引删除条目（兼容接口）
func (s *Service) DeleteByIndex(userID uint, index int) error {
	if err := s.requireUser(userID); err != nil {
		return err
	}
	id, err := s.resolveIndex(userID, index)
	if err != nil {
		return err
	}
	return s.DeleteByID(userID, id)
}

// RememberByIndex 按位置索引增加记住次数（兼容接口）
func (s *Service) RememberByIndex(userID uint, index int) error {
	if err := s.requireUser(userID); err != nil {
		return err
	}
	id, err := s.resolveIndex(userID, index)
	if err != nil {
		return err
	}
	return s.RememberByID(userID, id)
}

// Stats 返回用户每个条目的学习统计
func (s *Service) Stats(userID uint) ([]Stat, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	entries, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("查询单词列表失败: %w", err)
	}

	stats := make([]Stat, len(entries))
	for i, e := range entries {
		stats[i] = Stat{
			ID:              e.ID,
			Word:            e.Word,
			Meaning:         e.Meaning,
			RememberedCount: e.RememberedCount,
			NeedsReview:     e.RememberedCount < needsReviewThreshold,
		}
	}
	return stats, nil
}
