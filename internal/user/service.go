package user

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/vocab-notebook/vocabulary-backend/pkg/apperr"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// maxAvatarSize 上传头像的大小上限
const maxAvatarSize = 5 * 1024 * 1024

// dicebearPrefix 随机头像只接受这个来源
const dicebearPrefix = "https://api.dicebear.com/"

// allowedAvatarTypes 上传头像允许的MIME类型
var allowedAvatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// Service 实现用户账号、今日任务和头像相关的业务逻辑
type Service struct {
	repo      *Repository
	avatarDir string
	logger    *zap.Logger
}

// NewService 构造用户服务，avatarDir是头像文件的存储目录
func NewService(repo *Repository, avatarDir string, logger *zap.Logger) *Service {
	return &Service{repo: repo, avatarDir: avatarDir, logger: logger}
}

// Register 注册新用户。用户名和密码先去除首尾空白。
func (s *Service) Register(username, password string) (*Profile, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, apperr.New(apperr.ErrValidation, "用户名和密码不能为空")
	}

	exists, err := s.repo.ExistsByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("查询用户名失败: %w", err)
	}
	if exists {
		return nil, apperr.New(apperr.ErrConflict, "用户名已存在")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密码散列失败: %w", err)
	}

	u := &User{Username: username, PasswordHash: string(hash)}
	if err := s.repo.Create(u); err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	s.logger.Info("新用户注册成功", zap.Uint("userID", u.ID), zap.String("username", username))
	return newProfile(u), nil
}

// Login 校验用户名和密码。
// 用户不存在和密码错误返回同一个提示，不泄露用户名是否被注册。
func (s *Service) Login(username, password string) (*Profile, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, apperr.New(apperr.ErrValidation, "用户名和密码不能为空")
	}

	u, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if u == nil {
		return nil, apperr.New(apperr.ErrUnauthorized, "用户名或密码错误")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, apperr.New(apperr.ErrUnauthorized, "用户名或密码错误")
	}

	return newProfile(u), nil
}

// Verify 按用户ID恢复登录态
func (s *Service) Verify(userID uint) (*Profile, error) {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if u == nil {
		return nil, apperr.New(apperr.ErrUnauthorized, "用户不存在")
	}
	return newProfile(u), nil
}

// UpdateDailyTasks 部分更新今日任务字段，只改动请求中出现的字段
func (s *Service) UpdateDailyTasks(userID uint, update DailyTaskUpdate) error {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		return fmt.Errorf("查询用户失败: %w", err)
	}
	if u == nil {
		return apperr.New(apperr.ErrUnauthorized, "用户不存在")
	}

	if update.CheckInCompleted != nil {
		u.CheckInCompleted = *update.CheckInCompleted
	}
	if update.LearnWordsProgress != nil {
		u.LearnWordsProgress = *update.LearnWordsProgress
	}
	if update.ReviewWordsProgress != nil {
		u.ReviewWordsProgress = *update.ReviewWordsProgress
	}
	if update.StudyTimeProgress != nil {
		u.StudyTimeProgress = *update.StudyTimeProgress
	}
	if update.LastTaskDate != nil {
		u.LastTaskDate = *update.LastTaskDate
	}

	if err := s.repo.Save(u); err != nil {
		return fmt.Errorf("保存今日任务失败: %w", err)
	}
	return nil
}

// SaveAvatar 校验并保存上传的头像文件，返回生成的文件名
func (s *Service) SaveAvatar(userID uint, file *multipart.FileHeader) (string, error) {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		return "", fmt.Errorf("查询用户失败: %w", err)
	}
	if u == nil {
		return "", apperr.New(apperr.ErrUnauthorized, "用户不存在")
	}

	if file.Size == 0 {
		return "", apperr.New(apperr.ErrValidation, "文件不能为空")
	}
	if !allowedAvatarTypes[file.Header.Get("Content-Type")] {
		return "", apperr.New(apperr.ErrValidation, "只支持 JPG、PNG、GIF 格式的图片")
	}
	if file.Size > maxAvatarSize {
		return "", apperr.New(apperr.ErrValidation, "文件大小不能超过 5MB")
	}

	if err := os.MkdirAll(s.avatarDir, 0o755); err != nil {
		return "", fmt.Errorf("创建上传目录失败: %w", err)
	}

	// 生成唯一文件名，保留原扩展名
	filename := uuid.NewString() + filepath.Ext(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("读取上传文件失败: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.avatarDir, filename))
	if err != nil {
		return "", fmt.Errorf("保存头像文件失败: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("写入头像文件失败: %w", err)
	}

	u.AvatarURL = filename
	if err := s.repo.Save(u); err != nil {
		return "", fmt.Errorf("更新头像失败: %w", err)
	}

	s.logger.Info("头像上传成功", zap.Uint("userID", userID), zap.String("filename", filename))
	return filename, nil
}

// SetRandomAvatar 把头像设置为一个DiceBear生成的URL
func (s *Service) SetRandomAvatar(userID uint, avatarURL string) error {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		return fmt.Errorf("查询用户失败: %w", err)
	}
	if u == nil {
		return apperr.New(apperr.ErrUnauthorized, "用户不存在")
	}

	if !strings.HasPrefix(avatarURL, dicebearPrefix) {
		return apperr.New(apperr.ErrValidation, "无效的头像URL")
	}

	u.AvatarURL = avatarURL
	if err := s.repo.Save(u); err != nil {
		return fmt.Errorf("更新头像失败: %w", err)
	}
	return nil
}

// AvatarFilePath 返回头像文件在磁盘上的路径。
// 文件名含路径分隔符或文件不存在时返回ErrNotFound。
func (s *Service) AvatarFilePath(filename string) (string, error) {
	if filename == "" || filepath.Base(filename) != filename {
		return "", apperr.New(apperr.ErrNotFound, "头像不存在")
	}
	path := filepath.Join(s.avatarDir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", apperr.New(apperr.ErrNotFound, "头像不存在")
	}
	return path, nil
}
