package user

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vocab-notebook/vocabulary-backend/pkg/apperr"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))
	return db
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewRepository(newTestDB(t)), t.TempDir(), zap.NewNop())
}

func TestService_Register(t *testing.T) {
	t.Run("success returns zeroed daily tasks", func(t *testing.T) {
		s := newTestService(t)

		profile, err := s.Register("alice", "pw123")

		require.NoError(t, err)
		assert.NotZero(t, profile.ID)
		assert.Equal(t, "alice", profile.Username)
		assert.Empty(t, profile.AvatarURL)
		assert.False(t, profile.DailyTasks.CheckInCompleted)
		assert.Zero(t, profile.DailyTasks.LearnWordsProgress)
		assert.Zero(t, profile.DailyTasks.ReviewWordsProgress)
		assert.Zero(t, profile.DailyTasks.StudyTimeProgress)
		assert.Nil(t, profile.DailyTasks.LastTaskDate)
	})

	t.Run("password is stored hashed", func(t *testing.T) {
		s := newTestService(t)
		profile, err := s.Register("bob", "secret")
		require.NoError(t, err)

		u, err := s.repo.FindByID(profile.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "secret", u.PasswordHash)
		assert.NotEmpty(t, u.PasswordHash)
	})

	t.Run("duplicate username conflicts even with surrounding whitespace", func(t *testing.T) {
		s := newTestService(t)
		_, err := s.Register("alice", "pw123")
		require.NoError(t, err)

		_, err = s.Register("  alice  ", "other")
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("empty fields are rejected", func(t *testing.T) {
		s := newTestService(t)

		_, err := s.Register("", "pw")
		assert.ErrorIs(t, err, apperr.ErrValidation)

		_, err = s.Register("alice", "   ")
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestService_LoginAndVerify(t *testing.T) {
	t.Run("login then verify returns identical daily tasks", func(t *testing.T) {
		s := newTestService(t)
		registered, err := s.Register("alice", "pw123")
		require.NoError(t, err)

		date := "2024-06-01"
		require.NoError(t, s.UpdateDailyTasks(registered.ID, DailyTaskUpdate{
			LearnWordsProgress: intPtr(7),
			LastTaskDate:       &date,
		}))

		logged, err := s.Login("alice", "pw123")
		require.NoError(t, err)
		verified, err := s.Verify(logged.ID)
		require.NoError(t, err)

		assert.Equal(t, logged.DailyTasks, verified.DailyTasks)
		assert.Equal(t, 7, verified.DailyTasks.LearnWordsProgress)
		require.NotNil(t, verified.DailyTasks.LastTaskDate)
		assert.Equal(t, date, *verified.DailyTasks.LastTaskDate)
	})

	t.Run("wrong password and unknown user share the same message", func(t *testing.T) {
		s := newTestService(t)
		_, err := s.Register("alice", "pw123")
		require.NoError(t, err)

		_, badPw := s.Login("alice", "wrong")
		_, badUser := s.Login("nobody", "pw123")

		assert.ErrorIs(t, badPw, apperr.ErrUnauthorized)
		assert.ErrorIs(t, badUser, apperr.ErrUnauthorized)
		assert.Equal(t, badPw.Error(), badUser.Error())
	})

	t.Run("verify of absent user is unauthorized", func(t *testing.T) {
		s := newTestService(t)

		_, err := s.Verify(42)
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})
}

func TestService_UpdateDailyTasks(t *testing.T) {
	t.Run("partial update leaves other fields untouched", func(t *testing.T) {
		s := newTestService(t)
		profile, err := s.Register("alice", "pw123")
		require.NoError(t, err)

		checked := true
		require.NoError(t, s.UpdateDailyTasks(profile.ID, DailyTaskUpdate{
			CheckInCompleted:   &checked,
			LearnWordsProgress: intPtr(3),
		}))
		// 第二次只更新复习进度
		require.NoError(t, s.UpdateDailyTasks(profile.ID, DailyTaskUpdate{
			ReviewWordsProgress: intPtr(9),
		}))

		verified, err := s.Verify(profile.ID)
		require.NoError(t, err)
		assert.True(t, verified.DailyTasks.CheckInCompleted)
		assert.Equal(t, 3, verified.DailyTasks.LearnWordsProgress)
		assert.Equal(t, 9, verified.DailyTasks.ReviewWordsProgress)
		assert.Zero(t, verified.DailyTasks.StudyTimeProgress)
	})

	t.Run("absent user is unauthorized", func(t *testing.T) {
		s := newTestService(t)
		err := s.UpdateDailyTasks(42, DailyTaskUpdate{LearnWordsProgress: intPtr(1)})
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})
}

func TestService_SetRandomAvatar(t *testing.T) {
	s := newTestService(t)
	profile, err := s.Register("alice", "pw123")
	require.NoError(t, err)

	t.Run("accepts dicebear urls", func(t *testing.T) {
		url := "https://api.dicebear.com/7.x/adventurer/svg?seed=alice"
		require.NoError(t, s.SetRandomAvatar(profile.ID, url))

		verified, err := s.Verify(profile.ID)
		require.NoError(t, err)
		assert.Equal(t, url, verified.AvatarURL)
	})

	t.Run("rejects other origins", func(t *testing.T) {
		err := s.SetRandomAvatar(profile.ID, "https://evil.example.com/avatar.png")
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("absent user is unauthorized", func(t *testing.T) {
		err := s.SetRandomAvatar(999, "https://api.dicebear.com/7.x/adventurer/svg")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})
}

func intPtr(v int) *int { return &v }
