package user

import "time"

// User 定义了用户在SQLite数据库中的持久化模型。
type User struct {
	ID uint `gorm:"primarykey" json:"id"`

	// Username 是登录名，全局唯一
	Username string `gorm:"uniqueIndex;not null;size:50" json:"username"`

	// PasswordHash 是bcrypt散列，永远不序列化
	PasswordHash string `gorm:"not null" json:"-"`

	// AvatarURL 是上传头像的文件名，或DiceBear头像的完整URL
	AvatarURL string `gorm:"size:255" json:"avatarUrl"`

	// --- 今日任务相关字段 ---

	// CheckInCompleted 今日是否已打卡
	CheckInCompleted bool `json:"checkInCompleted"`

	// LearnWordsProgress 今日学习新词的进度
	LearnWordsProgress int `json:"learnWordsProgress"`

	// ReviewWordsProgress 今日复习单词的进度
	ReviewWordsProgress int `json:"reviewWordsProgress"`

	// StudyTimeProgress 今日学习时长的进度
	StudyTimeProgress int `json:"studyTimeProgress"`

	// LastTaskDate 上次更新任务的日期，由前端提供的自由格式字符串
	LastTaskDate string `gorm:"size:20" json:"lastTaskDate"`

	// 由GORM自动管理
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName 沿用原有数据库的表名
func (User) TableName() string {
	return "users"
}

// DailyTasks 是响应中今日任务的载荷
type DailyTasks struct {
	CheckInCompleted    bool    `json:"checkInCompleted"`
	LearnWordsProgress  int     `json:"learnWordsProgress"`
	ReviewWordsProgress int     `json:"reviewWordsProgress"`
	StudyTimeProgress   int     `json:"studyTimeProgress"`
	LastTaskDate        *string `json:"lastTaskDate"`
}

// Profile 是注册/登录/校验共用的响应载荷
type Profile struct {
	ID         uint       `json:"id"`
	Username   string     `json:"username"`
	AvatarURL  string     `json:"avatarUrl"`
	DailyTasks DailyTasks `json:"dailyTasks"`
}

// newProfile 从持久化模型构造响应载荷
func newProfile(u *User) *Profile {
	var lastTaskDate *string
	if u.LastTaskDate != "" {
		lastTaskDate = &u.LastTaskDate
	}
	return &Profile{
		ID:        u.ID,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		DailyTasks: DailyTasks{
			CheckInCompleted:    u.CheckInCompleted,
			LearnWordsProgress:  u.LearnWordsProgress,
			ReviewWordsProgress: u.ReviewWordsProgress,
			StudyTimeProgress:   u.StudyTimeProgress,
			LastTaskDate:        lastTaskDate,
		},
	}
}

// DailyTaskUpdate 描述今日任务的部分更新，nil字段保持不变
type DailyTaskUpdate struct {
	CheckInCompleted    *bool   `json:"checkInCompleted"`
	LearnWordsProgress  *int    `json:"learnWordsProgress"`
	ReviewWordsProgress *int    `json:"reviewWordsProgress"`
	StudyTimeProgress   *int    `json:"studyTimeProgress"`
	LastTaskDate        *string `json:"lastTaskDate"`
}
