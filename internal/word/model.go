package word

// Entry 定义了单词本条目在SQLite数据库中的持久化模型。
// 每个条目归属于一个用户，按自增ID升序就是用户的添加顺序。
type Entry struct {
	ID uint `gorm:"primarykey" json:"id"`

	// Word 是单词本身
	Word string `gorm:"not null" json:"word"`

	// Meaning 是可选的中文意思
	Meaning string `json:"meaning"`

	// RememberedCount 记录用户标记"记住了"的次数
	RememberedCount int `gorm:"default:0" json:"rememberedCount"`

	// UserID 是所属用户，外键，必填
	UserID uint `gorm:"not null;index" json:"userId"`
}

// TableName 沿用原有数据库的表名
func (Entry) TableName() string {
	return "items"
}

// needsReviewThreshold 记住次数低于该值的单词需要复习
const needsReviewThreshold = 3

// Stat 是学习统计接口的响应条目
type Stat struct {
	ID              uint   `json:"id"`
	Word            string `json:"word"`
	Meaning         string `json:"meaning"`
	RememberedCount int    `json:"rememberedCount"`
	NeedsReview     bool   `json:"needsReview"`
}
