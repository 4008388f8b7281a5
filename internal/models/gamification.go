package models

import "time"

// XPReward maps an action to the points it grants
type XPReward struct {
	Action      string `json:"action"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}

// UserLevel is one row of the level table
type UserLevel struct {
	Level      int      `json:"level"`
	Title      string   `json:"title"`
	XPRequired int      `json:"xpRequired"`
	Benefits   []string `json:"benefits"`
}

// LevelInfo describes where a given XP total sits in the level table
type LevelInfo struct {
	Level    int     `json:"level"`
	Title    string  `json:"title"`
	XPToNext int     `json:"xpToNext"` // absolute threshold of the next level
	Progress float64 `json:"progress"` // 0-100 within the current level
}

// AwardResult is the outcome of granting an XP reward
type AwardResult struct {
	NewXP    int        `json:"newXP"`
	LevelUp  bool       `json:"levelUp"`
	NewLevel *UserLevel `json:"newLevel,omitempty"` // only set when a level was gained
}

// AchievementCondition is the stat threshold an achievement checks
type AchievementCondition struct {
	Type   string `json:"type"` // which counter to read
	Target int    `json:"target"`
}

// AchievementReward is what unlocking grants
type AchievementReward struct {
	XP    int    `json:"xp"`
	Badge string `json:"badge,omitempty"`
}

// Achievement is one unlockable badge
type Achievement struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Icon        string               `json:"icon"`
	Category    string               `json:"category"` // learning | social | creation | milestone
	Rarity      string               `json:"rarity"`   // common | rare | epic | legendary
	Condition   AchievementCondition `json:"condition"`
	Reward      AchievementReward    `json:"reward"`
	Unlocked    bool                 `json:"unlocked"`
	UnlockedAt  *time.Time           `json:"unlockedAt,omitempty"`
}

// UserStats are the counters achievements are evaluated against
type UserStats struct {
	LessonsCompleted int `json:"lessonsCompleted"`
	CurrentStreak    int `json:"currentStreak"`
	PerfectQuizzes   int `json:"perfectQuizzes"`
	LessonsToday     int `json:"lessonsToday"`
	CoursesCreated   int `json:"coursesCreated"`
	DiverseLessons   int `json:"diverseLessons"`
	AIInteractions   int `json:"aiInteractions"`
}
