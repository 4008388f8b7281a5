package services

import (
	"github.com/skillforge/skillforge-backend/internal/models"
)

// XPRewards maps action names to their rewards
var XPRewards = map[string]models.XPReward{
	"lesson_complete":      {Action: "lesson_complete", Points: 50, Description: "Completed a lesson"},
	"quiz_perfect":         {Action: "quiz_perfect", Points: 100, Description: "Perfect score on quiz"},
	"quiz_pass":            {Action: "quiz_pass", Points: 75, Description: "Passed a quiz"},
	"course_complete":      {Action: "course_complete", Points: 500, Description: "Completed a course"},
	"daily_login":          {Action: "daily_login", Points: 10, Description: "Daily login bonus"},
	"streak_milestone":     {Action: "streak_milestone", Points: 200, Description: "Reached streak milestone"},
	"first_course_created": {Action: "first_course_created", Points: 300, Description: "Created first course"},
}

// LevelSystem is the full level table, ascending by XP requirement
var LevelSystem = []models.UserLevel{
	{Level: 1, Title: "Beginner", XPRequired: 0, Benefits: []string{"Access to basic courses"}},
	{Level: 2, Title: "Learner", XPRequired: 100, Benefits: []string{"Course bookmarks"}},
	{Level: 3, Title: "Student", XPRequired: 300, Benefits: []string{"Progress analytics"}},
	{Level: 5, Title: "Scholar", XPRequired: 750, Benefits: []string{"Advanced courses", "Priority support"}},
	{Level: 8, Title: "Expert", XPRequired: 1500, Benefits: []string{"Course creation", "Community access"}},
	{Level: 12, Title: "Master", XPRequired: 3000, Benefits: []string{"Unlimited courses", "Mentorship program"}},
	{Level: 15, Title: "Guru", XPRequired: 5000, Benefits: []string{"Beta features", "Custom badges"}},
	{Level: 20, Title: "Legend", XPRequired: 10000, Benefits: []string{"Lifetime access", "Special recognition"}},
}

// Achievements is the catalog of unlockable achievements
var Achievements = []models.Achievement{
	{
		ID: "first_lesson", Name: "First Steps", Description: "Complete your first lesson",
		Icon: "🎯", Category: "learning", Rarity: "common",
		Condition: models.AchievementCondition{Type: "lessons_completed", Target: 1},
		Reward:    models.AchievementReward{XP: 50},
	},
	{
		ID: "week_streak", Name: "Consistent Learner", Description: "Maintain a 7-day learning streak",
		Icon: "🔥", Category: "learning", Rarity: "rare",
		Condition: models.AchievementCondition{Type: "streak_days", Target: 7},
		Reward:    models.AchievementReward{XP: 200, Badge: "streak_master"},
	},
	{
		ID: "quiz_master", Name: "Quiz Master", Description: "Score 100% on 10 quizzes",
		Icon: "🧠", Category: "learning", Rarity: "epic",
		Condition: models.AchievementCondition{Type: "perfect_quizzes", Target: 10},
		Reward:    models.AchievementReward{XP: 500, Badge: "quiz_genius"},
	},
	{
		ID: "speed_learner", Name: "Speed Learner", Description: "Complete 5 lessons in one day",
		Icon: "⚡", Category: "learning", Rarity: "rare",
		Condition: models.AchievementCondition{Type: "lessons_per_day", Target: 5},
		Reward:    models.AchievementReward{XP: 300},
	},
	{
		ID: "course_creator", Name: "Course Creator", Description: "Create your first AI-generated course",
		Icon: "🎓", Category: "creation", Rarity: "common",
		Condition: models.AchievementCondition{Type: "courses_created", Target: 1},
		Reward:    models.AchievementReward{XP: 300},
	},
	{
		ID: "knowledge_seeker", Name: "Knowledge Seeker", Description: "Complete 25 lessons across different topics",
		Icon: "📚", Category: "learning", Rarity: "epic",
		Condition: models.AchievementCondition{Type: "diverse_lessons", Target: 25},
		Reward:    models.AchievementReward{XP: 750, Badge: "knowledge_master"},
	},
	{
		ID: "month_streak", Name: "Dedication Master", Description: "Maintain a 30-day learning streak",
		Icon: "💎", Category: "milestone", Rarity: "legendary",
		Condition: models.AchievementCondition{Type: "streak_days", Target: 30},
		Reward:    models.AchievementReward{XP: 1000, Badge: "dedication_legend"},
	},
	{
		ID: "ai_enthusiast", Name: "AI Enthusiast", Description: "Use AI tutor 50 times",
		Icon: "🤖", Category: "social", Rarity: "rare",
		Condition: models.AchievementCondition{Type: "ai_interactions", Target: 50},
		Reward:    models.AchievementReward{XP: 400},
	},
}

// CalculateLevel finds where an XP total sits in the level table
func CalculateLevel(xp int) models.LevelInfo {
	current := LevelSystem[0]
	next := LevelSystem[1]

	for i := 0; i < len(LevelSystem)-1; i++ {
		if xp >= LevelSystem[i].XPRequired && xp < LevelSystem[i+1].XPRequired {
			current = LevelSystem[i]
			next = LevelSystem[i+1]
			break
		}
	}

	// max level saturates
	last := LevelSystem[len(LevelSystem)-1]
	if xp >= last.XPRequired {
		current = last
		next = last
	}

	progress := 100.0
	if next.XPRequired > current.XPRequired {
		progress = float64(xp-current.XPRequired) / float64(next.XPRequired-current.XPRequired) * 100
	}

	return models.LevelInfo{
		Level:    current.Level,
		Title:    current.Title,
		XPToNext: next.XPRequired,
		Progress: progress,
	}
}

// AwardXP applies a reward to a running XP total and reports whether a
// level boundary was crossed
func AwardXP(currentXP int, reward models.XPReward) models.AwardResult {
	newXP := currentXP + reward.Points
	oldLevel := CalculateLevel(currentXP)
	newLevel := CalculateLevel(newXP)

	result := models.AwardResult{
		NewXP:   newXP,
		LevelUp: newLevel.Level > oldLevel.Level,
	}
	if result.LevelUp {
		for i := range LevelSystem {
			if LevelSystem[i].Level == newLevel.Level {
				result.NewLevel = &LevelSystem[i]
				break
			}
		}
	}
	return result
}

// CheckAchievements returns the achievements whose condition the given
// stats now satisfy. Already-unlocked entries are skipped.
func CheckAchievements(stats models.UserStats, achievements []models.Achievement) []models.Achievement {
	var unlocked []models.Achievement

	for _, achievement := range achievements {
		if achievement.Unlocked {
			continue
		}

		var current int
		switch achievement.Condition.Type {
		case "lessons_completed":
			current = stats.LessonsCompleted
		case "streak_days":
			current = stats.CurrentStreak
		case "perfect_quizzes":
			current = stats.PerfectQuizzes
		case "lessons_per_day":
			current = stats.LessonsToday
		case "courses_created":
			current = stats.CoursesCreated
		case "diverse_lessons":
			current = stats.DiverseLessons
		case "ai_interactions":
			current = stats.AIInteractions
		}

		if current >= achievement.Condition.Target {
			unlocked = append(unlocked, achievement)
		}
	}

	return unlocked
}
