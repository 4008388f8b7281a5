package services

import (
	"testing"

	"github.com/skillforge/skillforge-backend/internal/models"
)

func TestCalculateLevelZeroXP(t *testing.T) {
	info := CalculateLevel(0)
	if info.Level != 1 || info.Title != "Beginner" {
		t.Errorf("level = %d (%s), want 1 (Beginner)", info.Level, info.Title)
	}
	if info.Progress != 0 {
		t.Errorf("progress = %v, want 0", info.Progress)
	}
	if info.XPToNext != 100 {
		t.Errorf("xpToNext = %d, want 100", info.XPToNext)
	}
}

func TestCalculateLevelTable(t *testing.T) {
	tests := []struct {
		xp        int
		wantLevel int
		wantTitle string
	}{
		{50, 1, "Beginner"},
		{100, 2, "Learner"},
		{299, 2, "Learner"},
		{300, 3, "Student"},
		{750, 5, "Scholar"},
		{1500, 8, "Expert"},
		{2999, 8, "Expert"},
		{3000, 12, "Master"},
		{5000, 15, "Guru"},
		{9999, 15, "Guru"},
		{10000, 20, "Legend"},
	}

	for _, tc := range tests {
		info := CalculateLevel(tc.xp)
		if info.Level != tc.wantLevel || info.Title != tc.wantTitle {
			t.Errorf("CalculateLevel(%d) = %d (%s), want %d (%s)",
				tc.xp, info.Level, info.Title, tc.wantLevel, tc.wantTitle)
		}
	}
}

func TestCalculateLevelMaxSaturates(t *testing.T) {
	info := CalculateLevel(250000)
	if info.Level != 20 {
		t.Errorf("level = %d, want 20", info.Level)
	}
	if info.Progress != 100 {
		t.Errorf("progress = %v, want 100", info.Progress)
	}
	if info.XPToNext != 10000 {
		t.Errorf("xpToNext = %d, want 10000 (pinned at max)", info.XPToNext)
	}
}

func TestAwardXPLevelUpAtBoundary(t *testing.T) {
	// 2950 + 100 crosses the 3000 threshold into Master
	result := AwardXP(2950, models.XPReward{Action: "quiz_perfect", Points: 100})
	if result.NewXP != 3050 {
		t.Errorf("newXP = %d, want 3050", result.NewXP)
	}
	if !result.LevelUp {
		t.Fatal("expected a level up")
	}
	if result.NewLevel == nil || result.NewLevel.Level != 12 {
		t.Errorf("newLevel = %+v, want level 12", result.NewLevel)
	}
}

func TestAwardXPNoLevelUp(t *testing.T) {
	result := AwardXP(100, models.XPReward{Action: "daily_login", Points: 10})
	if result.LevelUp {
		t.Error("unexpected level up")
	}
	if result.NewLevel != nil {
		t.Errorf("newLevel should be nil without a level up, got %+v", result.NewLevel)
	}
}

func TestCheckAchievementsUnlocks(t *testing.T) {
	stats := models.UserStats{LessonsCompleted: 1, CurrentStreak: 7}

	unlocked := CheckAchievements(stats, Achievements)

	ids := make(map[string]bool)
	for _, a := range unlocked {
		ids[a.ID] = true
	}
	if !ids["first_lesson"] {
		t.Error("first_lesson should unlock at 1 lesson")
	}
	if !ids["week_streak"] {
		t.Error("week_streak should unlock at a 7-day streak")
	}
	if ids["month_streak"] {
		t.Error("month_streak requires 30 days")
	}
	if ids["quiz_master"] {
		t.Error("quiz_master requires 10 perfect quizzes")
	}
}

func TestCheckAchievementsSkipsUnlocked(t *testing.T) {
	catalog := []models.Achievement{
		{
			ID:        "first_lesson",
			Unlocked:  true,
			Condition: models.AchievementCondition{Type: "lessons_completed", Target: 1},
		},
	}

	unlocked := CheckAchievements(models.UserStats{LessonsCompleted: 5}, catalog)
	if len(unlocked) != 0 {
		t.Errorf("already-unlocked achievement returned again: %+v", unlocked)
	}
}

func TestCheckAchievementsUsesTodayCounterForSpeedLearner(t *testing.T) {
	stats := models.UserStats{LessonsCompleted: 100, LessonsToday: 4}
	for _, a := range CheckAchievements(stats, Achievements) {
		if a.ID == "speed_learner" {
			t.Error("speed_learner must read the per-day counter, not the total")
		}
	}

	stats.LessonsToday = 5
	found := false
	for _, a := range CheckAchievements(stats, Achievements) {
		if a.ID == "speed_learner" {
			found = true
		}
	}
	if !found {
		t.Error("speed_learner should unlock at 5 lessons today")
	}
}

func TestXPRewardTable(t *testing.T) {
	tests := []struct {
		action string
		points int
	}{
		{"lesson_complete", 50},
		{"quiz_perfect", 100},
		{"quiz_pass", 75},
		{"course_complete", 500},
		{"daily_login", 10},
		{"streak_milestone", 200},
		{"first_course_created", 300},
	}
	for _, tc := range tests {
		reward, ok := XPRewards[tc.action]
		if !ok {
			t.Errorf("missing reward for %s", tc.action)
			continue
		}
		if reward.Points != tc.points {
			t.Errorf("%s = %d points, want %d", tc.action, reward.Points, tc.points)
		}
	}
}
