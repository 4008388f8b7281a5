package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/skillforge/skillforge-backend/internal/database"
	"github.com/skillforge/skillforge-backend/internal/models"
)

// ProfileService handles all the profile business logic
type ProfileService struct {
	DB *database.Queries // database access layer
}

// NewProfileService creates service with db dependency
func NewProfileService(db *database.Queries) *ProfileService {
	return &ProfileService{
		DB: db,
	}
}

// GetAllProfiles fetches all profiles from database
func (s *ProfileService) GetAllProfiles(ctx context.Context) ([]models.Profile, error) {
	profiles, err := s.DB.GetAllProfiles(ctx)
	if err != nil {
		log.Printf("Error retrieving profiles: %v", err)
		return nil, fmt.Errorf("failed to retrieve profiles: %w", err)
	}

	// convert db models to app models
	modelProfiles := make([]models.Profile, len(profiles))
	for i, p := range profiles {
		modelProfiles[i] = profileFromRow(p)
	}

	return modelProfiles, nil
}

// CreateProfile makes a new profile with validation
func (s *ProfileService) CreateProfile(ctx context.Context, in models.CreateProfileInput) (models.Profile, error) {
	// basic validation - name can't be empty
	if strings.TrimSpace(in.Name) == "" {
		return models.Profile{}, errors.New("profile name cannot be empty")
	}

	createdProfile, err := s.DB.CreateProfile(ctx, database.CreateProfileParams{
		ID:   uuid.New(),
		Name: in.Name,
	})
	if err != nil {
		log.Printf("Error creating profile: %v", err)
		return models.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}

	return profileFromRow(createdProfile), nil
}

// UpdateProfileName updates profile name by profile ID
func (s *ProfileService) UpdateProfileName(ctx context.Context, profileID uuid.UUID, newName string) (models.Profile, error) {
	if profileID == uuid.Nil {
		return models.Profile{}, errors.New("profile ID cannot be empty")
	}
	if strings.TrimSpace(newName) == "" {
		return models.Profile{}, errors.New("new name cannot be empty")
	}

	updatedProfile, err := s.DB.UpdateProfileByID(ctx, database.UpdateProfileByIDParams{
		ID:   profileID,
		Name: newName,
	})
	if err != nil {
		log.Printf("Error updating profile by ID: %v", err)
		return models.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return profileFromRow(updatedProfile), nil
}

// GetProfileByID retrieves a profile by its ID
func (s *ProfileService) GetProfileByID(ctx context.Context, id uuid.UUID) (models.Profile, error) {
	dbProfile, err := s.DB.GetProfileById(ctx, id)
	if err != nil {
		log.Printf("Error retrieving profile by ID: %v", err)
		return models.Profile{}, fmt.Errorf("failed to get profile by ID: %w", err)
	}

	return profileFromRow(dbProfile), nil
}

// DeleteProfileByID deletes a profile by profile ID
func (s *ProfileService) DeleteProfileByID(ctx context.Context, profileID uuid.UUID) error {
	if profileID == uuid.Nil {
		return errors.New("profile ID cannot be empty")
	}

	if err := s.DB.DeleteProfile(ctx, profileID); err != nil {
		log.Printf("Error deleting profile by ID: %v", err)
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}

// AwardAction grants the XP reward for an action, records the event and
// bumps whatever counters the action touches
func (s *ProfileService) AwardAction(ctx context.Context, profileID uuid.UUID, action string) (models.AwardResult, error) {
	reward, ok := XPRewards[action]
	if !ok {
		return models.AwardResult{}, fmt.Errorf("unknown XP action: %s", action)
	}

	before, err := s.DB.GetProfileById(ctx, profileID)
	if err != nil {
		return models.AwardResult{}, fmt.Errorf("failed to load profile: %w", err)
	}

	result := AwardXP(int(before.Xp), reward)

	if _, err := s.DB.AddProfileXP(ctx, database.AddProfileXPParams{
		ID:     profileID,
		Points: int32(reward.Points),
	}); err != nil {
		return models.AwardResult{}, fmt.Errorf("failed to award XP: %w", err)
	}

	if err := s.DB.CreateXpEvent(ctx, database.CreateXpEventParams{
		ID:        uuid.New(),
		ProfileID: profileID,
		Action:    reward.Action,
		Points:    int32(reward.Points),
	}); err != nil {
		// the XP is already granted, losing the event row is survivable
		log.Printf("Warning: failed to record XP event: %v", err)
	}

	switch action {
	case "lesson_complete":
		err = s.DB.IncrementLessonsCompleted(ctx, profileID)
	case "quiz_perfect":
		err = s.DB.IncrementPerfectQuizzes(ctx, profileID)
	case "first_course_created":
		err = s.DB.IncrementCoursesCreated(ctx, profileID)
	}
	if err != nil {
		log.Printf("Warning: failed to update counters for %s: %v", action, err)
	}

	log.Printf("[AwardXP] %s +%d XP (level up: %v)", action, reward.Points, result.LevelUp)
	return result, nil
}

// GetLevel computes the level info for a profile's current XP
func (s *ProfileService) GetLevel(ctx context.Context, profileID uuid.UUID) (models.LevelInfo, error) {
	dbProfile, err := s.DB.GetProfileById(ctx, profileID)
	if err != nil {
		return models.LevelInfo{}, fmt.Errorf("failed to load profile: %w", err)
	}
	return CalculateLevel(int(dbProfile.Xp)), nil
}

// GetAchievements evaluates the full catalog against a profile's stats.
// Newly satisfied achievements are persisted and their XP granted; the
// returned list carries the unlocked flags for display.
func (s *ProfileService) GetAchievements(ctx context.Context, profileID uuid.UUID) ([]models.Achievement, error) {
	dbProfile, err := s.DB.GetProfileById(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	unlocks, err := s.DB.ListAchievementUnlocks(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievement unlocks: %w", err)
	}
	unlockedAt := make(map[string]database.AchievementUnlock, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.AchievementID] = u
	}

	// catalog copy with stored unlock state applied
	catalog := make([]models.Achievement, len(Achievements))
	copy(catalog, Achievements)
	for i := range catalog {
		if u, ok := unlockedAt[catalog[i].ID]; ok {
			catalog[i].Unlocked = true
			if u.UnlockedAt.Valid {
				t := u.UnlockedAt.Time
				catalog[i].UnlockedAt = &t
			}
		}
	}

	profile := profileFromRow(dbProfile)
	for _, fresh := range CheckAchievements(profile.Stats(), catalog) {
		if err := s.DB.CreateAchievementUnlock(ctx, database.CreateAchievementUnlockParams{
			ProfileID:     profileID,
			AchievementID: fresh.ID,
		}); err != nil {
			log.Printf("Warning: failed to persist unlock %s: %v", fresh.ID, err)
			continue
		}

		if fresh.Reward.XP > 0 {
			if _, err := s.DB.AddProfileXP(ctx, database.AddProfileXPParams{
				ID:     profileID,
				Points: int32(fresh.Reward.XP),
			}); err != nil {
				log.Printf("Warning: failed to grant achievement XP for %s: %v", fresh.ID, err)
			}
		}

		log.Printf("[Achievements] Unlocked %s for profile %s", fresh.ID, profileID)
		for i := range catalog {
			if catalog[i].ID == fresh.ID {
				catalog[i].Unlocked = true
			}
		}
	}

	return catalog, nil
}

// Leaderboard returns the top profiles by XP
func (s *ProfileService) Leaderboard(ctx context.Context, limit int) ([]models.Profile, error) {
	if limit <= 0 {
		limit = 10
	}

	dbProfiles, err := s.DB.ListProfilesByXP(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	profiles := make([]models.Profile, len(dbProfiles))
	for i, p := range dbProfiles {
		profiles[i] = profileFromRow(p)
	}
	return profiles, nil
}

// RecordAIInteraction bumps the tutor-usage counter, best effort
func (s *ProfileService) RecordAIInteraction(ctx context.Context, profileID uuid.UUID) {
	if profileID == uuid.Nil {
		return
	}
	if err := s.DB.IncrementAIInteractions(ctx, profileID); err != nil {
		log.Printf("Warning: failed to record AI interaction: %v", err)
	}
}

func profileFromRow(p database.Profile) models.Profile {
	return models.Profile{
		ID:               p.ID,
		Name:             p.Name,
		XP:               int(p.Xp),
		CurrentStreak:    int(p.CurrentStreak),
		LessonsCompleted: int(p.LessonsCompleted),
		PerfectQuizzes:   int(p.PerfectQuizzes),
		LessonsToday:     int(p.LessonsToday),
		CoursesCreated:   int(p.CoursesCreated),
		DiverseLessons:   int(p.DiverseLessons),
		AIInteractions:   int(p.AiInteractions),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
