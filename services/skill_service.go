package services

import (
	"context"
	"strings"

	"github.com/anjiri1684/pesuconnect/models"
)

func (s *Service) Skills(ctx context.Context, studentID int64) ([]models.SkillEntry, error) {
	return s.store.ListSkills(ctx, studentID)
}

func parseLevel(raw string) (models.Proficiency, error) {
	level, err := models.ParseProficiency(raw)
	if err != nil {
		return "", fieldError("Proficiency", "Proficiency must be Beginner, Intermediate or Advanced.")
	}
	return level, nil
}

func (s *Service) AddSkill(ctx context.Context, studentID int64, in SkillInput) (models.AddSkillResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return models.AddSkillResult{}, err
	}
	level, err := parseLevel(in.Proficiency)
	if err != nil {
		return models.AddSkillResult{}, err
	}
	return s.store.AddSkill(ctx, studentID, in.Name, level)
}

func (s *Service) ownedSkill(ctx context.Context, studentID, skillID int64) error {
	skills, err := s.store.ListSkills(ctx, studentID)
	if err != nil {
		return err
	}
	for _, sk := range skills {
		if sk.SkillID == skillID {
			return nil
		}
	}
	return ErrSkillNotAdded
}

func (s *Service) UpdateSkill(ctx context.Context, studentID, skillID int64, proficiency string) error {
	level, err := parseLevel(proficiency)
	if err != nil {
		return err
	}
	if err := s.ownedSkill(ctx, studentID, skillID); err != nil {
		return err
	}
	return s.store.UpdateSkill(ctx, studentID, skillID, level)
}

func (s *Service) RemoveSkill(ctx context.Context, studentID, skillID int64) error {
	if err := s.ownedSkill(ctx, studentID, skillID); err != nil {
		return err
	}
	return s.store.RemoveSkill(ctx, studentID, skillID)
}
