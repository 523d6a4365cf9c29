package database

import (
	"context"
	"fmt"

	"github.com/anjiri1684/pesuconnect/models"
	"gorm.io/gorm"
)

func (s *Store) ListSkills(ctx context.Context, studentID int64) ([]models.SkillEntry, error) {
	var skills []models.SkillEntry
	err := s.read(ctx).Raw(`
		SELECT s.skill_id, s.skill_name, ss.proficiency_level
		FROM student_skill ss
		JOIN skill s ON ss.skill_id = s.skill_id
		WHERE ss.student_id = ?
		ORDER BY s.skill_name`, studentID).Scan(&skills).Error
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

// AddSkill links a skill to the student, creating the skill on first use.
func (s *Store) AddSkill(ctx context.Context, studentID int64, name string, level models.Proficiency) (models.AddSkillResult, error) {
	var result models.AddSkillResult
	err := s.write(ctx, func(tx *gorm.DB) error {
		var owned int64
		err := tx.Raw(`
			SELECT COUNT(*)
			FROM student_skill ss
			JOIN skill s ON ss.skill_id = s.skill_id
			WHERE ss.student_id = ? AND s.skill_name = ?`, studentID, name).Scan(&owned).Error
		if err != nil {
			return err
		}
		if owned > 0 {
			return ErrSkillAlreadyAdded
		}

		var skill models.Skill
		res := tx.Raw("SELECT skill_id, skill_name FROM skill WHERE skill_name = ?", name).Scan(&skill)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := tx.Raw("INSERT INTO skill (skill_name) VALUES (?) RETURNING skill_id", name).Scan(&skill.SkillID).Error; err != nil {
				return err
			}
			result.NewSkill = true
		}
		result.SkillID = skill.SkillID

		return tx.Exec("INSERT INTO student_skill (student_id, skill_id, proficiency_level) VALUES (?, ?, ?)",
			studentID, skill.SkillID, string(level)).Error
	})
	if err != nil {
		return models.AddSkillResult{}, fmt.Errorf("add skill: %w", err)
	}
	return result, nil
}

func (s *Store) UpdateSkill(ctx context.Context, studentID, skillID int64, level models.Proficiency) error {
	err := s.write(ctx, func(tx *gorm.DB) error {
		return tx.Exec("UPDATE student_skill SET proficiency_level = ? WHERE student_id = ? AND skill_id = ?",
			string(level), studentID, skillID).Error
	})
	if err != nil {
		return fmt.Errorf("update skill: %w", err)
	}
	return nil
}

func (s *Store) RemoveSkill(ctx context.Context, studentID, skillID int64) error {
	err := s.write(ctx, func(tx *gorm.DB) error {
		return tx.Exec("DELETE FROM student_skill WHERE student_id = ? AND skill_id = ?", studentID, skillID).Error
	})
	if err != nil {
		return fmt.Errorf("remove skill: %w", err)
	}
	return nil
}
