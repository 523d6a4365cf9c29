package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Proficiency string

const (
	Beginner     Proficiency = "Beginner"
	Intermediate Proficiency = "Intermediate"
	Advanced     Proficiency = "Advanced"
)

var Proficiencies = []Proficiency{Beginner, Intermediate, Advanced}

var titleCaser = cases.Title(language.English)

// ParseProficiency accepts any casing ("advanced", "ADVANCED") of a known level.
func ParseProficiency(s string) (Proficiency, error) {
	p := Proficiency(titleCaser.String(strings.ToLower(strings.TrimSpace(s))))
	for _, known := range Proficiencies {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid proficiency %q", s)
}

type Skill struct {
	SkillID   int64  `gorm:"primaryKey;column:skill_id" json:"skill_id"`
	SkillName string `gorm:"size:100;not null;unique" json:"skill_name"`
}

func (Skill) TableName() string { return "skill" }

type StudentSkill struct {
	StudentID        int64       `gorm:"primaryKey;autoIncrement:false" json:"student_id"`
	SkillID          int64       `gorm:"primaryKey;autoIncrement:false" json:"skill_id"`
	ProficiencyLevel Proficiency `gorm:"size:20;not null" json:"proficiency_level"`
}

func (StudentSkill) TableName() string { return "student_skill" }

type SkillEntry struct {
	SkillID          int64       `json:"skill_id"`
	SkillName        string      `json:"skill_name"`
	ProficiencyLevel Proficiency `json:"proficiency_level"`
}

type AddSkillResult struct {
	SkillID  int64
	NewSkill bool
}
