package models

import (
	"fmt"
	"strings"
)

// Grade is a V-scale bouldering grade. The zero value is V0.
type Grade int

const (
	GradeV0 Grade = iota
	GradeV1
	GradeV2
	GradeV3
	GradeV4
	GradeV5
	GradeV6
	GradeV7
	GradeV8
	GradeV9
	GradeV10
	GradeV11
	GradeV12Plus
)

const (
	MinGrade = GradeV0
	MaxGrade = GradeV12Plus
)

var gradeNames = [...]string{
	"V0", "V1", "V2", "V3", "V4", "V5", "V6",
	"V7", "V8", "V9", "V10", "V11", "V12+",
}

// Grades returns the full scale, easiest first.
func Grades() []Grade {
	out := make([]Grade, 0, len(gradeNames))
	for g := MinGrade; g <= MaxGrade; g++ {
		out = append(out, g)
	}
	return out
}

func (g Grade) Valid() bool {
	return g >= MinGrade && g <= MaxGrade
}

func (g Grade) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Grade(%d)", int(g))
	}
	return gradeNames[g]
}

// Offset moves n steps along the scale, clamped to its bounds.
func (g Grade) Offset(n int) Grade {
	next := g + Grade(n)
	if next < MinGrade {
		return MinGrade
	}
	if next > MaxGrade {
		return MaxGrade
	}
	return next
}

// ParseGrade accepts "V4", "v4", "4" and "V12+" ("V12" is read as V12+).
func ParseGrade(s string) (Grade, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	if norm == "" {
		return 0, fmt.Errorf("empty grade")
	}
	if !strings.HasPrefix(norm, "V") {
		norm = "V" + norm
	}
	if norm == "V12" {
		norm = "V12+"
	}
	for i, name := range gradeNames {
		if name == norm {
			return Grade(i), nil
		}
	}
	return 0, fmt.Errorf("unknown grade %q", s)
}

func (g Grade) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("invalid grade %d", int(g))
	}
	return []byte(g.String()), nil
}

func (g *Grade) UnmarshalText(text []byte) error {
	parsed, err := ParseGrade(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// GradeRelation classifies a grade against the climber's max grade.
type GradeRelation int

const (
	RelationBelow GradeRelation = iota // two or more grades under max
	RelationOneBelow
	RelationAtMax
	RelationAbove
)

func RelationTo(grade, max Grade) GradeRelation {
	switch diff := int(grade) - int(max); {
	case diff > 0:
		return RelationAbove
	case diff == 0:
		return RelationAtMax
	case diff == -1:
		return RelationOneBelow
	default:
		return RelationBelow
	}
}
