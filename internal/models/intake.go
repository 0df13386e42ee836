package models

import "time"

// IntakeStep names one field collected during conversational intake, in the
// order the collector walks them.
type IntakeStep string

const (
	StepTitle        IntakeStep = "title"
	StepLanguage     IntakeStep = "language"
	StepStudentNames IntakeStep = "student_names"
	StepProfessor    IntakeStep = "professor"
	StepUniversity   IntakeStep = "university"
	StepCollege      IntakeStep = "college"
	StepDepartment   IntakeStep = "department"
	StepAcademicYear IntakeStep = "academic_year"
	StepPages        IntakeStep = "pages"
	StepStyle        IntakeStep = "style"
	StepDone         IntakeStep = "done"
)

// IntakeOrder is the canonical step sequence.
var IntakeOrder = []IntakeStep{
	StepTitle,
	StepLanguage,
	StepStudentNames,
	StepProfessor,
	StepUniversity,
	StepCollege,
	StepDepartment,
	StepAcademicYear,
	StepPages,
	StepStyle,
}

// IntakeSession tracks one user's progress through the intake steps. The
// report builder is only ever invoked after Step reaches StepDone.
type IntakeSession struct {
	ID        string            `json:"id"`
	Step      IntakeStep        `json:"step"`
	Fields    map[string]string `json:"fields"`
	JobID     *string           `json:"job_id,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Complete reports whether every field has been collected.
func (s *IntakeSession) Complete() bool {
	return s.Step == StepDone
}
