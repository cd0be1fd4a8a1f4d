package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

type FormType string

const (
	FormTypeSkills   FormType = "skills"
	FormTypeProjects FormType = "projects"
)

// FormTypes lists every supported entry shape, in the order sections are shown.
func FormTypes() []FormType {
	return []FormType{FormTypeProjects, FormTypeSkills}
}

func ParseFormType(s string) (FormType, error) {
	switch FormType(strings.ToLower(strings.TrimSpace(s))) {
	case FormTypeSkills:
		return FormTypeSkills, nil
	case FormTypeProjects:
		return FormTypeProjects, nil
	default:
		return "", fmt.Errorf("invalid form type: %q (expected skills|projects)", s)
	}
}

// Label is the section heading shown in editors.
func (f FormType) Label() string {
	if f == FormTypeSkills {
		return "Skills"
	}
	return "Projects"
}

// TitleLabel names the title field for this shape.
func (f FormType) TitleLabel() string {
	if f == FormTypeSkills {
		return "Skill Category"
	}
	return "Project Title"
}

// HasLink reports whether the link field is meaningful for this shape.
func (f FormType) HasLink() bool {
	return f != FormTypeSkills
}

type Detail struct {
	ID   int    `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// Entry is one committed item of a skills or projects section.
type Entry struct {
	ID       int      `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Link     string   `json:"link,omitempty" yaml:"link,omitempty"`
	Details  []Detail `json:"detailsList" yaml:"detailsList"`
	FormType FormType `json:"formType" yaml:"formType"`
}

type Education struct {
	ID           int    `json:"id" yaml:"id"`
	SchoolName   string `json:"schoolName" yaml:"schoolName"`
	TitleOfStudy string `json:"titleOfStudy" yaml:"titleOfStudy"`
	YearFrom     string `json:"yearFrom,omitempty" yaml:"yearFrom,omitempty"`
	YearTo       string `json:"yearTo,omitempty" yaml:"yearTo,omitempty"`
}

// EducationSlot is either an empty placeholder or a populated education entry.
// A nil Entry means the slot is empty. On the wire an empty slot is null.
type EducationSlot struct {
	Entry *Education
}

func EmptyEducationSlot() EducationSlot { return EducationSlot{} }

func PopulatedEducationSlot(e Education) EducationSlot { return EducationSlot{Entry: &e} }

func (s EducationSlot) Empty() bool { return s.Entry == nil }

func (s EducationSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Entry)
}

func (s *EducationSlot) UnmarshalJSON(b []byte) error {
	var e *Education
	if err := json.Unmarshal(b, &e); err != nil {
		return err
	}
	s.Entry = e
	return nil
}

func (s EducationSlot) MarshalYAML() (any, error) {
	return s.Entry, nil
}

type Resume struct {
	Name      string          `json:"name,omitempty" yaml:"name,omitempty"`
	Headline  string          `json:"headline,omitempty" yaml:"headline,omitempty"`
	Education []EducationSlot `json:"education,omitempty" yaml:"education,omitempty"`
	Projects  []Entry         `json:"projects,omitempty" yaml:"projects,omitempty"`
	Skills    []Entry         `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// Section returns the entries stored for a form type.
func (r *Resume) Section(f FormType) []Entry {
	if f == FormTypeSkills {
		return r.Skills
	}
	return r.Projects
}

func (r *Resume) SetSection(f FormType, entries []Entry) {
	if f == FormTypeSkills {
		r.Skills = entries
		return
	}
	r.Projects = entries
}

// PopulatedEducation returns the non-placeholder education entries in slot order.
func (r *Resume) PopulatedEducation() []Education {
	out := make([]Education, 0, len(r.Education))
	for _, s := range r.Education {
		if s.Empty() {
			continue
		}
		out = append(out, *s.Entry)
	}
	return out
}
