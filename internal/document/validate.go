package document

import (
	"errors"
	"fmt"
	"strconv"

	"resume-cli/internal/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks the structural invariants a session relies on: entries sit in the
// section matching their form type, entry ids are unique per section, and detail ids
// are unique per entry. Blank titles and links are allowed.
func Validate(r model.Resume) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Projects, validation.By(sectionRule(model.FormTypeProjects))),
		validation.Field(&r.Skills, validation.By(sectionRule(model.FormTypeSkills))),
		validation.Field(&r.Education, validation.By(educationRule)),
	)
}

func sectionRule(f model.FormType) validation.RuleFunc {
	return func(value any) error {
		entries, _ := value.([]model.Entry)
		errs := validation.Errors{}
		seen := map[int]bool{}
		for i, e := range entries {
			e := e
			err := validation.ValidateStruct(&e,
				validation.Field(&e.ID, validation.Min(0)),
				validation.Field(&e.FormType, validation.Required, validation.In(f).Error("must be "+string(f)+" in this section")),
				validation.Field(&e.Details, validation.By(uniqueDetailIDs)),
			)
			if err == nil && seen[e.ID] {
				err = fmt.Errorf("duplicate entry id %d", e.ID)
			}
			seen[e.ID] = true
			if err != nil {
				errs[strconv.Itoa(i)] = err
			}
		}
		return errs.Filter()
	}
}

func uniqueDetailIDs(value any) error {
	details, _ := value.([]model.Detail)
	seen := map[int]bool{}
	for _, d := range details {
		if seen[d.ID] {
			return fmt.Errorf("duplicate detail id %d", d.ID)
		}
		seen[d.ID] = true
	}
	return nil
}

func educationRule(value any) error {
	slots, _ := value.([]model.EducationSlot)
	seen := map[int]bool{}
	for i, s := range slots {
		if s.Empty() {
			continue
		}
		if seen[s.Entry.ID] {
			return validation.Errors{strconv.Itoa(i): fmt.Errorf("duplicate education id %d", s.Entry.ID)}
		}
		seen[s.Entry.ID] = true
	}
	return nil
}

// IsValidationError reports whether err came from Validate rather than from decoding.
func IsValidationError(err error) bool {
	var ve validation.Errors
	return errors.As(err, &ve)
}

// Problems flattens validation errors into field path -> message, e.g.
// "projects.1.formType" -> "must be projects in this section". Other errors map to "".
func Problems(err error) map[string]string {
	out := map[string]string{}
	var ve validation.Errors
	if !errors.As(err, &ve) {
		out[""] = err.Error()
		return out
	}
	flattenProblems(out, "", ve)
	return out
}

func flattenProblems(out map[string]string, prefix string, ve validation.Errors) {
	for k, e := range ve {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		var nested validation.Errors
		if errors.As(e, &nested) {
			flattenProblems(out, key, nested)
			continue
		}
		out[key] = e.Error()
	}
}
