package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resume-cli/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "name": "Ada Lovelace",
  "education": [null, {"id": 1, "schoolName": "Home", "titleOfStudy": "Mathematics", "yearFrom": "Jan 1830"}],
  "projects": [
    {"id": 0, "title": "Engine notes", "link": "https://example.com/notes", "detailsList": [{"id": 0, "text": "Note G"}], "formType": "projects"}
  ],
  "skills": [
    {"id": 0, "title": "Languages", "detailsList": [{"id": 0, "text": "Go"}, {"id": 1, "text": "Rust"}]}
  ]
}`

const sampleYAML = `
name: Ada Lovelace
education:
  - null
  - id: 1
    schoolName: Home
    titleOfStudy: Mathematics
projects:
  - id: 3
    title: Engine notes
    link: https://example.com/notes
    detailsList:
      - {id: 0, text: Note G}
skills:
  - id: 0
    title: Languages
    formType: skills
    detailsList:
      - {id: 0, text: Go}
`

func TestDecode_JSON(t *testing.T) {
	t.Parallel()

	r, err := Decode(strings.NewReader(sampleJSON), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", r.Name)
	require.Len(t, r.Education, 2)
	assert.True(t, r.Education[0].Empty())
	assert.Equal(t, "Home", r.Education[1].Entry.SchoolName)
	require.Len(t, r.Skills, 1)
	// Omitted form types are filled from the section.
	assert.Equal(t, model.FormTypeSkills, r.Skills[0].FormType)
	assert.Equal(t, []model.Detail{{ID: 0, Text: "Go"}, {ID: 1, Text: "Rust"}}, r.Skills[0].Details)
}

func TestDecode_YAML(t *testing.T) {
	t.Parallel()

	r, err := Decode(strings.NewReader(sampleYAML), FormatYAML)
	require.NoError(t, err)

	require.Len(t, r.Education, 2)
	assert.True(t, r.Education[0].Empty())
	assert.False(t, r.Education[1].Empty())
	require.Len(t, r.Projects, 1)
	assert.Equal(t, 3, r.Projects[0].ID)
	assert.Equal(t, model.FormTypeProjects, r.Projects[0].FormType)
	assert.Equal(t, "https://example.com/notes", r.Projects[0].Link)
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		doc        string
		validation bool
		want       string
	}{
		{
			name:       "wrong section",
			doc:        `{"skills":[{"id":0,"title":"x","formType":"projects"}]}`,
			validation: true,
			want:       "skills",
		},
		{
			name:       "unknown form type",
			doc:        `{"projects":[{"id":0,"title":"x","formType":"hobbies"}]}`,
			validation: true,
			want:       "projects",
		},
		{
			name:       "duplicate entry id",
			doc:        `{"projects":[{"id":1,"title":"a"},{"id":1,"title":"b"}]}`,
			validation: true,
			want:       "duplicate entry id 1",
		},
		{
			name:       "duplicate detail id",
			doc:        `{"skills":[{"id":0,"title":"a","detailsList":[{"id":0,"text":"x"},{"id":0,"text":"y"}]}]}`,
			validation: true,
			want:       "duplicate detail id 0",
		},
		{
			name:       "duplicate education id",
			doc:        `{"education":[{"id":2,"schoolName":"a"},{"id":2,"schoolName":"b"}]}`,
			validation: true,
			want:       "duplicate education id 2",
		},
		{
			name: "unknown field",
			doc:  `{"hobbies":[]}`,
			want: "unknown field",
		},
		{
			name: "not json",
			doc:  `name: yaml`,
			want: "parse json",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(strings.NewReader(tt.doc), FormatJSON)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, tt.validation, IsValidationError(err))
		})
	}
}

func TestDecode_BlankTitlesAllowed(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader(`{"projects":[{"id":0,"title":"","link":""}]}`), FormatJSON)
	assert.NoError(t, err)
}

func TestLoad_PicksDecoderByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yml := filepath.Join(dir, "cv.yml")
	require.NoError(t, os.WriteFile(yml, []byte(sampleYAML), 0o600))
	js := filepath.Join(dir, "cv.json")
	require.NoError(t, os.WriteFile(js, []byte(sampleJSON), 0o600))

	r1, err := Load(yml, nil)
	require.NoError(t, err)
	r2, err := Load(js, nil)
	require.NoError(t, err)
	assert.Equal(t, r1.Name, r2.Name)

	r3, err := Load("-", strings.NewReader(sampleJSON))
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", r3.Name)

	_, err = Load(filepath.Join(dir, "missing.json"), nil)
	assert.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FormatYAML, FormatForPath("a.YAML"))
	assert.Equal(t, FormatYAML, FormatForPath("a.yml"))
	assert.Equal(t, FormatJSON, FormatForPath("a.json"))
	assert.Equal(t, FormatJSON, FormatForPath("a"))
}

func TestProblems_FlattensFieldPaths(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader(`{"skills":[{"id":0,"title":"a"},{"id":0,"title":"b","formType":"projects"}]}`), FormatJSON)
	require.Error(t, err)

	got := Problems(err)
	assert.Contains(t, got, "skills.1.formType")
	assert.Contains(t, got["skills.1.formType"], "must be skills")

	plain := Problems(assert.AnError)
	assert.Equal(t, map[string]string{"": assert.AnError.Error()}, plain)
}
