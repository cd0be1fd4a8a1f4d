package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resume-cli/internal/document"
	"resume-cli/internal/model"
	"resume-cli/internal/tui"
)

const sampleDoc = `{
  "name": "Ada Lovelace",
  "headline": "Analyst",
  "education": [null],
  "projects": [
    {"id": 0, "title": "A", "detailsList": [], "formType": "projects"},
    {"id": 1, "title": "B", "link": "https://b.example", "detailsList": [{"id": 0, "text": "did b"}], "formType": "projects"},
    {"id": 2, "title": "C", "detailsList": [], "formType": "projects"}
  ],
  "skills": [
    {"id": 0, "title": "Languages", "detailsList": [{"id": 0, "text": "Go"}, {"id": 1, "text": "Rust"}], "formType": "skills"}
  ]
}`

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("RESUME_CONFIG_DIR", t.TempDir())
	for _, k := range []string{"RESUME_FORMAT", "RESUME_LOG_LEVEL", "RESUME_LOG_FILE", "RESUME_LOG_FORMAT", "RESUME_NAME", "RESUME_TUI_THEME", "RESUME_TUI_MD_STYLE"} {
		t.Setenv(k, "")
	}
}

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func writeSample(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func decodeResume(t *testing.T, b []byte) model.Resume {
	t.Helper()
	r, err := document.Decode(bytes.NewReader(b), document.FormatJSON)
	if err != nil {
		t.Fatalf("decode output: %v\n%s", err, string(b))
	}
	return r
}

func entryTitles(entries []model.Entry) string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Title)
	}
	return strings.Join(out, ",")
}

func TestView_Markdown(t *testing.T) {
	isolateEnv(t)
	path := writeSample(t, "cv.json", sampleDoc)

	stdout, stderr, err := runCLI(t, []string{"view", path})
	if err != nil {
		t.Fatalf("view failed: %v\n%s", err, string(stderr))
	}
	out := string(stdout)
	for _, want := range []string{"# Ada Lovelace", "## Projects", "### B", "- did b", "## Skills", "**Languages:** Go, Rust"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "### A") > strings.Index(out, "### C") {
		t.Fatalf("expected store order in output:\n%s", out)
	}
}

func TestView_Formats(t *testing.T) {
	isolateEnv(t)
	path := writeSample(t, "cv.json", sampleDoc)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "html", args: []string{"view", path, "--format", "html"}, want: "<h2>Skills</h2>"},
		{name: "text", args: []string{"view", path, "--format", "text"}, want: "Languages: Go, Rust"},
		{name: "term", args: []string{"view", path, "--format", "term", "--width", "60"}, want: "Languages"},
		{name: "yaml", args: []string{"view", path, "--format", "yaml"}, want: "name: Ada Lovelace"},
		{name: "skills section", args: []string{"view", path, "--section", "skills", "--format", "text"}, want: "Languages: Go, Rust"},
		{name: "projects section md", args: []string{"view", path, "--section", "projects"}, want: "## Projects"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := runCLI(t, tt.args)
			if err != nil {
				t.Fatalf("view failed: %v\n%s", err, string(stderr))
			}
			if !strings.Contains(string(stdout), tt.want) {
				t.Fatalf("expected %q in output:\n%s", tt.want, string(stdout))
			}
		})
	}
}

func TestView_RejectsUnknownFormat(t *testing.T) {
	isolateEnv(t)
	path := writeSample(t, "cv.json", sampleDoc)

	_, _, err := runCLI(t, []string{"view", path, "--format", "pdf"})
	if err == nil || !strings.Contains(err.Error(), "must be one of") {
		t.Fatalf("expected format error; got %v", err)
	}
}

func TestView_YAMLDocument(t *testing.T) {
	isolateEnv(t)
	path := writeSample(t, "cv.yaml", "name: Grace\nskills:\n  - id: 0\n    title: Tools\n    detailsList:\n      - {id: 0, text: COBOL}\n")

	stdout, stderr, err := runCLI(t, []string{"view", path, "--format", "text"})
	if err != nil {
		t.Fatalf("view failed: %v\n%s", err, string(stderr))
	}
	if !strings.Contains(string(stdout), "Tools: COBOL") {
		t.Fatalf("unexpected output:\n%s", string(stdout))
	}
}

func TestCheck(t *testing.T) {
	isolateEnv(t)

	good := writeSample(t, "good.json", sampleDoc)
	stdout, stderr, err := runCLI(t, []string{"check", good})
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, string(stderr))
	}
	var res struct {
		OK     bool           `json:"ok"`
		Counts map[string]int `json:"counts"`
	}
	if err := json.Unmarshal(stdout, &res); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, string(stdout))
	}
	if !res.OK || res.Counts["projects"] != 3 || res.Counts["skills"] != 1 || res.Counts["education"] != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}

	bad := writeSample(t, "bad.json", `{"projects":[{"id":1,"title":"a"},{"id":1,"title":"b"}]}`)
	stdout, stderr, err = runCLI(t, []string{"check", bad})
	if err == nil {
		t.Fatalf("expected check to fail")
	}
	if !strings.Contains(string(stderr), "1 problem") {
		t.Fatalf("unexpected stderr: %s", string(stderr))
	}
	var failed struct {
		OK       bool              `json:"ok"`
		Problems map[string]string `json:"problems"`
	}
	if err := json.Unmarshal(stdout, &failed); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, string(stdout))
	}
	if failed.OK || !strings.Contains(failed.Problems["projects.1"], "duplicate entry id 1") {
		t.Fatalf("unexpected problems: %+v", failed)
	}
}

func TestEntriesMove(t *testing.T) {
	isolateEnv(t)
	path := writeSample(t, "cv.json", sampleDoc)

	stdout, stderr, err := runCLI(t, []string{"entries", "move", path, "projects", "2", "up"})
	if err != nil {
		t.Fatalf("move failed: %v\n%s", err, string(stderr))
	}
	if got := entryTitles(decodeResume(t, stdout).Projects); got != "A,C,B" {
		t.Fatalf("after move up: %s", got)
	}

	// First entry cannot move up; the document is unchanged.
	stdout, _, err = runCLI(t, []string{"entries", "move", path, "projects", "0", "up"})
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if got := entryTitles(decodeResume(t, stdout).Projects); got != "A,B,C" {
		t.Fatalf("boundary move changed order: %s", got)
	}

	stdout, _, err = runCLI(t, []string{"entries", "move", path, "projects", "0", "down", "--write"})
	if err != nil {
		t.Fatalf("move --write failed: %v", err)
	}
	var res struct {
		Moved bool  `json:"moved"`
		Order []int `json:"order"`
	}
	if err := json.Unmarshal(stdout, &res); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, string(stdout))
	}
	if !res.Moved || len(res.Order) != 3 || res.Order[0] != 1 || res.Order[1] != 0 {
		t.Fatalf("unexpected move result: %+v", res)
	}
	saved, err := document.Load(path, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := entryTitles(saved.Projects); got != "B,A,C" {
		t.Fatalf("saved order: %s", got)
	}

	_, _, err = runCLI(t, []string{"entries", "move", path, "projects", "9", "up"})
	if err == nil || !strings.Contains(err.Error(), "entry not found: 9") {
		t.Fatalf("expected not found; got %v", err)
	}
	_, _, err = runCLI(t, []string{"entries", "move", path, "projects", "0", "sideways"})
	if err == nil {
		t.Fatalf("expected direction error")
	}
}

func TestEntriesAddAndEdit(t *testing.T) {
	isolateEnv(t)
	path := writeSample(t, "cv.json", sampleDoc)

	stdout, stderr, err := runCLI(t, []string{"entries", "add", path, "skills", "--title", "Tools", "--link", "https://x", "--detail", "git", "--detail", "make"})
	if err != nil {
		t.Fatalf("add failed: %v\n%s", err, string(stderr))
	}
	r := decodeResume(t, stdout)
	if len(r.Skills) != 2 {
		t.Fatalf("expected 2 skills; got %d", len(r.Skills))
	}
	added := r.Skills[1]
	if added.ID != 1 || added.Title != "Tools" || added.Link != "" || len(added.Details) != 2 || added.Details[1].Text != "make" {
		t.Fatalf("unexpected added entry: %+v", added)
	}

	stdout, stderr, err = runCLI(t, []string{"entries", "edit", path, "projects", "1", "--title", "B2", "--detail", "more"})
	if err != nil {
		t.Fatalf("edit failed: %v\n%s", err, string(stderr))
	}
	r = decodeResume(t, stdout)
	if got := entryTitles(r.Projects); got != "A,B2,C" {
		t.Fatalf("edit moved or lost entries: %s", got)
	}
	b := r.Projects[1]
	if b.ID != 1 || b.Link != "https://b.example" || len(b.Details) != 2 || b.Details[1] != (model.Detail{ID: 1, Text: "more"}) {
		t.Fatalf("unexpected edited entry: %+v", b)
	}

	stdout, _, err = runCLI(t, []string{"entries", "list", path, "skills"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var listed []model.Entry
	if err := json.Unmarshal(stdout, &listed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(listed) != 1 || listed[0].Title != "Languages" {
		t.Fatalf("list should reflect the file, not earlier runs: %+v", listed)
	}
}

func TestEducationAdd(t *testing.T) {
	isolateEnv(t)
	path := writeSample(t, "cv.json", sampleDoc)

	stdout, stderr, err := runCLI(t, []string{"education", "add", path, "--school", "Uni", "--study", "CS", "--from", "2019-09", "--to", "2023-06"})
	if err != nil {
		t.Fatalf("education add failed: %v\n%s", err, string(stderr))
	}
	r := decodeResume(t, stdout)
	if len(r.Education) != 1 || r.Education[0].Empty() {
		t.Fatalf("expected the empty slot filled; got %+v", r.Education)
	}
	want := model.Education{ID: 1, SchoolName: "Uni", TitleOfStudy: "CS", YearFrom: "Sep 2019", YearTo: "Jun 2023"}
	if *r.Education[0].Entry != want {
		t.Fatalf("unexpected education: %+v", *r.Education[0].Entry)
	}

	_, _, err = runCLI(t, []string{"education", "add", path, "--from", "Sept 2019"})
	if err == nil || !strings.Contains(err.Error(), "--from") {
		t.Fatalf("expected --from error; got %v", err)
	}
}

func TestEducationAdd_WriteThenCheck(t *testing.T) {
	isolateEnv(t)
	path := writeSample(t, "cv.json", `{"education":[{"id":1,"schoolName":"A","titleOfStudy":""},{"id":2,"schoolName":"B","titleOfStudy":""}],"projects":[],"skills":[]}`)

	if _, stderr, err := runCLI(t, []string{"education", "add", path, "--school", "C", "--write"}); err != nil {
		t.Fatalf("education add failed: %v\n%s", err, string(stderr))
	}
	stdout, stderr, err := runCLI(t, []string{"check", path})
	if err != nil {
		t.Fatalf("check after write failed: %v\n%s%s", err, string(stdout), string(stderr))
	}
	if !strings.Contains(string(stdout), `"education":3`) {
		t.Fatalf("expected three education entries; got %s", string(stdout))
	}
}

func TestEdit_SeedsAndEmits(t *testing.T) {
	isolateEnv(t)
	path := writeSample(t, "cv.yaml", "name: Ada\nskills:\n  - {id: 4, title: Langs, detailsList: [{id: 0, text: Go}]}\n")
	out := filepath.Join(t.TempDir(), "out.json")

	var seen *model.Resume
	prev := runTUI
	runTUI = func(r *model.Resume, opts tui.Options) error {
		seen = r
		if opts.Theme != "auto" {
			t.Errorf("expected default theme auto; got %q", opts.Theme)
		}
		r.Headline = "Edited"
		return nil
	}
	t.Cleanup(func() { runTUI = prev })

	stdout, stderr, err := runCLI(t, []string{"edit", path, "--emit", "md", "--out", out})
	if err != nil {
		t.Fatalf("edit failed: %v\n%s", err, string(stderr))
	}
	if seen == nil || seen.Name != "Ada" || len(seen.Skills) != 1 {
		t.Fatalf("editor not seeded from document: %+v", seen)
	}
	if !strings.Contains(string(stdout), "Edited") || !strings.Contains(string(stdout), "**Langs:** Go") {
		t.Fatalf("unexpected emitted markdown:\n%s", string(stdout))
	}
	saved, err := document.Load(out, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if saved.Headline != "Edited" {
		t.Fatalf("expected saved headline; got %+v", saved)
	}

	_, _, err = runCLI(t, []string{"edit", "--emit", "pdf"})
	if err == nil {
		t.Fatalf("expected --emit error")
	}
}

func TestRootWithoutArgsOpensEditor(t *testing.T) {
	isolateEnv(t)
	t.Setenv("RESUME_NAME", "Grace")

	var seen *model.Resume
	prev := runTUI
	runTUI = func(r *model.Resume, _ tui.Options) error {
		seen = r
		return nil
	}
	t.Cleanup(func() { runTUI = prev })

	if _, stderr, err := runCLI(t, []string{}); err != nil {
		t.Fatalf("root failed: %v\n%s", err, string(stderr))
	}
	if seen == nil || seen.Name != "Grace" {
		t.Fatalf("expected a new resume for Grace; got %+v", seen)
	}
	if len(seen.Education) != 1 || !seen.Education[0].Empty() {
		t.Fatalf("expected one empty education slot; got %+v", seen.Education)
	}
}

func TestConfigSetAndShow(t *testing.T) {
	isolateEnv(t)

	if _, stderr, err := runCLI(t, []string{"config", "set", "theme", "dark"}); err != nil {
		t.Fatalf("config set failed: %v\n%s", err, string(stderr))
	}
	stdout, _, err := runCLI(t, []string{"config", "show", "--format", "yaml"})
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(string(stdout), "theme: dark") {
		t.Fatalf("unexpected config:\n%s", string(stdout))
	}

	if _, _, err := runCLI(t, []string{"config", "set", "theme", "neon"}); err == nil {
		t.Fatalf("expected invalid theme error")
	}
}

func TestLogLevelFlagValidated(t *testing.T) {
	isolateEnv(t)
	t.Setenv("RESUME_LOG_FILE", filepath.Join(t.TempDir(), "resume.log"))
	path := writeSample(t, "cv.json", sampleDoc)

	if _, _, err := runCLI(t, []string{"--log-level", "loud", "check", path}); err == nil {
		t.Fatalf("expected invalid log level error")
	}
	if _, _, err := runCLI(t, []string{"--log-level", "debug", "entries", "move", path, "projects", "0", "up"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := os.ReadFile(os.Getenv("RESUME_LOG_FILE"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "move up: no-op") {
		t.Fatalf("expected the boundary no-op in the debug log:\n%s", string(b))
	}
}

func TestDocs(t *testing.T) {
	isolateEnv(t)

	stdout, _, err := runCLI(t, []string{"docs"})
	if err != nil {
		t.Fatalf("docs failed: %v", err)
	}
	if !strings.Contains(string(stdout), `"document"`) {
		t.Fatalf("expected topic list; got %s", string(stdout))
	}

	stdout, _, err = runCLI(t, []string{"docs", "document"})
	if err != nil {
		t.Fatalf("docs document failed: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "# Resume documents") {
		t.Fatalf("expected raw markdown off a terminal; got %q", string(stdout))
	}

	if _, _, err := runCLI(t, []string{"docs", "nope"}); err == nil {
		t.Fatalf("expected unknown topic error")
	}
}
