// Package editor implements the in-memory editing state behind the resume forms:
// the ordered skills/projects editor and the education editor.
package editor

import (
	"log/slog"

	"resume-cli/internal/model"
)

// Draft is the in-progress, uncommitted form state.
type Draft struct {
	Title   string
	Link    string
	Details []model.Detail
}

// Submission carries the form field values at submit time.
type Submission struct {
	Title string
	Link  string
}

// Editor is the ordered entry editor for one skills or projects section.
//
// It owns the draft, the edit cursor, the id counter and the order index; the committed
// entries belong to the EntryStore. An Editor is driven from a single event loop and is
// not safe for concurrent use.
type Editor struct {
	store    EntryStore
	formType model.FormType
	log      *slog.Logger

	draft        Draft
	nextDetailID int

	editing   bool
	editingID int

	nextID int
	order  []int
}

type Option func(*Editor)

func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// AdoptExisting indexes the entries already present in the store, in store order, and
// starts the id counter past the largest adopted id. Without it a new editor starts
// with an empty order index, like a freshly opened form.
func AdoptExisting() Option {
	return func(e *Editor) {
		for _, it := range e.store.Entries() {
			if indexOf(e.order, it.ID) < 0 {
				e.order = append(e.order, it.ID)
			}
			if it.ID >= e.nextID {
				e.nextID = it.ID + 1
			}
		}
	}
}

func New(store EntryStore, formType model.FormType, opts ...Option) *Editor {
	e := &Editor{
		store:    store,
		formType: formType,
		log:      slog.New(slog.DiscardHandler),
		order:    []int{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("section", string(formType))
	return e
}

func (e *Editor) FormType() model.FormType { return e.formType }

// Entries returns the store's current entries.
func (e *Editor) Entries() []model.Entry { return e.store.Entries() }

// Draft returns a copy of the working draft.
func (e *Editor) Draft() Draft {
	d := e.draft
	d.Details = append([]model.Detail{}, e.draft.Details...)
	return d
}

// Editing returns the id under edit, if any.
func (e *Editor) Editing() (int, bool) {
	return e.editingID, e.editing
}

// Order returns a copy of the order index.
func (e *Editor) Order() []int {
	return append([]int{}, e.order...)
}

// SetOrder replaces the order index. Row-level collaborators that remove entries use it
// to keep the index in step with the store.
func (e *Editor) SetOrder(order []int) {
	e.order = append([]int{}, order...)
}

// Ordered returns the entries permuted by the order index.
func (e *Editor) Ordered() []model.Entry {
	return SortByOrder(e.store.Entries(), e.order)
}

func (e *Editor) SetTitle(s string) { e.draft.Title = s }

func (e *Editor) SetLink(s string) { e.draft.Link = s }

// AddDetail appends a detail to the draft under the next local detail id.
func (e *Editor) AddDetail(text string) model.Detail {
	d := model.Detail{ID: e.nextDetailID, Text: text}
	e.draft.Details = append(append([]model.Detail{}, e.draft.Details...), d)
	e.nextDetailID++
	return d
}

// BeginEdit loads an existing entry into the draft and points the edit cursor at it.
func (e *Editor) BeginEdit(entry model.Entry) {
	e.draft.Title = entry.Title
	e.draft.Link = entry.Link
	e.draft.Details = append([]model.Detail{}, entry.Details...)
	// Keep detail ids unique within the loaded list.
	for _, d := range entry.Details {
		if d.ID >= e.nextDetailID {
			e.nextDetailID = d.ID + 1
		}
	}
	e.editing = true
	e.editingID = entry.ID
}

// ResetDraft clears the draft fields and the edit cursor.
func (e *Editor) ResetDraft() {
	e.draft.Title = ""
	e.draft.Link = ""
	e.draft.Details = []model.Detail{}
	e.editing = false
	e.editingID = 0
}

// Commit creates a new entry or replaces the one under edit, then resets the draft.
//
// The returned entry is the candidate that was built. changed is false only when the
// edit cursor points at an id the store no longer holds; the store contents are then
// left as they were.
func (e *Editor) Commit(sub Submission) (entry model.Entry, changed bool) {
	id := e.nextID
	if e.editing {
		id = e.editingID
	}
	link := sub.Link
	if e.formType == model.FormTypeSkills {
		link = ""
	}
	entry = model.Entry{
		ID:       id,
		Title:    sub.Title,
		Link:     link,
		Details:  append([]model.Detail{}, e.draft.Details...),
		FormType: e.formType,
	}

	cur := e.store.Entries()
	next := make([]model.Entry, 0, len(cur)+1)
	if e.editing {
		for _, it := range cur {
			if it.ID == e.editingID {
				next = append(next, entry)
				changed = true
				continue
			}
			next = append(next, it)
		}
		if !changed {
			e.log.Debug("commit: edited entry no longer in store", "id", e.editingID)
		}
	} else {
		next = append(next, cur...)
		next = append(next, entry)
		e.order = append(append([]int{}, e.order...), e.nextID)
		e.nextID++
		changed = true
	}

	e.store.SetEntries(next)
	e.log.Debug("commit", "id", id, "replace", e.editing, "changed", changed)
	e.ResetDraft()
	return entry, changed
}

// MoveUp moves the entry one position earlier in the order index and re-sorts the store.
// The first entry and entries missing from the index are left alone.
func (e *Editor) MoveUp(entry model.Entry) bool {
	pos := indexOf(e.order, entry.ID)
	if pos <= 0 {
		e.log.Debug("move up: no-op", "id", entry.ID, "pos", pos)
		return false
	}
	e.applyOrder(moveID(e.order, pos, pos-1))
	return true
}

// MoveDown moves the entry one position later in the order index and re-sorts the store.
// The last entry and entries missing from the index are left alone.
func (e *Editor) MoveDown(entry model.Entry) bool {
	pos := indexOf(e.order, entry.ID)
	if pos < 0 || pos == len(e.order)-1 {
		e.log.Debug("move down: no-op", "id", entry.ID, "pos", pos)
		return false
	}
	e.applyOrder(moveID(e.order, pos, pos+1))
	return true
}

func (e *Editor) applyOrder(order []int) {
	e.order = order
	e.store.SetEntries(SortByOrder(e.store.Entries(), order))
}
