package editor

import "resume-cli/internal/model"

// EntryStore is the container-owned sequence of committed entries.
//
// The editor never mutates a slice returned by Entries; every change is handed back
// as a fresh slice through SetEntries.
type EntryStore interface {
	Entries() []model.Entry
	SetEntries([]model.Entry)
}

// SliceStore is an EntryStore backed by a plain slice.
type SliceStore struct {
	entries []model.Entry
}

func NewSliceStore(entries []model.Entry) *SliceStore {
	return &SliceStore{entries: entries}
}

func (s *SliceStore) Entries() []model.Entry { return s.entries }

func (s *SliceStore) SetEntries(entries []model.Entry) { s.entries = entries }

// ResumeSection exposes one skills/projects section of a resume as an EntryStore.
type ResumeSection struct {
	Resume   *model.Resume
	FormType model.FormType
}

func (s ResumeSection) Entries() []model.Entry {
	return s.Resume.Section(s.FormType)
}

func (s ResumeSection) SetEntries(entries []model.Entry) {
	s.Resume.SetSection(s.FormType, entries)
}
