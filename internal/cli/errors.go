package cli

import "fmt"

type notFoundError struct {
	kind string
	id   int
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %d", e.kind, e.id)
}

func errNotFound(kind string, id int) error {
	return notFoundError{kind: kind, id: id}
}

type invalidDocumentError struct {
	path     string
	problems int
}

func (e invalidDocumentError) Error() string {
	if e.problems == 1 {
		return fmt.Sprintf("%s: 1 problem", e.path)
	}
	return fmt.Sprintf("%s: %d problems", e.path, e.problems)
}
