package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectViewArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"resume"},
			want: []string{"resume"},
		},
		{
			name: "document first token",
			in:   []string{"resume", "cv.json"},
			want: []string{"resume", "view", "cv.json"},
		},
		{
			name: "yaml document, any case",
			in:   []string{"resume", "CV.YML"},
			want: []string{"resume", "view", "CV.YML"},
		},
		{
			name: "document after value flag",
			in:   []string{"resume", "--format", "html", "cv.yaml"},
			want: []string{"resume", "--format", "html", "view", "cv.yaml"},
		},
		{
			name: "document after equals flag",
			in:   []string{"resume", "--log-level=debug", "cv.json"},
			want: []string{"resume", "--log-level=debug", "view", "cv.json"},
		},
		{
			name: "document after bool flag",
			in:   []string{"resume", "--pretty", "cv.json"},
			want: []string{"resume", "--pretty", "view", "cv.json"},
		},
		{
			name: "document after double dash",
			in:   []string{"resume", "--", "cv.json"},
			want: []string{"resume", "--", "view", "cv.json"},
		},
		{
			name: "subcommand not rewritten",
			in:   []string{"resume", "edit", "cv.json"},
			want: []string{"resume", "edit", "cv.json"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"resume", "cv.pdf"},
			want: []string{"resume", "cv.pdf"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectViewArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectViewArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
