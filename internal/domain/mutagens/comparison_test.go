package mutagens

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "synmut.dev/pkg/synmut/internal/model"
)

func TestAssignmentToEquality(t *testing.T) {
	tests := []struct {
		name string
		in   m.Snippet
		want m.Snippet
	}{
		{"declaration", "const x = 5;", "const x == 5;"},
		{"no spaces", "x=1", "x==1"},
		{"chained", "a = b = c;", "a == b == c;"},
		{"loop header", "for (let i = 0; i < 10; i++) { }", "for (let i == 0; i < 10; i++) { }"},
		{"equality untouched", "a == b", "a == b"},
		{"strict equality untouched", "a === b", "a === b"},
		{"inequality untouched", "a !== b", "a !== b"},
		{"comparison untouched", "a <= b && c >= d", "a <= b && c >= d"},
		{"arrow untouched", "const f = () => 1;", "const f == () => 1;"},
		{"no assignment", "function test() { return true; }", "function test() { return true; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssignmentToEquality.Apply(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in != tt.want, AssignmentToEquality.Changes(tt.in))
		})
	}
}
