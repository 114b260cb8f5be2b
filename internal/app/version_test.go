package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"--version"}, true},
		{[]string{"-version"}, true},
		{[]string{"--value", "3", "-V"}, true},
		{[]string{"--value", "3"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HasVersionFlag(tt.args), "args %v", tt.args)
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	PrintVersion(&out)
	assert.Contains(t, out.String(), "numlist "+Version)
	assert.Contains(t, out.String(), "commit:")
}
