package progressbar

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManualProgressBar(t *testing.T) {
	var out bytes.Buffer
	p := NewManualProgressBar(&out, 10, 4)

	p.Increment()
	p.Increment()
	p.SetStatus("Best average reward 8.12")
	p.Display()

	line := out.String()
	assert.Contains(t, line, "Episode 2/4 || Best average reward 8.12")
	assert.Equal(t, 5, strings.Count(line, "█"))

	// Progress never exceeds the maximum
	for i := 0; i < 10; i++ {
		p.Increment()
	}
	assert.Contains(t, p.String(), "Episode 4/4")
}

func TestManualProgressBarNoWidth(t *testing.T) {
	p := NewManualProgressBar(&bytes.Buffer{}, 0, 100)
	p.Increment()
	assert.True(t, strings.HasPrefix(p.String(), "Episode 1/100"))
}
