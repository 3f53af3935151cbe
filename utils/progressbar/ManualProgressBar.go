// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ManualProgressBar implement progress bar functionality that must
// be manually managed. That is, the Display() function must be called
// whenever an updated progress bar should be printed to the screen.
//
// ManualProgressBar does not use concurrency.
type ManualProgressBar struct {
	out             io.Writer
	width           float64
	maxProgress     float64
	currentProgress float64
	status          string
	bar             strings.Builder
	startTime       time.Time
}

// NewManualProgressBar returns a new ManualProgressBar which writes to
// out. If width is 0, only the progress counter and status are
// displayed.
func NewManualProgressBar(out io.Writer, width, max int) *ManualProgressBar {
	return &ManualProgressBar{
		out:             out,
		width:           float64(width),
		maxProgress:     float64(max),
		currentProgress: 0,
		startTime:       time.Now(),
	}
}

// Increment increments the interal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ManualProgressBar) Increment() {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}
}

// SetStatus sets a message displayed after the progress counter
func (p *ManualProgressBar) SetStatus(status string) {
	p.status = status
}

// String returns the current progress line
func (p *ManualProgressBar) String() string {
	p.bar.Reset()

	if p.width > 0 {
		p.bar.WriteString("|")
		currentProg := p.currentProgress / p.maxProgress * p.width
		for i := 0.0; i < currentProg; i++ {
			p.bar.WriteString("█")
		}
		for i := currentProg; i < p.width; i++ {
			p.bar.WriteString(" ")
		}
		p.bar.WriteString("| ")
	}

	p.bar.WriteString(fmt.Sprintf("Episode %v/%v", p.currentProgress,
		p.maxProgress))
	if p.status != "" {
		p.bar.WriteString(" || " + p.status)
	}
	p.bar.WriteString(fmt.Sprintf(" [elapsed: %v]",
		time.Since(p.startTime).Truncate(time.Second)))

	return p.bar.String()
}

// Display overwrites the current terminal line with the progress bar
func (p *ManualProgressBar) Display() {
	fmt.Fprintf(p.out, "\r\033[K%v", p.String())
}

// Done moves the terminal to the line after the progress bar
func (p *ManualProgressBar) Done() {
	fmt.Fprintln(p.out)
}
