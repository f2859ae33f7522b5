package main

import (
	"os"

	"gopkg.in/cheggaaa/pb.v1"
)

type progress struct {
	bar *pb.ProgressBar
}

// newProgress returns a progress bar on STDERR for the given total,
// or one that shows nothing if show is false or total is unknown.
func newProgress(show bool, total int) *progress {
	if !show || total <= 0 {
		return &progress{}
	}
	bar := pb.New(total)
	bar.Output = os.Stderr
	bar.Start()
	return &progress{bar}
}

func (p *progress) Increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *progress) Add(n int) {
	if p.bar != nil {
		p.bar.Add(n)
	}
}

func (p *progress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
