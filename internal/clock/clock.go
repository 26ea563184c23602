package clock

import (
	"time"

	"github.com/WhiteWolfWCY/Trimly/internal/timezone"
)

// Clock abstracts "now" so past-date checks and the sweep are testable.
type Clock interface {
	Now() time.Time
}

type Real struct{}

func (Real) Now() time.Time {
	return timezone.Now()
}

// Fixed always returns the same instant; test helper.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
