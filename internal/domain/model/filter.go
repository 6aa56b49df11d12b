package model

import "time"

// MediaFilter is the transient query shape built from user filter input.
// Nil timestamps mean the bound is not set.
type MediaFilter struct {
	Tags    []string
	StartAt *time.Time
	EndAt   *time.Time
}

func (f MediaFilter) Empty() bool {
	return len(f.Tags) == 0 && f.StartAt == nil && f.EndAt == nil
}
