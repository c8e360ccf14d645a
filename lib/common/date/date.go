// Copyright 2021 Silvio Böhler
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package date

import (
	"time"
)

// Interval is a calendar interval.
type Interval int

const (
	// Daily is a daily interval.
	Daily Interval = iota
	// Weekly is a weekly interval.
	Weekly
	// Monthly is a monthly interval.
	Monthly
	// Quarterly is a quarterly interval.
	Quarterly
	// Yearly is a yearly interval.
	Yearly
)

func (p Interval) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	}
	return ""
}

// Date creates a new date in UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day truncates a timestamp to its calendar date.
func Day(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// StartOf returns the first date in the given interval which
// contains the receiver.
func StartOf(d time.Time, p Interval) time.Time {
	switch p {
	case Daily:
		return Day(d)
	case Weekly:
		x := (int(d.Weekday()) + 6) % 7
		return Day(d).AddDate(0, 0, -x)
	case Monthly:
		return Date(d.Year(), d.Month(), 1)
	case Quarterly:
		return Date(d.Year(), ((d.Month()-1)/3*3)+1, 1)
	case Yearly:
		return Date(d.Year(), 1, 1)
	}
	return Day(d)
}

// EndOf returns the last date in the given interval that contains
// the receiver.
func EndOf(d time.Time, p Interval) time.Time {
	switch p {
	case Daily:
		return Day(d)
	case Weekly:
		x := (7 - int(d.Weekday())) % 7
		return Day(d).AddDate(0, 0, x)
	case Monthly:
		return StartOf(d, Monthly).AddDate(0, 1, -1)
	case Quarterly:
		return StartOf(d, Quarterly).AddDate(0, 3, 0).AddDate(0, 0, -1)
	case Yearly:
		return Date(d.Year(), 12, 31)
	}
	return Day(d)
}

// Today returns today's date.
func Today() time.Time {
	now := time.Now().Local()
	return Date(now.Year(), now.Month(), now.Day())
}

// Period is an inclusive date range.
type Period struct {
	Start, End time.Time
}

// Clip restricts the period to the bounds of p2.
func (p Period) Clip(p2 Period) Period {
	if p2.Start.After(p.Start) {
		p.Start = p2.Start
	}
	if p2.End.Before(p.End) {
		p.End = p2.End
	}
	return p
}

// Contains reports whether t lies within the period. Both bounds
// are inclusive.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Empty reports whether the period contains no dates at all.
func (p Period) Empty() bool {
	return p.Start.After(p.End)
}

// OrDefault fills zero bounds from the given fallback period.
func (p Period) OrDefault(def Period) Period {
	if p.Start.IsZero() {
		p.Start = def.Start
	}
	if p.End.IsZero() {
		p.End = def.End
	}
	return p
}

// Extend widens the period to include t.
func (p Period) Extend(t time.Time) Period {
	if p.Start.IsZero() || t.Before(p.Start) {
		p.Start = t
	}
	if p.End.IsZero() || t.After(p.End) {
		p.End = t
	}
	return p
}
