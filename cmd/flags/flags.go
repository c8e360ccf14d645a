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

package flags

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/shopdash/shopdash/lib/common/date"
)

// DateFlag manages a flag to determine a date.
type DateFlag time.Time

var _ pflag.Value = (*DateFlag)(nil)

func (tf DateFlag) String() string {
	return tf.Value().String()
}

// Set implements pflag.Value.
func (tf *DateFlag) Set(v string) error {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return err
	}
	*tf = (DateFlag)(t)
	return nil
}

// Type implements pflag.Value.
func (tf DateFlag) Type() string {
	return "YYYY-MM-DD"
}

// Value returns the flag value.
func (tf DateFlag) Value() time.Time {
	return time.Time(tf)
}

// PeriodFlags manages the --from / --to pair. Unset bounds stay zero
// so that the caller can fall back to the dataset's full span.
type PeriodFlags struct {
	from, to DateFlag
}

// Setup configures the flags.
func (pf *PeriodFlags) Setup(cmd *cobra.Command) {
	cmd.Flags().Var(&pf.from, "from", "start of the date range (inclusive)")
	cmd.Flags().Var(&pf.to, "to", "end of the date range (inclusive)")
}

// Value returns the period.
func (pf *PeriodFlags) Value() date.Period {
	return date.Period{Start: pf.from.Value(), End: pf.to.Value()}
}

// IntervalFlags manages multiple flags to determine a time interval.
type IntervalFlags struct {
	def   date.Interval
	flags [5]bool
}

// Setup configures the flags.
func (pf *IntervalFlags) Setup(cmd *cobra.Command, def date.Interval) {
	cmd.Flags().BoolVar(&pf.flags[date.Daily], "days", false, "days")
	cmd.Flags().BoolVar(&pf.flags[date.Weekly], "weeks", false, "weeks")
	cmd.Flags().BoolVar(&pf.flags[date.Monthly], "months", false, "months")
	cmd.Flags().BoolVar(&pf.flags[date.Quarterly], "quarters", false, "quarters")
	cmd.Flags().BoolVar(&pf.flags[date.Yearly], "years", false, "years")
	cmd.MarkFlagsMutuallyExclusive("days", "weeks", "months", "quarters", "years")
	pf.def = def
}

// Value returns the interval.
func (pf IntervalFlags) Value() date.Interval {
	for i, val := range pf.flags {
		if val {
			return date.Interval(i)
		}
	}
	return pf.def
}
