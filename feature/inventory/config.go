package inventory

import "time"

// Config holds scheduling settings for the sync daemon.
type Config struct {
	// Interval is the delay in seconds between the end of one cycle and the
	// start of the next. Slow cycles lengthen the effective polling period;
	// runs never overlap.
	Interval int `mapstructure:"interval" default:"300"`
	// RunOnStart triggers a cycle immediately when the daemon starts instead
	// of waiting for the first interval.
	RunOnStart bool `mapstructure:"run_on_start" default:"true"`
}

// IntervalDuration returns the configured interval as a duration.
func (c Config) IntervalDuration() time.Duration {
	return time.Duration(c.Interval) * time.Second
}
