package container

import "time"

// Health states reported by container inspect.
const (
	NoHealthcheck = "none"
	Starting      = "starting"
	Healthy       = "healthy"
	Unhealthy     = "unhealthy"
)

// HealthConfig describes the health check the engine runs inside a
// container. Durations travel as nanoseconds on the wire; zero means the
// daemon default and values under a second are rejected by the daemon.
type HealthConfig struct {
	// Test is the check to run. An empty slice inherits the image's check,
	// ["NONE"] disables it, ["CMD", ...] execs directly and
	// ["CMD-SHELL", ...] runs through the shell.
	Test []string `json:"Test,omitempty"`

	Interval    time.Duration `json:"Interval,omitempty"`
	Timeout     time.Duration `json:"Timeout,omitempty"`
	StartPeriod time.Duration `json:"StartPeriod,omitempty"`

	// Retries is how many consecutive failures mark the container
	// unhealthy. Zero means the daemon default.
	Retries int `json:"Retries,omitempty"`
}

// NewHealthConfig returns a health check running cmd through the shell.
func NewHealthConfig(cmd string) *HealthConfig {
	return &HealthConfig{Test: []string{"CMD-SHELL", cmd}}
}

// WithInterval sets the time between checks.
func (hc *HealthConfig) WithInterval(d time.Duration) *HealthConfig {
	hc.Interval = d
	return hc
}

// WithTimeout sets how long a single check may run before it counts as
// failed.
func (hc *HealthConfig) WithTimeout(d time.Duration) *HealthConfig {
	hc.Timeout = d
	return hc
}

// WithStartPeriod sets the grace period before failures count against the
// retry budget.
func (hc *HealthConfig) WithStartPeriod(d time.Duration) *HealthConfig {
	hc.StartPeriod = d
	return hc
}

// WithRetries sets how many consecutive failures mark the container
// unhealthy.
func (hc *HealthConfig) WithRetries(n int) *HealthConfig {
	hc.Retries = n
	return hc
}

// Health is the live health state of a container as reported by inspect.
type Health struct {
	Status        string              `json:"Status"`
	FailingStreak int                 `json:"FailingStreak"`
	Log           []HealthcheckResult `json:"Log"`
}

// HealthcheckResult is one recorded run of the health check.
type HealthcheckResult struct {
	Start    time.Time `json:"Start"`
	End      time.Time `json:"End"`
	ExitCode int       `json:"ExitCode"`
	Output   string    `json:"Output"`
}
