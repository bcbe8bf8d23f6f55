package config

import "time"

// DemoConfig controls the seeded demo data and the simulated backend
// latency the in-memory adapters add to reads.
type DemoConfig struct {
	// DirectoryLatency delays identity directory lookups so the demo
	// behaves like a remote directory. Zero disables the delay.
	DirectoryLatency time.Duration `env:"DIRECTORY_LATENCY" envDefault:"150ms"`
}

// Sanitize applies guardrails to demo configuration values.
func (d *DemoConfig) Sanitize() {
	if d.DirectoryLatency < 0 {
		d.DirectoryLatency = 0
	}
}
