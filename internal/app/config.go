package app

// Config carries the run parameters shared by the front ends.
type Config struct {
	Width         int
	Height        int
	Probability   float64
	Scale         int
	TPS           int
	TicksPerFrame int
	Seed          int64
}

// NewConfig returns a Config populated with the windowed defaults.
func NewConfig() *Config {
	return &Config{
		Width:         256,
		Height:        256,
		Probability:   0.1,
		Scale:         3,
		TPS:           60,
		TicksPerFrame: 1,
		Seed:          42,
	}
}
