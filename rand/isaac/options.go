package isaac

// Option configures a Generator.
type Option func(*config)

type config struct {
	mixer Mixer
}

func defaultConfig() config {
	return config{}
}

// WithMixer replaces the ISAAC batch function. A nil mixer is ignored.
func WithMixer(m Mixer) Option {
	return func(cfg *config) {
		if m != nil {
			cfg.mixer = m
		}
	}
}
