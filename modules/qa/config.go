package qa

import "time"

// Config holds the module settings, loaded from the environment.
type Config struct {
	SubmitTimeout time.Duration `env:"FORM_SUBMIT_TIMEOUT" envDefault:"10s"`
	MaxForms      int           `env:"FORM_MAX_INSTANCES" envDefault:"1000"`
	FormIdleTTL   time.Duration `env:"FORM_IDLE_TTL" envDefault:"30m"`
	// FormEventBurst is how many form events one client may send at once;
	// FormEventRate tokens are refilled per second. Zero burst disables limiting.
	FormEventBurst int `env:"FORM_EVENT_BURST" envDefault:"30"`
	FormEventRate  int `env:"FORM_EVENT_RATE" envDefault:"10"`
	// UserName is recorded as the author of posted questions and answers.
	UserName string `env:"QA_USER_NAME" envDefault:"Fred"`
}

func (c Config) withDefaults() Config {
	if c.MaxForms <= 0 {
		c.MaxForms = 1000
	}
	if c.FormEventRate == 0 {
		c.FormEventRate = 10
	}
	if c.UserName == "" {
		c.UserName = "Fred"
	}
	return c
}
