package main

import (
	"time"

	"github.com/dmitrymomot/qanda/modules/qa"
	"github.com/dmitrymomot/qanda/pkg/httpserver"
	"github.com/dmitrymomot/qanda/pkg/questions"
)

type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"qanda"`

	// QuestionsLatency applies one delay to every call. Unset keeps
	// questions.DefaultLatency.
	QuestionsLatency  time.Duration `env:"QUESTIONS_LATENCY"`
	QuestionsSeedFile string        `env:"QUESTIONS_SEED_FILE"`

	HTTP httpserver.Config
	QA   qa.Config
}

func (c appConfig) questionsLatency() questions.Latency {
	if c.QuestionsLatency <= 0 {
		return questions.DefaultLatency
	}
	return questions.UniformLatency(c.QuestionsLatency)
}
