package questions

import (
	"slices"
	"time"
)

// Answer is a reply to a question.
type Answer struct {
	ID       int       `yaml:"id" json:"id"`
	Content  string    `yaml:"content" json:"content"`
	UserName string    `yaml:"user_name" json:"userName"`
	Created  time.Time `yaml:"created" json:"created"`
}

// Question is a question with its answers.
type Question struct {
	ID       int       `yaml:"id" json:"id"`
	Title    string    `yaml:"title" json:"title"`
	Content  string    `yaml:"content" json:"content"`
	UserName string    `yaml:"user_name" json:"userName"`
	Created  time.Time `yaml:"created" json:"created"`
	Answers  []Answer  `yaml:"answers" json:"answers"`
}

// Answered reports whether the question has at least one answer.
func (q Question) Answered() bool { return len(q.Answers) > 0 }

func (q Question) clone() Question {
	q.Answers = slices.Clone(q.Answers)
	return q
}

// NewQuestion is the payload for PostQuestion.
type NewQuestion struct {
	Title    string
	Content  string
	UserName string
}

// NewAnswer is the payload for PostAnswer.
type NewAnswer struct {
	QuestionID int
	Content    string
	UserName   string
}

// Latency configures the artificial delay of each operation.
type Latency struct {
	List   time.Duration
	Get    time.Duration
	Search time.Duration
	Post   time.Duration
}

// DefaultLatency waits 500ms for reads and 900ms for posts.
var DefaultLatency = Latency{
	List:   500 * time.Millisecond,
	Get:    500 * time.Millisecond,
	Search: 500 * time.Millisecond,
	Post:   900 * time.Millisecond,
}

// UniformLatency uses d for every operation.
func UniformLatency(d time.Duration) Latency {
	return Latency{List: d, Get: d, Search: d, Post: d}
}
