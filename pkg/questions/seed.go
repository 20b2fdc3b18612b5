package questions

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadSeed decodes a YAML list of questions. Missing created timestamps are
// filled with now; ids must be positive and unique.
func LoadSeed(r io.Reader, now time.Time) ([]Question, error) {
	var qs []Question
	if err := yaml.NewDecoder(r).Decode(&qs); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidSeed, err)
	}

	seen := make(map[int]bool, len(qs))
	for i := range qs {
		q := &qs[i]
		if q.ID <= 0 || seen[q.ID] {
			return nil, fmt.Errorf("%w: question %d has invalid or duplicate id %d", ErrInvalidSeed, i, q.ID)
		}
		seen[q.ID] = true
		if q.Created.IsZero() {
			q.Created = now
		}
		for j := range q.Answers {
			if q.Answers[j].Created.IsZero() {
				q.Answers[j].Created = now
			}
		}
	}
	return qs, nil
}

// LoadSeedFile reads a YAML seed from path.
func LoadSeedFile(path string, now time.Time) ([]Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidSeed, err)
	}
	defer f.Close()
	return LoadSeed(f, now)
}

// defaultSeed is the data set the client starts with.
func defaultSeed(now time.Time) []Question {
	return []Question{
		{
			ID:       1,
			Title:    "Why should I learn TypeScript?",
			Content:  "TypeScript seems to be getting popular so I wondered whether it is worth my time learning it? What benefits does it give over JavaScript?",
			UserName: "Bob",
			Created:  now,
			Answers: []Answer{
				{ID: 1, Content: "To catch problems earlier speeding up your developments", UserName: "Jane", Created: now},
				{ID: 2, Content: "So, that you can use the JavaScript features of tomorrow, today", UserName: "Fred", Created: now},
			},
		},
		{
			ID:       2,
			Title:    "Which state management tool should I use?",
			Content:  "There seem to be a fair few state management tools around for React - React, Unstated, ... Which one should I use?",
			UserName: "Bob",
			Created:  now,
		},
		{
			ID:       3,
			Title:    "Why should I learn Civil 3D?",
			Content:  "Civil 3d seems to be getting popular among civil engineers.",
			UserName: "Eric",
			Created:  now,
			Answers: []Answer{
				{ID: 1, Content: "Its simple to use and provides alot of tools for drafting and designing", UserName: "Ben", Created: now},
				{ID: 2, Content: "Civil 3d provides fine detail on road work.", UserName: "Ted", Created: now},
			},
		},
		{
			ID:       4,
			Title:    "Which .Net framework should I learn?",
			Content:  "Should I learn .Net Core 3.1 or learn .Net 6",
			UserName: "Tom",
			Created:  now,
		},
	}
}
