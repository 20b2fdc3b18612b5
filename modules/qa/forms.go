package qa

import (
	"context"
	"errors"

	"github.com/dmitrymomot/qanda/pkg/form"
	"github.com/dmitrymomot/qanda/pkg/questions"
	"github.com/dmitrymomot/qanda/pkg/sanitizer"
	"github.com/dmitrymomot/qanda/pkg/validator"
)

// FormKind identifies which form definition an instance was built from.
type FormKind string

const (
	FormAsk    FormKind = "ask"
	FormAnswer FormKind = "answer"
)

const MsgTitleTaken = "This title is already taken"

// FieldDef describes how a field is rendered.
type FieldDef struct {
	Name      form.FieldName
	Label     string
	Multiline bool
}

// FormDef is a form definition: fields, rules, caption and feedback.
type FormDef struct {
	Kind           FormKind
	Fields         []FieldDef
	Rules          form.RuleSet
	SubmitCaption  string
	SuccessMessage string
	FailureMessage string
}

// HasField reports whether name is one of the rendered fields.
func (d FormDef) HasField(name form.FieldName) bool {
	for _, f := range d.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

var AskFormDef = FormDef{
	Kind: FormAsk,
	Fields: []FieldDef{
		{Name: "title", Label: "Title"},
		{Name: "content", Label: "Content", Multiline: true},
	},
	Rules: form.RuleSet{
		"title":   {validator.RequiredRule(), validator.MinLengthRule(10)},
		"content": {validator.RequiredRule(), validator.MinLengthRule(50)},
	},
	SubmitCaption:  "Submit Your Question",
	SuccessMessage: "Your question was successfully submitted",
	FailureMessage: "There was a problem with your question",
}

var AnswerFormDef = FormDef{
	Kind: FormAnswer,
	Fields: []FieldDef{
		{Name: "content", Label: "Your Answer", Multiline: true},
	},
	Rules: form.RuleSet{
		"content": {validator.RequiredRule(), validator.MinLengthRule(50)},
	},
	SubmitCaption:  "Submit Your Answer",
	SuccessMessage: "Your answer was successfully submitted",
	FailureMessage: "There was a problem with your answer",
}

var (
	cleanTitle = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine, sanitizer.NFC)
	cleanText  = sanitizer.Compose(sanitizer.NormalizeNewlines, sanitizer.RemoveControlChars, sanitizer.TrimLines, sanitizer.NFC)
)

// askSubmit posts a question. A duplicate title is reported as a field
// error so the user can fix it and retry.
func askSubmit(client QuestionsClient, userName string) form.SubmitFunc {
	return func(ctx context.Context, values form.Values) (form.SubmitResult, error) {
		_, err := client.PostQuestion(ctx, questions.NewQuestion{
			Title:    cleanTitle(values["title"]),
			Content:  cleanText(values["content"]),
			UserName: userName,
		})
		switch {
		case errors.Is(err, questions.ErrDuplicateTitle):
			return form.SubmitResult{Errors: form.Errors{"title": {MsgTitleTaken}}}, nil
		case err != nil:
			return form.SubmitResult{}, err
		}
		return form.SubmitResult{Success: true}, nil
	}
}

func answerSubmit(client QuestionsClient, questionID int, userName string) form.SubmitFunc {
	return func(ctx context.Context, values form.Values) (form.SubmitResult, error) {
		_, err := client.PostAnswer(ctx, questions.NewAnswer{
			QuestionID: questionID,
			Content:    cleanText(values["content"]),
			UserName:   userName,
		})
		if err != nil {
			return form.SubmitResult{}, err
		}
		return form.SubmitResult{Success: true}, nil
	}
}
