package qa

import (
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qanda/handler"
	"github.com/dmitrymomot/qanda/pkg/form"
	"github.com/dmitrymomot/qanda/pkg/questions"
	"github.com/dmitrymomot/qanda/pkg/slug"
)

// Element ids targeted by datastar patches.
const (
	FormElementID    = "qa-form"
	AnswersElementID = "answers"
	ToastsElementID  = "toasts"
)

// SubmittingSignal is the client-only datastar signal that is true while a
// submit request is pending.
const SubmittingSignal = "_submitting"

// FieldErrorsElementID is the id of the element listing a field's errors.
func FieldErrorsElementID(field form.FieldName) string { return "field-" + field + "-errors" }

// Views renders every page and fragment of the module. DefaultViews
// returns a plain HTML implementation; any field may be replaced with
// generated templ components.
type Views struct {
	HomePage     func(HomePageParams) templ.Component
	SearchPage   func(SearchPageParams) templ.Component
	QuestionPage func(QuestionPageParams) templ.Component
	AskPage      func(AskPageParams) templ.Component

	// Form must render a root element with id FormElementID.
	Form func(FormParams) templ.Component
	// FieldErrors must render a root element with id FieldErrorsElementID.
	FieldErrors func(FieldParams) templ.Component
	// Answers must render a root element with id AnswersElementID.
	Answers func(AnswersParams) templ.Component

	ErrorPage  func(handler.ErrorPageParams) templ.Component
	ErrorToast func(handler.ErrorToastParams) templ.Component
}

type HomePageParams struct {
	Questions []questions.Question
}

type SearchPageParams struct {
	Criteria  string
	Questions []questions.Question
}

type QuestionPageParams struct {
	Question questions.Question
	Answers  AnswersParams
	Form     FormParams
}

type AskPageParams struct {
	Form FormParams
}

type AnswersParams struct {
	Answers []questions.Answer
}

// FormParams is a snapshot of a form instance ready for rendering.
type FormParams struct {
	ID        string
	SubmitURL string
	Caption   string
	Status    form.Status
	Disabled  bool
	Message   string
	Fields    []FieldParams
}

type FieldParams struct {
	Name      form.FieldName
	Label     string
	Multiline bool
	Value     string
	Errors    []string
	Disabled  bool
	ChangeURL string
	BlurURL   string
}

func formParams(inst *Instance) FormParams {
	f := inst.Form
	out := f.Outcome()
	p := FormParams{
		ID:        inst.ID,
		SubmitURL: formURL(inst.ID, "submit", ""),
		Caption:   inst.Def.SubmitCaption,
		Status:    out.Status,
		Disabled:  f.Inert(),
		Message:   out.Message,
		Fields:    make([]FieldParams, 0, len(inst.Def.Fields)),
	}
	for _, fd := range inst.Def.Fields {
		p.Fields = append(p.Fields, fieldParams(inst, fd))
	}
	return p
}

func fieldParams(inst *Instance, fd FieldDef) FieldParams {
	field := form.NewField(inst.Form, fd.Name)
	return FieldParams{
		Name:      fd.Name,
		Label:     fd.Label,
		Multiline: fd.Multiline,
		Value:     field.Value(),
		Errors:    field.Errors(),
		Disabled:  field.Disabled(),
		ChangeURL: formURL(inst.ID, "change", fd.Name),
		BlurURL:   formURL(inst.ID, "blur", fd.Name),
	}
}

// QuestionURL is the canonical link to q: its id followed by the title slug.
func QuestionURL(q questions.Question) string {
	u := "/questions/" + strconv.Itoa(q.ID)
	if s := slug.Make(q.Title, slug.MaxLength(80)); s != "" {
		u += "/" + s
	}
	return u
}

func formURL(id, action string, field form.FieldName) string {
	u := "/forms/" + id + "/" + action
	if field != "" {
		u += "?field=" + field
	}
	return u
}

func formatCreated(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}
