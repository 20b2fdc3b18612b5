package qa

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrymomot/qanda/handler"
	"github.com/dmitrymomot/qanda/pkg/form"
	"github.com/dmitrymomot/qanda/pkg/logger"
)

// FormEventRequest is a datastar action fired by a form: the instance id
// from the path, the field from the query and every signal from the body.
type FormEventRequest struct {
	FormID  string `path:"formID"`
	Field   string `query:"field"`
	Signals map[string]any
}

// UnmarshalJSON takes the whole signal payload, since field names vary per form.
func (r *FormEventRequest) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &r.Signals)
}

// lookup resolves the instance and, when field is set, checks it belongs to
// the form.
func (s *Service) lookup(req FormEventRequest, needField bool) (*Instance, error) {
	inst, ok := s.registry.Get(req.FormID)
	if !ok {
		return nil, errors.Join(handler.ErrGone, ErrFormNotFound)
	}
	if needField && !inst.Def.HasField(req.Field) {
		return nil, errors.Join(handler.ErrBadRequest, ErrUnknownField)
	}
	return inst, nil
}

// syncValue applies a signal value that differs from the stored one. The input
// event normally got there first; this covers events datastar coalesced.
func syncValue(inst *Instance, field form.FieldName, signals map[string]any) error {
	v, ok := signals[field]
	if !ok {
		return nil
	}
	value := form.ValueOf(v)
	if value == inst.Form.Value(field) {
		return nil
	}
	return inst.Form.Change(field, value)
}

func (s *Service) change(_ handler.Context, req FormEventRequest) handler.Response {
	inst, err := s.lookup(req, true)
	if err != nil {
		return errorResponse{err}
	}
	v, ok := req.Signals[req.Field]
	if !ok {
		return errorResponse{handler.ErrBadRequest}
	}
	err = inst.Form.Change(req.Field, form.ValueOf(v))
	if errors.Is(err, form.ErrInert) {
		return handler.Empty()
	}
	if err != nil {
		return errorResponse{err}
	}
	return s.fieldErrors(inst, req.Field)
}

func (s *Service) blur(_ handler.Context, req FormEventRequest) handler.Response {
	inst, err := s.lookup(req, true)
	if err != nil {
		return errorResponse{err}
	}
	if err := syncValue(inst, req.Field, req.Signals); err != nil && !errors.Is(err, form.ErrInert) {
		return errorResponse{err}
	}
	err = inst.Form.Blur(req.Field)
	if errors.Is(err, form.ErrInert) {
		return handler.Empty()
	}
	if err != nil {
		return errorResponse{err}
	}
	return s.fieldErrors(inst, req.Field)
}

func (s *Service) submit(ctx handler.Context, req FormEventRequest) handler.Response {
	inst, err := s.lookup(req, false)
	if err != nil {
		return errorResponse{err}
	}
	for _, fd := range inst.Def.Fields {
		if err := syncValue(inst, fd.Name, req.Signals); err != nil && !errors.Is(err, form.ErrInert) {
			return errorResponse{err}
		}
	}

	// The submission outlives a closed connection; the form's submit
	// timeout bounds it instead.
	err = inst.Form.Submit(context.WithoutCancel(ctx))
	switch {
	case err == nil,
		errors.Is(err, form.ErrInvalid),
		errors.Is(err, form.ErrSubmitInProgress),
		errors.Is(err, form.ErrAlreadySubmitted),
		errors.Is(err, form.ErrSubmitFailed):
	default:
		return errorResponse{err}
	}

	if err != nil {
		s.log.DebugContext(ctx, "submit not accepted",
			logger.FormID(inst.ID),
			logger.Status(inst.Form.Status().String()),
			logger.Error(err),
		)
	}

	patches := []handler.TemplPatch{handler.Patch(s.views.Form(formParams(inst)))}
	if inst.Def.Kind == FormAnswer && inst.Form.Status() == form.StatusSubmittedSuccess {
		if q, qerr := s.client.Question(ctx, inst.QuestionID); qerr == nil {
			patches = append(patches, handler.Patch(s.views.Answers(AnswersParams{Answers: q.Answers})))
		} else {
			s.log.WarnContext(ctx, "failed to refresh answers", logger.Error(qerr))
		}
	}
	return handler.TemplMulti(patches...)
}

func (s *Service) fieldErrors(inst *Instance, field form.FieldName) handler.Response {
	for _, fd := range inst.Def.Fields {
		if fd.Name == field {
			return handler.Templ(s.views.FieldErrors(fieldParams(inst, fd)))
		}
	}
	return handler.Empty()
}
