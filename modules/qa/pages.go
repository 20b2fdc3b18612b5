package qa

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/qanda/handler"
	"github.com/dmitrymomot/qanda/pkg/questions"
)

type SearchRequest struct {
	Criteria string `query:"criteria"`
}

type QuestionRequest struct {
	ID   int    `path:"id"`
	Slug string `path:"slug"`
}

func (s *Service) home(ctx handler.Context, _ struct{}) handler.Response {
	qs, err := s.client.UnansweredQuestions(ctx)
	if err != nil {
		return errorResponse{err}
	}
	return handler.Templ(s.views.HomePage(HomePageParams{Questions: qs}))
}

func (s *Service) search(ctx handler.Context, req SearchRequest) handler.Response {
	criteria := strings.TrimSpace(req.Criteria)
	qs, err := s.client.Search(ctx, criteria)
	if err != nil {
		return errorResponse{err}
	}
	return handler.Templ(s.views.SearchPage(SearchPageParams{Criteria: criteria, Questions: qs}))
}

func (s *Service) question(ctx handler.Context, req QuestionRequest) handler.Response {
	q, err := s.client.Question(ctx, req.ID)
	if errors.Is(err, questions.ErrNotFound) {
		return errorResponse{handler.ErrNotFound}
	}
	if err != nil {
		return errorResponse{err}
	}
	if canonical := QuestionURL(q); req.Slug != "" && !strings.HasSuffix(canonical, "/"+req.Slug) {
		return handler.Redirect(canonical)
	}

	inst := s.newInstance(AnswerFormDef, q.ID, answerSubmit(s.client, q.ID, s.cfg.UserName))
	return handler.Templ(s.views.QuestionPage(QuestionPageParams{
		Question: q,
		Answers:  AnswersParams{Answers: q.Answers},
		Form:     formParams(inst),
	}))
}

func (s *Service) ask(_ handler.Context, _ struct{}) handler.Response {
	inst := s.newInstance(AskFormDef, 0, askSubmit(s.client, s.cfg.UserName))
	return handler.Templ(s.views.AskPage(AskPageParams{Form: formParams(inst)}))
}
