// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request struct populated by the
// configured binders, and returns a Response. Responses know how to answer
// both plain browser requests (full HTML) and datastar requests (SSE element
// and signal patches), so one handler serves the first page load and every
// later partial update:
//
//	h := func(ctx handler.Context, req askRequest) handler.Response {
//		return handler.TemplPartial(views.AskForm(f), views.AskPage(f))
//	}
//	r.Get("/ask", handler.Wrap(h, handler.WithErrorHandler[askRequest](errs)))
//
// Errors from binding or rendering go to the ErrorHandler. NewErrorHandler
// builds one that logs with the request id and renders an error page or a
// datastar toast. HTTPError carries a status code through the error chain.
package handler
