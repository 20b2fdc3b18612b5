// Package qa is the Q&A web module: the home, search, question and ask
// pages, and the endpoints that drive the server-side form engine.
//
// Every page that shows a form creates a fresh form.Form, registers it under
// a uuid and renders it with datastar attributes. The browser then posts
// each input, blur and submit event to /forms/{id}/{change,blur,submit} with
// its signals; the server applies the event to the form and answers with
// element patches for the affected fragments. Form state lives only as long
// as its registry entry.
//
// Form event endpoints are rate limited per client IP when FormEventBurst is
// set. Question links carry a title slug (/questions/{id}/{slug}); a stale
// slug redirects to the current one.
package qa
