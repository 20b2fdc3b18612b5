// Package form implements the state and validation engine behind an
// interactive form: field values, touched tracking, declarative validation
// rules and an asynchronous submission lifecycle.
//
// # Overview
//
// One Form is created per form instance and handed explicitly to every Field
// binding that belongs to it. The Form owns a Store (values, errors, touched
// flags, submission status), the RuleSet configured for its fields and the
// submit callback.
//
//	f := form.New(form.RuleSet{
//	    "title":   {validator.RequiredRule(), validator.MinLengthRule(10)},
//	    "content": {validator.RequiredRule(), validator.MinLengthRule(50)},
//	}, postQuestion,
//	    form.WithSuccessMessage("Your question was successfully submitted"),
//	)
//	title := form.NewField(f, "title")
//
//	title.OnChange("Why Go?") // no error shown yet, field untouched
//	title.OnBlur()            // touched, errors now visible
//	err := f.Submit(ctx)      // validates every field, then calls postQuestion
//
// # Touched gating
//
// A field shows no errors until it has been blurred once. After that every
// change re-validates it. A submit attempt validates every configured field
// and makes all of their errors visible regardless of touched state.
//
// # Submission lifecycle
//
// Status moves idle -> submitting -> submitted_success | submitted_failure.
// Failure is retryable, success is terminal. While submitting, and after
// success, Change and Blur return ErrInert and a second Submit is refused
// without calling the callback.
//
// A callback that returns an error, panics or exceeds the configured timeout
// resolves the submission as a failure with no field errors.
package form
