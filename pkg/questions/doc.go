// Package questions is an in-memory stand-in for the Q&A backend. Every call
// sleeps for a configurable latency before touching the data, so the web
// layer experiences realistic round trips, and honours context cancellation
// while it waits.
//
// The client starts with a small built-in data set, which can be replaced by
// a YAML seed:
//
//	- id: 1
//	  title: Why should I learn TypeScript?
//	  content: TypeScript seems to be getting popular...
//	  user_name: Bob
//	  answers:
//	    - id: 1
//	      content: To catch problems earlier speeding up your developments
//	      user_name: Jane
package questions
