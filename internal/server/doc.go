// Package server wires the HTTP surface: the Echo instance, middleware,
// route registration, and one handler file per route group (auth, files,
// links, portfolio, contact, github, ai, health). Handlers hold no
// mutable state; everything they touch is either the immutable config or
// a request-scoped call into a collaborator.
package server
