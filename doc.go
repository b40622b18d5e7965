// Package authchain implements a pluggable authentication middleware
// chain for go-router applications: HTTP Basic credentials, bearer-token
// (JWT) credentials, and optional cookie-carried tokens, unified behind a
// single per-request AuthState and a role-gated authorization layer.
//
// Pipeline:
//   - The default chain runs logout, basic-auth, login, bearer-auth, and
//     anonymous-fallback in order. At most one credential stage succeeds
//     per request; every stage short-circuits once AuthState is
//     authenticated.
//   - Stages are explicit: each returns Continue or Terminate, or fails
//     with an error the driver routes to the Unauthorized responder.
//     Authentication failures render a stable 401 JSON shape; anything
//     else propagates to the host's generic error handling.
//
// Deferred configuration:
//   - The signing secret is a SecretSource resolved once, cached for the
//     life of the process, and rejected when empty. Optional claim
//     fields (exp, iss, sub, aud) and the filter/compare/decode hooks
//     accept provider functions; Static* constructors wrap constants so
//     call sites resolve every field the same way.
//
// Authorization gates:
//   - Any, User, Admin, and HasRole consult AuthState after the pipeline
//     ran. Admin keys off the user's admin flag; role-list deployments
//     use HasRole instead.
package authchain
