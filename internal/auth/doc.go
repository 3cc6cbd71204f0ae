// Package auth issues and verifies bearer tokens for the portfolio backend.
//
// LocalProvider checks usernames and passwords against the users table.
// Tokens signs HS256 JWTs carrying the user id and username, and
// RequireToken is the fiber middleware that guards mutating routes:
//
//	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer)
//	app.Post("/api/projects", auth.RequireToken(tokens), createProject)
//
// Handlers behind the gate read the caller with IdentityFromContext.
package auth
