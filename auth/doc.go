/*
Package auth provides session tokens for the administrative API.

# Session Tokens

Tokens are HS256 JWTs issued against a configured secret:

	manager := auth.NewManager(cfg.JWTSecret)
	token, err := manager.Issue("admin", true)
	claims, err := manager.Parse(token)

Claims carry the username and an is_admin flag; tokens expire after
TokenTTL (24h). Parse rejects non-HMAC signing methods, expired
tokens, and anything not signed with the configured secret.

# Credential Check

CheckCredentials compares a login attempt against the configured
admin username and password using constant-time comparison, so the
check does not leak prefix-match timing.
*/
package auth
