// Package auth provides user accounts, password hashing, and JWT access
// tokens for the Gadget Armoury.
//
// Agents register with a username and password, then log in to receive a
// short-lived HS256-signed JWT. Every gadget endpoint requires a valid
// token; the API layer parses it with ParseToken and rejects anything
// expired, malformed, or signed with the wrong secret.
//
// # Key Types
//
//   - User: a registered agent account (password hash never serialised)
//   - Claims: JWT claims carrying the user ID and username
//   - UserRepository: SQLite-backed account persistence
//
// Passwords are hashed with Argon2id and stored in PHC string format.
// Tokens are stateless: no session table, no revocation list. A token is
// valid until it expires or the signing secret changes.
package auth
