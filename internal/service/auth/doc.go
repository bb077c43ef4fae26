// Package auth issues and validates HS256 access and refresh tokens, hashes
// and verifies passwords with bcrypt and generates email verification codes.
package auth
