// Package auth issues and validates the tokens the API hands out: HS256
// access/refresh pairs for signed-in users and single-use password reset
// tokens. It also verifies bcrypt password hashes.
package auth
