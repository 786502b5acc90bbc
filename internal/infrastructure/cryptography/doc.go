// Package cryptography implements the credential primitives of the auth flow:
// the Argon2, bcrypt and PBKDF2 hashing algorithms, the double-layered password
// manager, HMAC signed JWTs and TOTP one-time passwords.
package cryptography
