// Package auth defines the credential primitives shared by the account flows:
// hashing algorithms, access tokens and one-time passwords.
package auth
