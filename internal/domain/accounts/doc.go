// Package accounts holds the account aggregate: credentials, verification state,
// TOTP two-factor flags and the services that drive signup, signin and signout.
package accounts
