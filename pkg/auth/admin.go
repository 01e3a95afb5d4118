// Package auth verifies the shared admin secret gating mutation endpoints.
//
// The secret is transmitted and compared per request rather than exchanged
// for a session token. That scheme is inherited from the original deployment
// and kept deliberately; see DESIGN.md before changing it.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
)

// Admin holds the configured admin secret in digest form.
type Admin struct {
	digest [sha256.Size]byte
}

// NewAdmin creates an Admin verifier for the given shared secret.
func NewAdmin(secret string) *Admin {
	return &Admin{digest: sha256.Sum256([]byte(secret))}
}

// Verify は入力パスワードを設定済みシークレットと定数時間で比較する
// Hashing both sides first keeps the comparison shape independent of the
// input length.
func (a *Admin) Verify(password string) bool {
	d := sha256.Sum256([]byte(password))
	return subtle.ConstantTimeCompare(a.digest[:], d[:]) == 1
}
