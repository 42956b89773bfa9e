// Package fairness implements the commit-reveal protocol that lets a player
// check the computer fixed its move before seeing theirs.
//
// Commit draws a fresh secret key and publishes a keyed digest of the hidden
// move name. The digest must be shown before the player chooses and the key
// must stay private until the player's choice is locked in. After the reveal
// anyone holding (algorithm, key, move) can recompute the digest with Digest
// or check it with Verify.
//
// There is no insecure fallback: when the key source fails Commit returns an
// error matching ErrEntropyUnavailable and the session must not start.
package fairness
