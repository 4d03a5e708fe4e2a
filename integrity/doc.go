// Package integrity makes cached translation values tamper-evident.
//
// Values are serialized to JSON and signed with HMAC-SHA256 under a
// per-process secret. Verification recomputes the MAC with a
// constant-time compare and fails closed on any malformed payload. The
// guard provides integrity only, not confidentiality: cached translations
// are already public text, and the MAC exists to reject corrupted or
// substituted entries.
package integrity
