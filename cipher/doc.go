// Package cipher provides reversible byte transforms applied to a message
// before it is mapped to bits and line encoded.
//
// Identity passes bytes through unchanged. Caesar shifts every byte and is
// only a reversible scrambler. SecretBox seals the message with NaCl secretbox
// and prefixes the random nonce, so the ciphertext is 40 bytes longer than the
// plaintext.
package cipher
