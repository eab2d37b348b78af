// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cipher implements the Caesar shift over a fixed, ordered alphabet.
// Encryption and decryption are the same rotation with the sign taken from a
// Direction, and the alphabet visualisation is the alphabet run through the
// engine itself.
package cipher
