// SPDX-License-Identifier: MIT

// Package verify checks candidate LP solutions independently of the tableau
// that produced them.
//
// The checks rebuild A, b and c as gonum matrices and evaluate A·x, Aᵀ·y and
// the complementary-slackness products directly, so a bug in the pivoting
// code cannot hide itself. Tests across the module and the lpsolve --verify
// flag use it.
package verify
