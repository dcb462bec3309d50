// Package clawmachine solves two-button claw machines in closed form.
//
// Pressing A moves the claw by (XA, YA) and costs 3 tokens; pressing B moves it
// by (XB, YB) and costs 1. A prize at (X, Y) is won with presses a, b where
//
//	a·XA + b·XB = X
//	a·YA + b·YB = Y
//
// Cramer's rule gives the unique real solution when the determinant
// XA·YB − YA·XB is non-zero. The quotients are floored and substituted back;
// the machine is winnable only if that integer pair reproduces the prize
// exactly and both counts are non-negative. A zero determinant is reported as
// unwinnable.
//
// All arithmetic is int64, so prize offsets such as PrizeOffset fit.
package clawmachine
