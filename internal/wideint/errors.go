package wideint

import "errors"

var (
	// ErrDivisionByZero is returned by Div, Mod and DivMod when the divisor is zero.
	ErrDivisionByZero = errors.New("wideint: division by zero")

	// ErrNegativeExponent is returned by Pow and PowInt for exponents below zero.
	ErrNegativeExponent = errors.New("wideint: negative exponent")

	// ErrInvalidTransformLength is returned when the transform is handed a
	// sequence whose length is not the power of two it was prepared for.
	ErrInvalidTransformLength = errors.New("wideint: transform length is not a power of two")

	// ErrInvalidSize is returned by NextPowerOfTwo for sizes it cannot round.
	ErrInvalidSize = errors.New("wideint: invalid size")

	// ErrPrecisionLoss is returned when an inverse transform produces a
	// coefficient too far from an integer to be rounded reliably.
	ErrPrecisionLoss = errors.New("wideint: floating-point precision exceeded")

	// ErrOperandTooLarge is returned when a product would need a transform
	// longer than MaxTransformLength.
	ErrOperandTooLarge = errors.New("wideint: operand too large")

	// ErrSyntax is returned by Parse for malformed decimal strings.
	ErrSyntax = errors.New("wideint: invalid decimal syntax")
)
