// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math/big"
)

// Coeff is a canonical field element in [0, Characteristic()).
type Coeff uint32

const (
	// Zero is the additive identity in every field.
	Zero Coeff = 0
	// One is the multiplicative identity in every field.
	One Coeff = 1

	// DefaultPrime is the modulus used for signed coefficients when the
	// caller does not choose one.
	DefaultPrime = 2147483647 // 2^31-1

	maxModulus = 1 << 31
)

// Field is the arithmetic capability the reduction needs.
type Field interface {
	// Name is a short human-readable label, e.g. "GF(2)" or "Z/3".
	Name() string
	// Characteristic returns the modulus p.
	Characteristic() uint32
	Add(a, b Coeff) Coeff
	Neg(a Coeff) Coeff
	Mul(a, b Coeff) Coeff
	// Inv returns the multiplicative inverse; ErrZeroInverse for zero.
	Inv(a Coeff) (Coeff, error)
	IsZero(a Coeff) bool
	// FromInt maps a signed integer (e.g. the ±1 boundary sign) into the field.
	FromInt(v int) Coeff
}

// Validate reports ErrInvalidField unless f is non-nil with a prime
// characteristic. Consumers call it once before any arithmetic.
func Validate(f Field) error {
	if f == nil {
		return fmt.Errorf("Validate: nil: %w", ErrInvalidField)
	}
	if p := f.Characteristic(); !big.NewInt(int64(p)).ProbablyPrime(20) {
		return fmt.Errorf("Validate: %s characteristic %d: %w", f.Name(), p, ErrInvalidField)
	}

	return nil
}

// IsBinary reports whether f has characteristic 2.
func IsBinary(f Field) bool { return f.Characteristic() == 2 }

// EliminationScale returns the factor s with target + s·pivot = 0, i.e.
// s = -(target / pivot). pivot must be nonzero.
func EliminationScale(f Field, target, pivot Coeff) (Coeff, error) {
	inv, err := f.Inv(pivot)
	if err != nil {
		return Zero, err
	}

	return f.Neg(f.Mul(target, inv)), nil
}

// ---------- GF(2) ----------

type gf2 struct{}

// GF2 is the binary field.
var GF2 Field = gf2{}

func (gf2) Name() string           { return "GF(2)" }
func (gf2) Characteristic() uint32 { return 2 }
func (gf2) Add(a, b Coeff) Coeff   { return (a ^ b) & 1 }
func (gf2) Neg(a Coeff) Coeff      { return a & 1 }
func (gf2) Mul(a, b Coeff) Coeff   { return a & b & 1 }
func (gf2) IsZero(a Coeff) bool    { return a&1 == 0 }
func (gf2) FromInt(v int) Coeff    { return Coeff(v & 1) }
func (g gf2) Inv(a Coeff) (Coeff, error) {
	if g.IsZero(a) {
		return Zero, ErrZeroInverse
	}

	return One, nil
}

// ---------- Z/p ----------

// Prime is the field of integers mod a prime p < 2^31. Build it with
// NewPrime, MustPrime or Signed; the zero value has p = 0 and fails Validate.
type Prime struct {
	p uint64
}

// NewPrime validates p and returns Z/p. NewPrime(2) returns a Prime whose
// arithmetic agrees with GF2.
//
// Errors: ErrNotPrime, ErrModulusTooLarge.
func NewPrime(p uint32) (Prime, error) {
	if p >= maxModulus {
		return Prime{}, fmt.Errorf("NewPrime(%d): %w", p, ErrModulusTooLarge)
	}
	if !big.NewInt(int64(p)).ProbablyPrime(20) {
		return Prime{}, fmt.Errorf("NewPrime(%d): %w", p, ErrNotPrime)
	}

	return Prime{p: uint64(p)}, nil
}

// MustPrime is NewPrime that panics; for package-level variables and tests.
func MustPrime(p uint32) Prime {
	f, err := NewPrime(p)
	if err != nil {
		panic(err)
	}

	return f
}

// Signed returns Z/DefaultPrime, large enough that no coefficient produced
// by a boundary matrix of practical size wraps around.
func Signed() Prime { return Prime{p: DefaultPrime} }

// Name returns "Z/p".
func (f Prime) Name() string { return fmt.Sprintf("Z/%d", f.p) }

// Characteristic returns p.
func (f Prime) Characteristic() uint32 { return uint32(f.p) }

// IsZero reports a ≡ 0 (mod p).
// Complexity: O(1).
func (f Prime) IsZero(a Coeff) bool { return uint64(a)%f.p == 0 }

// Add returns (a + b) mod p.
// Complexity: O(1).
func (f Prime) Add(a, b Coeff) Coeff {
	return Coeff((uint64(a) + uint64(b)) % f.p)
}

// Neg returns the additive inverse, p - a for a ≠ 0.
// Complexity: O(1).
func (f Prime) Neg(a Coeff) Coeff {
	r := uint64(a) % f.p
	if r == 0 {
		return Zero
	}

	return Coeff(f.p - r)
}

// Mul returns (a · b) mod p.
// Complexity: O(1).
func (f Prime) Mul(a, b Coeff) Coeff {
	return Coeff((uint64(a) * uint64(b)) % f.p) // both < 2^31, product fits
}

// Inv uses Fermat: a^(p-2) mod p.
// Complexity: O(log p) multiplications.
func (f Prime) Inv(a Coeff) (Coeff, error) {
	x := uint64(a) % f.p
	if x == 0 {
		return Zero, ErrZeroInverse
	}
	res, e := uint64(1), f.p-2
	for e > 0 {
		if e&1 == 1 {
			res = res * x % f.p
		}
		x = x * x % f.p
		e >>= 1
	}

	return Coeff(res), nil
}

// FromInt reduces v into [0, p), so -1 maps to p-1.
func (f Prime) FromInt(v int) Coeff {
	r := int64(v) % int64(f.p)
	if r < 0 {
		r += int64(f.p)
	}

	return Coeff(r)
}

var (
	_ Field = gf2{}
	_ Field = Prime{}
)
