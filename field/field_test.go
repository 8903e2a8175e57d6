package field_test

import (
	"testing"

	"github.com/katalvlaran/lvtda/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGF2(t *testing.T) {
	f := field.GF2
	assert.True(t, field.IsBinary(f))
	assert.Equal(t, field.Zero, f.Add(field.One, field.One))
	assert.Equal(t, field.One, f.Neg(field.One))
	assert.Equal(t, field.One, f.FromInt(-1))

	_, err := f.Inv(field.Zero)
	assert.ErrorIs(t, err, field.ErrZeroInverse)
}

func TestNewPrime(t *testing.T) {
	_, err := field.NewPrime(9)
	assert.ErrorIs(t, err, field.ErrNotPrime)
	_, err = field.NewPrime(1)
	assert.ErrorIs(t, err, field.ErrNotPrime)
	_, err = field.NewPrime(1 << 31)
	assert.ErrorIs(t, err, field.ErrModulusTooLarge)

	f, err := field.NewPrime(7)
	require.NoError(t, err)
	assert.Equal(t, "Z/7", f.Name())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, field.Validate(field.GF2))
	assert.NoError(t, field.Validate(field.Signed()))
	assert.NoError(t, field.Validate(field.MustPrime(3)))
	assert.ErrorIs(t, field.Validate(nil), field.ErrInvalidField)
	assert.ErrorIs(t, field.Validate(field.Prime{}), field.ErrInvalidField, "zero value has p = 0")
}

// TestPrime_Inverse checks a·a⁻¹ = 1 for every nonzero residue.
func TestPrime_Inverse(t *testing.T) {
	f := field.MustPrime(11)
	for a := field.Coeff(1); a < 11; a++ {
		inv, err := f.Inv(a)
		require.NoError(t, err)
		assert.Equal(t, field.One, f.Mul(a, inv), "a=%d", a)
	}
}

func TestPrime_SignsAndScale(t *testing.T) {
	f := field.Signed()
	minus := f.FromInt(-1)
	assert.Equal(t, field.Zero, f.Add(minus, field.One))
	assert.Equal(t, minus, f.Neg(field.One))

	// target + s*pivot == 0
	s, err := field.EliminationScale(f, f.FromInt(3), minus)
	require.NoError(t, err)
	assert.True(t, f.IsZero(f.Add(f.FromInt(3), f.Mul(s, minus))))
}
