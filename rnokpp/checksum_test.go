package rnokpp

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksumDigit(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want int
	}{
		{name: "reference identifier", id: "3013753534", want: 0},
		{name: "all zeros", id: "0000000000", want: 0},
		{name: "remainder ten folds to zero", id: "0000000030", want: 0},
		{name: "negative sum folds to zero", id: "1000000000", want: 0},
		{name: "year 2000 female", id: "3652500020", want: 4},
		{name: "check digit ignored", id: "3652500029", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChecksumDigit(MustParse(tt.id)))
		})
	}
}

func TestChecksumRangeAndDeterminism(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 2000; i++ {
		var id ID
		for j := range id {
			id[j] = byte('0' + r.IntN(10))
		}

		got := ChecksumDigit(id)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 9)
		assert.Equal(t, got, ChecksumDigit(id), "same input, same digit")

		// Only digits 0-8 contribute
		other := id
		other[checkPos] = byte('0' + (id.CheckDigit()+1)%10)
		assert.Equal(t, got, ChecksumDigit(other))
	}
}

func TestValid(t *testing.T) {
	assert.False(t, MustParse("3013753534").Valid())
	assert.True(t, MustParse("3013753530").Valid())
	assert.True(t, MustParse("0000000030").Valid(), "remainder ten is valid with check digit 0")
	assert.False(t, MustParse("0000000031").Valid())
}

func TestValidityIndependentOfDecoding(t *testing.T) {
	valid, err := Analyze("3013753530")
	assert.NoError(t, err)
	invalid, err := Analyze("3013753534")
	assert.NoError(t, err)

	assert.True(t, valid.IsValid)
	assert.False(t, invalid.IsValid)
	assert.Equal(t, valid.Sex, invalid.Sex)
	assert.Equal(t, valid.DateOfBirth, invalid.DateOfBirth)
}
