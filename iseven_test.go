package iseven_test

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	iseven "github.com/Manbeardo/is-even"
	"github.com/stretchr/testify/assert"
)

func TestIsEven(t *testing.T) {
	expectedValues := map[int64]bool{
		0:                 true,
		1:                 false,
		2:                 true,
		3:                 false,
		42:                true,
		7:                 false,
		-3:                false,
		-4:                true,
		-8:                true,
		11111111111111112: true,
		math.MaxInt64:     false,
		math.MinInt64:     true,
		math.MinInt64 + 1: false,
	}
	for num, expected := range expectedValues {
		t.Run(fmt.Sprintf("%d returns %v", num, expected), func(t *testing.T) {
			assert.Equal(t, expected, iseven.IsEven(num))
		})
	}
}

func TestIsEvenMatchesModulus(t *testing.T) {
	for _, num := range generateNumbers(1000) {
		assert.Equal(t, isEvenFromModulus(num), iseven.IsEven(num), "num=%d", num)
	}
}

func TestIsEvenBig(t *testing.T) {
	expectedValues := map[string]bool{
		"0":                     true,
		"-0":                    true,
		"1":                     false,
		"-1":                    false,
		"-4":                    true,
		"9223372036854775808":   true,
		"-9223372036854775809":  false,
		"18446744073709551615":  false,
		"18446744073709551616":  true,
		"-18446744073709551617": false,
	}
	for str, expected := range expectedValues {
		t.Run(fmt.Sprintf("%s returns %v", str, expected), func(t *testing.T) {
			num, ok := new(big.Int).SetString(str, 10)
			assert.True(t, ok)
			assert.Equal(t, expected, iseven.IsEvenBig(num))
		})
	}
}

func TestIsEvenBigAgreesWithIsEven(t *testing.T) {
	for _, num := range generateNumbers(1000) {
		assert.Equal(t, iseven.IsEven(num), iseven.IsEvenBig(big.NewInt(num)), "num=%d", num)
	}
}

func TestIsEvenBigNil(t *testing.T) {
	assert.True(t, iseven.IsEvenBig(nil))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Even", iseven.Label(true))
	assert.Equal(t, "Odd", iseven.Label(false))
	assert.Equal(t, iseven.EvenLabel, iseven.Label(iseven.IsEven(10)))
	assert.Equal(t, iseven.OddLabel, iseven.Label(iseven.IsEven(-11)))
}

func generateNumbers(count int) []int64 {
	numbers := []int64{}
	for i := 0; i < count; i++ {
		numbers = append(numbers, int64(rand.Uint64()))
	}
	return numbers
}

func isEvenFromModulus(num int64) bool {
	return num%2 == 0
}

func BenchmarkIsEven(b *testing.B) {
	b.StopTimer()
	numbers := generateNumbers(b.N)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		_ = iseven.IsEven(numbers[i])
	}
}

func BenchmarkModulusOperator(b *testing.B) {
	b.StopTimer()
	numbers := generateNumbers(b.N)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		_ = isEvenFromModulus(numbers[i])
	}
}
