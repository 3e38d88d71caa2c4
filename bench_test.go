package extgcd

import (
	"fmt"
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchUintResult   uint
)

func BenchmarkExtGCD(b *testing.B) {
	for _, c := range extGCDCases {
		b.Run(fmt.Sprintf("ExtGCD(%d,%d)", c.a, c.b), func(b *testing.B) {
			x, y := bigi(c.a), bigi(c.b)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BenchBigIntResult, _, _ = ExtGCD(x, y)
			}
		})
	}
}

func BenchmarkExtGCDMultiWord(b *testing.B) {
	for _, c := range []struct {
		name string
		a, b *big.Int
	}{
		{"128bit", bigs("0x7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"), bigs("0xFFFFFFFFFFFFFFFEFFFFFC2F")},
		{"256bit", bigs("0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"), bigs("0x7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF")},
		{"512bit", new(big.Int).Mul(
			bigs("0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
			bigs("0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364143"),
		), bigs("0x10000000000000000000000000000000000000000000000000000000000000003D1")},
	} {
		b.Run(c.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBigIntResult, _, _ = ExtGCD(c.a, c.b)
			}
		})
	}
}

func BenchmarkFactorTwos(b *testing.B) {
	x := new(big.Int).Lsh(bigs("0x7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"), 40)
	y := new(big.Int).Lsh(bigi(3), 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BenchUintResult, BenchBigIntResult, _ = FactorTwos(x, y)
	}
}
