package wideint_test

import (
	"fmt"

	"github.com/agbru/widecalc/internal/wideint"
)

func ExampleInt_Mul() {
	a := wideint.MustParse("123456789")
	b := wideint.MustParse("987654321")
	p, err := a.Mul(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	// Output: 121932631112635269
}

func ExampleInt_DivMod() {
	q, r, _ := wideint.New(-17).DivMod(wideint.New(5))
	fmt.Println(q, r)
	// Output: -3 -2
}

func ExampleInt_Pow() {
	p, _ := wideint.New(2).Pow(128)
	fmt.Println(p)
	// Output: 340282366920938463463374607431768211456
}

func ExampleNextPowerOfTwo() {
	n, _ := wideint.NextPowerOfTwo(5)
	fmt.Println(n)
	// Output: 8
}
