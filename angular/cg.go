// Package angular: Clebsch-Gordan coefficients by the Racah closed form.
//
// Algorithm outline:
//  1. Convert every (j, m) to integer twice-spin values; reject unphysical
//     input (non-half-integer, |m| > j, j-m non-integer) by returning 0.
//  2. Apply the selection rules: m₃ = m₁+m₂, the triangle inequality on
//     (j₁, j₂, j₃), and the integer-parity constraint on j₁+j₂+j₃.
//     Any failure returns 0 — the documented contract, not an error.
//  3. Evaluate Racah's factorial formula
//     ⟨j₁m₁; j₂m₂|j₃m₃⟩ = √((2j₃+1)·Δ(j₁j₂j₃)) · √(Π (jᵢ±mᵢ)!) · Σₖ (-1)ᵏ/D(k)
//     with Δ the triangle coefficient and D(k) the product of six
//     factorials; the sum ranges over the k keeping all arguments ≥ 0.
//
// All factorial arguments are exact integers once the parity checks pass,
// so the only floating-point error is the final product — stable for the
// spin ranges this library targets (up to a few units of spin).
package angular

import "math"

// maxFactorial bounds the precomputed factorial table. 0!..169! fit in a
// float64; spins beyond table range are far outside the library's target.
const maxFactorial = 170

// factorials[n] = n! as float64, filled at package init.
var factorials = func() [maxFactorial]float64 {
	var f [maxFactorial]float64
	f[0] = 1
	for n := 1; n < maxFactorial; n++ {
		f[n] = f[n-1] * float64(n)
	}

	return f
}()

// fact returns n! for n in table range and NaN outside it; negative n is a
// programmer error upstream and also yields NaN so it cannot pass silently.
func fact(n int) float64 {
	if n < 0 || n >= maxFactorial {
		return math.NaN()
	}

	return factorials[n]
}

// twice converts a half-integer to its exact integer double, reporting
// whether the conversion is on-grid.
func twice(j float64) (int, bool) {
	t := math.Round(2 * j)
	if math.Abs(2*j-t) >= halfIntTol {
		return 0, false
	}

	return int(t), true
}

// ClebschGordan returns ⟨j₁ m₁; j₂ m₂ | j₃ m₃⟩ in the Condon-Shortley
// convention. The coefficient is real; selection-rule failures and
// unphysical inputs return 0, never an error. Complexity: O(j₁+j₂-j₃).
func ClebschGordan(j1, m1, j2, m2, j3, m3 float64) float64 {
	tj1, ok1 := twice(j1)
	tm1, ok2 := twice(m1)
	tj2, ok3 := twice(j2)
	tm2, ok4 := twice(m2)
	tj3, ok5 := twice(j3)
	tm3, ok6 := twice(m3)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		return 0
	}

	// Physicality: j ≥ 0, |m| ≤ j, j-m integer (same parity).
	for _, p := range [][2]int{{tj1, tm1}, {tj2, tm2}, {tj3, tm3}} {
		tj, tm := p[0], p[1]
		if tj < 0 || tm < -tj || tm > tj || (tj-tm)%2 != 0 {
			return 0
		}
	}

	// Selection rules: conservation, triangle, parity of j₁+j₂+j₃.
	if tm1+tm2 != tm3 {
		return 0
	}
	if tj3 < tj1-tj2 || tj3 < tj2-tj1 || tj3 > tj1+tj2 {
		return 0
	}
	if (tj1+tj2+tj3)%2 != 0 {
		return 0
	}

	// Integer factorial arguments (all guaranteed ≥ 0 by the rules above).
	a := (tj1 + tj2 - tj3) / 2  // j₁+j₂-j₃
	b := (tj1 - tj2 + tj3) / 2  // j₁-j₂+j₃
	c := (-tj1 + tj2 + tj3) / 2 // -j₁+j₂+j₃
	d := (tj1 + tj2 + tj3) / 2  // j₁+j₂+j₃

	// Triangle coefficient Δ and the magnetic factorial product.
	prefactor := float64(tj3+1) * fact(a) * fact(b) * fact(c) / fact(d+1)
	prefactor *= fact((tj1+tm1)/2) * fact((tj1-tm1)/2) *
		fact((tj2+tm2)/2) * fact((tj2-tm2)/2) *
		fact((tj3+tm3)/2) * fact((tj3-tm3)/2)

	// Racah sum bounds: every factorial argument must stay ≥ 0.
	j1mm1 := (tj1 - tm1) / 2   // j₁-m₁
	j2pm2 := (tj2 + tm2) / 2   // j₂+m₂
	e := (tj3 - tj2 + tm1) / 2 // j₃-j₂+m₁
	f := (tj3 - tj1 - tm2) / 2 // j₃-j₁-m₂

	kMin := 0
	if -e > kMin {
		kMin = -e
	}
	if -f > kMin {
		kMin = -f
	}
	kMax := a
	if j1mm1 < kMax {
		kMax = j1mm1
	}
	if j2pm2 < kMax {
		kMax = j2pm2
	}

	var sum float64
	sign := 1.0
	if kMin%2 != 0 {
		sign = -1
	}
	for k := kMin; k <= kMax; k++ {
		den := fact(k) * fact(a-k) * fact(j1mm1-k) * fact(j2pm2-k) * fact(e+k) * fact(f+k)
		sum += sign / den
		sign = -sign
	}

	return math.Sqrt(prefactor) * sum
}

// Wigner3j returns the Wigner 3-j symbol (j₁ j₂ j₃; m₁ m₂ m₃), related to
// the Clebsch-Gordan coefficient by
//
//	(j₁ j₂ j₃; m₁ m₂ m₃) = (-1)^(j₁-j₂-m₃)/√(2j₃+1) · ⟨j₁m₁; j₂m₂|j₃,-m₃⟩.
//
// Selection-rule failures return 0. Complexity: O(j₁+j₂-j₃).
func Wigner3j(j1, m1, j2, m2, j3, m3 float64) float64 {
	cg := ClebschGordan(j1, m1, j2, m2, j3, -m3)
	if cg == 0 {
		return 0
	}
	phase := 1.0
	// j₁-j₂-m₃ is an integer whenever the coefficient is nonzero.
	if int(math.Round(j1-j2-m3))%2 != 0 {
		phase = -1
	}

	return phase * cg / math.Sqrt(2*j3+1)
}
