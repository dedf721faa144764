package factor

import "github.com/ptrawinski/gofactor/bigint"

// pollardRhoBatchSize bounds how many |x-y| differences get multiplied
// together before each intermediate gcd check, grounded on
// PollardRho.h's batchIterSize.
const pollardRhoBatchSize = 100

// PollardRhoBrent attempts to split n via Brent's cycle-detection
// variant of Pollard's rho over f(x) = x^2+1 mod n, batching |x-y|
// differences into a running product gcd-checked once per batch, with
// single-step backtracking to locate the divisor inside a batch whose
// product degenerates to zero. Grounded on PollardRho.h's
// pollardRhoBrent. Returns 1 on maxIterCount exhaustion.
//
// x, y, and d are kept in Montgomery form throughout — f(x)=x^2+1 stays
// correct there since squaring is Montgomery multiplication and "+1"
// commutes with the Montgomery map (ModAdd's own doc comment notes this
// same fact) — and the final gcd(d, n) is taken directly on the
// Montgomery-form accumulator for the same reason ecm.factorFromZ skips
// the conversion: gcd(aR mod n, n) == gcd(a, n) whenever gcd(R, n) == 1.
func PollardRhoBrent(modCtx *bigint.MontgomeryCtx, maxIterCount uint64) []uint64 {
	b := modCtx.B
	n := modCtx.Mod
	one := plainOne(b)

	oneConst := modCtx.GetConstant(1)
	x := modCtx.GetConstant(2)
	d := append([]uint64(nil), oneConst...)

	y := make([]uint64, b)
	xs := make([]uint64, b)
	dtmp := make([]uint64, b)
	g := make([]uint64, b)

	var iterCount uint64

	for {
		r := uint64(1)
		degenerate := false
		for {
			copy(y, x)
			for i := uint64(0); i < r; i++ {
				modCtx.MontSqr(x, x)
				bigint.ModAdd(modCtx, x, x, oneConst)
			}
			iterCount += r

			k := uint64(0)
			for k < r {
				copy(xs, x)
				end := minU64(pollardRhoBatchSize, r-k)
				for i := uint64(0); i < end; i++ {
					modCtx.MontSqr(x, x)
					bigint.ModAdd(modCtx, x, x, oneConst)
					bigint.Sub(dtmp, x, y)
					modCtx.MontMul(d, d, dtmp)
				}
				iterCount += end

				if !bigint.IsZero(d) {
					bigint.GCD(g, d, n)
					if bigint.Cmp(g, one) != 0 {
						return g
					}
				} else {
					for i := uint64(0); i < end-1; i++ {
						modCtx.MontSqr(xs, xs)
						bigint.ModAdd(modCtx, xs, xs, oneConst)
						bigint.Sub(d, xs, y)
						iterCount++
						if bigint.IsZero(d) {
							break
						}
						bigint.GCD(g, d, n)
						if bigint.Cmp(g, one) != 0 {
							return g
						}
					}
					if iterCount >= maxIterCount {
						return one
					}
					degenerate = true
					break
				}
				if iterCount >= maxIterCount {
					return one
				}
				k += end
			}
			if degenerate || bigint.IsZero(d) {
				break
			}
			r *= 2
		}
		bigint.ModAdd(modCtx, x, x, oneConst) // new starting x
	}
}
