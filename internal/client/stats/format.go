package stats

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatXP renders xp in kilobytes: whole numbers from 1000 kB, one decimal
// from 10 kB, two below that. Trailing fractional zeros are dropped.
func FormatXP(xp int64) string {
	kilo := float64(xp) / 1000

	var s string
	switch {
	case kilo >= 1000:
		s = strconv.FormatFloat(jsRound(kilo), 'f', 0, 64)
	case kilo >= 10:
		s = toFixed(kilo, 1)
	default:
		s = toFixed(kilo, 2)
	}

	return trimFraction(s) + " kB"
}

// AuditRatio is the larger of up and down over the smaller, to one
// decimal. Either side being zero gives "0.0".
func AuditRatio(totalUp, totalDown float64) string {
	if totalUp <= 0 || totalDown <= 0 {
		return "0.0"
	}
	return toFixed(math.Max(totalUp, totalDown)/math.Min(totalUp, totalDown), 1)
}

// FormatServerAuditRatio renders the backend's own ratio to one decimal,
// dropping a trailing ".0".
func FormatServerAuditRatio(r float64) string {
	f, err := strconv.ParseFloat(toFixed(r, 1), 64)
	if err != nil {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatMB renders an audit amount in megabytes with two decimals.
func FormatMB(v float64) string {
	return toFixed(v/1e6, 2)
}

// UpShare is the done fraction of all audit activity, 0 when there is none.
func UpShare(totalUp, totalDown float64) float64 {
	total := totalUp + totalDown
	if total == 0 {
		return 0
	}
	return totalUp / total
}

func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// toFixed formats x with d decimals, rounding the exact binary value of x
// half away from zero.
func toFixed(x float64, d int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	neg := x < 0
	r := new(big.Rat).SetFloat64(math.Abs(x))
	r.Mul(r, new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d)), nil)))
	r.Add(r, big.NewRat(1, 2))
	n := new(big.Int).Quo(r.Num(), r.Denom())

	digits := n.String()
	if d > 0 {
		if len(digits) <= d {
			digits = strings.Repeat("0", d-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-d] + "." + digits[len(digits)-d:]
	}
	if neg {
		return "-" + digits
	}
	return digits
}

// jsRound rounds half toward positive infinity.
func jsRound(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	f := math.Floor(x)
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}
