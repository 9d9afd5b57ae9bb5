package producer

import (
	"fmt"
	"strings"

	"github.com/kbukum/pariter/errors"
)

// CostPolicy decides how Zip combines the cost estimates of its two sides.
type CostPolicy int

const (
	// CostSum adds both estimates. Default.
	CostSum CostPolicy = iota
	// CostMax takes the larger estimate.
	CostMax
)

// Combine merges the cost estimates of two zipped producers.
func (c CostPolicy) Combine(a, b float64) float64 {
	if c == CostMax {
		return max(a, b)
	}
	return a + b
}

func (c CostPolicy) String() string {
	switch c {
	case CostSum:
		return "sum"
	case CostMax:
		return "max"
	default:
		return fmt.Sprintf("CostPolicy(%d)", int(c))
	}
}

// ParseCostPolicy parses "sum" or "max", case-insensitively. The empty
// string selects CostSum.
func ParseCostPolicy(s string) (CostPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sum":
		return CostSum, nil
	case "max":
		return CostMax, nil
	default:
		return CostSum, errors.InvalidInput("cost_policy", fmt.Sprintf("unknown cost policy %q, want sum or max", s))
	}
}
