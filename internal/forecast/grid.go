package forecast

import (
	"encoding/json"
	"fmt"

	coinmath "github.com/philipbinhu/Stock/internal/math"
)

// Grid returns n points covering [0,1) with step 1/n.
func Grid(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	xx := make([]float64, n)
	for i := range xx {
		xx[i] = float64(i) / float64(n)
	}
	return xx
}

// QueryGrid returns the training grid extended by one step, covering [0,1+1/n).
// It is empty for n <= 0.
func QueryGrid(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	xx := make([]float64, n+1)
	for i := range xx {
		xx[i] = float64(i) / float64(n)
	}
	return xx
}

// Ordering defines how the loaded values are assigned to the training grid.
type Ordering int

const (
	// Reverse assigns the values in reverse load order.
	// Sources list the most recent value first, so the grid follows time.
	Reverse Ordering = iota
	// AsLoaded assigns the values in load order.
	AsLoaded
)

var orderings = map[Ordering]string{
	Reverse:  "reverse",
	AsLoaded: "as-loaded",
}

// Targets arranges the values for the training grid.
func (o Ordering) Targets(y []float64) []float64 {
	if o == AsLoaded {
		yy := make([]float64, len(y))
		copy(yy, y)
		return yy
	}
	return coinmath.Reverse(y)
}

func (o Ordering) String() string {
	if s, ok := orderings[o]; ok {
		return s
	}
	return fmt.Sprintf("ordering(%d)", int(o))
}

// ParseOrdering parses the ordering from its name.
func ParseOrdering(s string) (Ordering, error) {
	for o, name := range orderings {
		if name == s {
			return o, nil
		}
	}
	return Reverse, fmt.Errorf("unknown ordering '%s'", s)
}

func (o Ordering) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *Ordering) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	oo, err := ParseOrdering(s)
	if err != nil {
		return err
	}
	*o = oo
	return nil
}
