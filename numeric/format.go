package numeric

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Format renders a converted value as its canonical, untruncated text.
// Floats use the shortest representation that round-trips at their own
// width, so formatting is unambiguous per kind; this rendering is for
// presentation only and is never fed back into conversion logic.
func Format(v any) string {
	switch val := v.(type) {
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case *big.Int:
		return val.String()
	case *apd.Decimal:
		return val.String()
	}
	return fmt.Sprintf("%v", v)
}
