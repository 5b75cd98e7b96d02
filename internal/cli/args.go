package cli

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// InferValue turns a command line argument into a rule value: "true" and
// "false" become booleans, numeric literals become json.Number (including
// ones beyond the float64 range such as 1e400), and anything else stays
// text. Quote a literal ("'10'") to force text.
func InferValue(arg string) any {
	if len(arg) >= 2 {
		first, last := arg[0], arg[len(arg)-1]
		if (first == '\'' || first == '"') && first == last {
			return arg[1 : len(arg)-1]
		}
	}

	switch strings.ToLower(arg) {
	case "true":
		return true
	case "false":
		return false
	}

	if _, err := strconv.ParseFloat(arg, 64); (err == nil || errors.Is(err, strconv.ErrRange)) && !isSpecialFloat(arg) {
		return json.Number(arg)
	}
	return arg
}

// isSpecialFloat reports literals ParseFloat accepts that are not numbers a
// user types on purpose.
func isSpecialFloat(arg string) bool {
	s := strings.ToLower(strings.TrimLeft(arg, "+-"))
	return s == "inf" || s == "infinity" || s == "nan"
}
