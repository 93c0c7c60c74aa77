package runner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseMarkerOutput extracts a duration in microseconds from one invocation's
// stdout. The first line containing the marker label is split on whitespace
// and its second token must parse as a float, matching output of the form
//
//	KeyGen: 67.74 us
//
// The returned error carries the reason only; the runner wraps it with the
// configuration and invocation context.
func ParseMarkerOutput(output, marker string) (float64, error) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, marker) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, fmt.Errorf("marker line %q has no value token", strings.TrimSpace(line))
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return 0, fmt.Errorf("marker value %q is not a number", fields[1])
		}
		return v, nil
	}
	return 0, fmt.Errorf("no line containing marker %q", marker)
}

// ParseJSONOutput extracts a duration in microseconds from JSON stdout using
// a gjson path, e.g. "results.keygen_us". For harnesses that emit structured
// output instead of marker lines.
func ParseJSONOutput(output, path string) (float64, error) {
	if !gjson.Valid(output) {
		return 0, fmt.Errorf("stdout is not valid JSON")
	}
	res := gjson.Get(output, path)
	if !res.Exists() {
		return 0, fmt.Errorf("JSON path %q not found", path)
	}
	if res.Type != gjson.Number {
		return 0, fmt.Errorf("JSON path %q is not numeric (got %s)", path, res.Type)
	}
	return res.Float(), nil
}
