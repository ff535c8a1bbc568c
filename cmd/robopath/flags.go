package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseCoord parses "row,col" into a pair.
func parseCoord(s string) ([2]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return [2]int{}, fmt.Errorf("coordinate %q: want row,col", s)
	}
	var out [2]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return [2]int{}, fmt.Errorf("coordinate %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}
