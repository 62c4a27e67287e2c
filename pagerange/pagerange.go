// Package pagerange parses textual page selections like "1-3,5" into
// concrete lists of 1-based page numbers.
package pagerange

import (
	"strconv"
	"strings"

	"github.com/pagesaw/pagesaw/types"
)

// Parse expands a comma-separated selection into page numbers, validated
// against totalPages. Tokens are either a single number or an inclusive
// range "A-B". Whitespace around tokens is ignored and empty tokens are
// skipped. Output follows token order; range tokens expand ascending;
// duplicates are preserved exactly as written.
func Parse(selection string, totalPages int) ([]int, error) {
	var pages []int
	for _, token := range strings.Split(selection, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if strings.Contains(token, "-") {
			expanded, err := parseRange(token, totalPages)
			if err != nil {
				return nil, err
			}
			pages = append(pages, expanded...)
			continue
		}
		page, err := strconv.Atoi(token)
		if err != nil {
			return nil, types.Errorf(types.ErrCodeInvalidPageNumber, "Invalid page number: %s", token)
		}
		if page < 1 || page > totalPages {
			return nil, types.Errorf(types.ErrCodeInvalidPageNumber, "Page out of bounds: %s", token)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func parseRange(token string, totalPages int) ([]int, error) {
	parts := strings.SplitN(token, "-", 2)
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, types.Errorf(types.ErrCodeInvalidRange, "Invalid range: %s", token)
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, types.Errorf(types.ErrCodeInvalidRange, "Invalid range: %s", token)
	}
	if !(1 <= start && start <= end && end <= totalPages) {
		return nil, types.Errorf(types.ErrCodeInvalidRange, "Page range out of bounds: %s", token)
	}
	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages, nil
}
