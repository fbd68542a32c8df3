// ABOUTME: Shared SQL clause builders for date windows.
package storage

import (
	"strings"

	"github.com/harperreed/fitlog/internal/models"
)

// rangeWhere builds conditions on column for an inclusive date window.
// extra conditions are ANDed in. Returns "" when there is nothing to filter.
func rangeWhere(column string, rng models.DateRange, extra ...string) (string, []any) {
	conds := append([]string(nil), extra...)
	var args []any
	if rng.Start != nil {
		conds = append(conds, column+" >= ?")
		args = append(args, formatTime(*rng.Start))
	}
	if rng.End != nil {
		conds = append(conds, column+" <= ?")
		args = append(args, formatTime(*rng.End))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func join(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
