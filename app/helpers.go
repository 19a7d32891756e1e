package app

import (
	"strconv"
	"strings"

	"github.com/iov-one/tokenomics/errors"
)

// parseAuditArg reads "<after>" or "<after>/<limit>".
func parseAuditArg(arg string) (after uint64, limit int, err error) {
	if arg == "" {
		return 0, 0, nil
	}
	chunks := strings.SplitN(arg, "/", 2)
	after, err = strconv.ParseUint(chunks[0], 10, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(errors.ErrInput, "audit offset %q", chunks[0])
	}
	if len(chunks) == 2 {
		limit, err = strconv.Atoi(chunks[1])
		if err != nil || limit < 0 {
			return 0, 0, errors.Wrapf(errors.ErrInput, "audit limit %q", chunks[1])
		}
	}
	return after, limit, nil
}
