// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seats

import "fmt"

// SeatLimitError reports a rejected invite batch, carrying the number of
// seats still available so the caller can surface it.
type SeatLimitError struct {
	Remaining int
}

func (e *SeatLimitError) Error() string {
	return fmt.Sprintf("seat limit exceeded: %d seat(s) available", e.Remaining)
}
