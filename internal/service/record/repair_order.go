package record

import (
	"context"
	"fmt"
)

// NextRepairOrderNumber returns the repair-order number the next history
// entry is expected to receive. It is a hint for the intake form; the
// number actually assigned comes back from the add operations.
func (s *Service) NextRepairOrderNumber(ctx context.Context) (int64, error) {
	next, err := s.history.NextID(ctx)
	if err != nil {
		return 0, fmt.Errorf("next repair order: %w", err)
	}
	return next, nil
}
