package event

// Summarize splits the event's SKUs into assigned and unassigned groups.
// Every assigned SKU is kept; unassigned SKUs are capped at limit
// (DefaultPreviewLimit when limit < 1) and the rest only counted.
func Summarize(ev *AssignmentEvent, limit int) Summary {
	if limit < 1 {
		limit = DefaultPreviewLimit
	}

	var s Summary
	if ev == nil {
		return s
	}

	s.Total = len(ev.Data.SKUs)
	for _, sku := range ev.Data.SKUs {
		if sku.IsAssigned {
			s.Assigned = append(s.Assigned, sku)
			continue
		}
		s.UnassignedCount++
		if len(s.Unassigned) < limit {
			s.Unassigned = append(s.Unassigned, sku)
		}
	}
	s.Remaining = s.UnassignedCount - len(s.Unassigned)

	return s
}
