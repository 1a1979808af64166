package market

// DerivePriority maps an impact onto the priority label shown and filtered on.
// Priority is never stored; no impact derives to PriorityHigh.
func DerivePriority(impact Impact) Priority {
	switch impact {
	case ImpactHigh:
		return PriorityUrgent
	case ImpactMedium:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
