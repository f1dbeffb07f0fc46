package snap

// Provider enumerates the snap targets for the current display geometry and
// selects between them. Implementations must return targets ordered by
// strictly increasing position, with a dismiss-start target first and a
// dismiss-end target last.
type Provider interface {
	// Targets returns the ordered target sequence.
	Targets() []Target

	// Nearest selects the target the divider should settle at when released
	// at position with the given axis velocity in px/s. hardDismiss lowers
	// the bar for snapping onto a dismiss target.
	Nearest(position int, velocity float64, hardDismiss bool) Target

	// DismissFraction describes how far position has progressed from the
	// outermost split target toward the corresponding dismiss target.
	// Values below 0 or above 1 may be returned for positions outside the
	// dismiss range; callers clamp.
	DismissFraction(position int) float64

	FirstSplitTarget() Target
	LastSplitTarget() Target
	MiddleTarget() Target
	DismissStartTarget() Target
	DismissEndTarget() Target

	// NextTarget returns the target following t in the sequence, or t
	// itself when t is the last target or unknown.
	NextTarget(t Target) Target
	// PreviousTarget returns the target preceding t in the sequence, or t
	// itself when t is the first target or unknown.
	PreviousTarget(t Target) Target

	// ClosestDismissTarget returns whichever dismiss target is nearer to
	// position.
	ClosestDismissTarget(position int) Target
}
