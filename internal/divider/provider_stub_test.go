package divider

import (
	"math"

	"github.com/bnema/divvy/internal/snap"
)

// stubProvider is a fixed target sequence for pipeline and engine tests:
// dismiss-start at 0, splits at 400 and 800, dismiss-end at 1200 on a
// 1200x800 display.
type stubProvider struct {
	targets []snap.Target

	// nearest overrides target selection when set.
	nearest func(position int, velocity float64, hardDismiss bool) snap.Target
}

func newStubProvider() *stubProvider {
	return &stubProvider{
		targets: []snap.Target{
			{Position: 0, Flag: snap.FlagDismissStart},
			{Position: 400},
			{Position: 800},
			{Position: 1200, Flag: snap.FlagDismissEnd},
		},
	}
}

func (p *stubProvider) Targets() []snap.Target { return p.targets }

func (p *stubProvider) splits() []snap.Target {
	var out []snap.Target
	for _, t := range p.targets {
		if t.Flag == snap.FlagNone {
			out = append(out, t)
		}
	}
	return out
}

func (p *stubProvider) FirstSplitTarget() snap.Target { return p.splits()[0] }

func (p *stubProvider) LastSplitTarget() snap.Target {
	s := p.splits()
	return s[len(s)-1]
}

func (p *stubProvider) MiddleTarget() snap.Target {
	s := p.splits()
	return s[len(s)/2]
}

func (p *stubProvider) DismissStartTarget() snap.Target { return p.targets[0] }

func (p *stubProvider) DismissEndTarget() snap.Target { return p.targets[len(p.targets)-1] }

func (p *stubProvider) NextTarget(t snap.Target) snap.Target {
	if i := p.indexOf(t); i >= 0 && i < len(p.targets)-1 {
		return p.targets[i+1]
	}
	return t
}

func (p *stubProvider) PreviousTarget(t snap.Target) snap.Target {
	if i := p.indexOf(t); i > 0 {
		return p.targets[i-1]
	}
	return t
}

func (p *stubProvider) Nearest(position int, velocity float64, hardDismiss bool) snap.Target {
	if p.nearest != nil {
		return p.nearest(position, velocity, hardDismiss)
	}
	best := p.targets[0]
	bestDistance := math.MaxFloat64
	for _, t := range p.targets {
		if d := math.Abs(float64(position - t.Position)); d < bestDistance {
			bestDistance = d
			best = t
		}
	}
	return best
}

func (p *stubProvider) DismissFraction(position int) float64 {
	first := p.FirstSplitTarget().Position
	last := p.LastSplitTarget().Position
	switch {
	case position < first:
		return 1 - float64(position)/float64(first)
	case position > last:
		return float64(position-last) / float64(p.DismissEndTarget().Position-last)
	default:
		return 0
	}
}

func (p *stubProvider) ClosestDismissTarget(position int) snap.Target {
	start := p.DismissStartTarget()
	end := p.DismissEndTarget()
	if position-start.Position <= end.Position-position {
		return start
	}
	return end
}

func (p *stubProvider) indexOf(t snap.Target) int {
	for i, candidate := range p.targets {
		if candidate == t {
			return i
		}
	}
	return -1
}
