package scrollbar

// Overflow tracks whether a container's content is taller than the container.
// It re-evaluates when the observed container size changes or when the
// owner signals that the content changed.
type Overflow struct {
	container   Container
	lastClient  float64
	observed    bool
	overflowing bool
	onChange    func(overflowing bool)
}

// NewOverflow returns a detector for c. onChange, if set, runs whenever the
// overflow state flips.
func NewOverflow(c Container, onChange func(overflowing bool)) *Overflow {
	o := &Overflow{container: c, onChange: onChange}
	o.check()
	return o
}

// Overflowing reports the last evaluated state.
func (o *Overflow) Overflowing() bool { return o.overflowing }

// Observe re-evaluates if the container's client height changed since the
// last observation.
func (o *Overflow) Observe() bool {
	if o.container == nil {
		return false
	}
	if o.observed && o.container.ClientHeight() == o.lastClient {
		return o.overflowing
	}
	return o.check()
}

// Invalidate forces a re-evaluation after an external content change.
func (o *Overflow) Invalidate() bool {
	return o.check()
}

func (o *Overflow) check() bool {
	if o.container == nil {
		return false
	}
	o.observed = true
	o.lastClient = o.container.ClientHeight()

	was := o.overflowing
	o.overflowing = o.container.ScrollHeight() > o.container.ClientHeight()
	if was != o.overflowing && o.onChange != nil {
		o.onChange(o.overflowing)
	}
	return o.overflowing
}
