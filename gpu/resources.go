package gpu

// Releaser is implemented by objects that own driver resources.
type Releaser interface {
	Release()
}

// Resources tracks driver-owned objects and releases them in reverse
// creation order.
type Resources struct {
	list     []Releaser
	released bool
}

// Track a resource. Resources tracked after Release has been called are
// released immediately.
func (r *Resources) Track(res Releaser) {
	if r.released {
		res.Release()
		return
	}
	r.list = append(r.list, res)
}

// Get the number of tracked resources.
func (r *Resources) Len() int {
	return len(r.list)
}

// Release all tracked resources. Calling Release more than once has no effect.
func (r *Resources) Release() {
	if r.released {
		return
	}
	r.released = true
	for i := len(r.list) - 1; i >= 0; i-- {
		r.list[i].Release()
	}
	r.list = nil
}
