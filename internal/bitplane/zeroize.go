// internal/bitplane/zeroize.go
package bitplane

// Zeroize clears every plane in planes on all three grids.
func Zeroize(a, b, c *BitGrid, planes PlaneSet) error {
	return ZeroizeFunc(a, b, c, planes, nil)
}

// ZeroizeFunc is Zeroize with a hook called once per plane before it is cleared.
// Indices are checked up front so a bad set leaves the grids untouched.
func ZeroizeFunc(a, b, c *BitGrid, planes PlaneSet, hook func(p int)) error {
	if len(planes) == 0 {
		return nil
	}
	if err := sameShape(a, b, c); err != nil {
		return err
	}
	for _, p := range planes {
		if err := checkPlane(p); err != nil {
			return err
		}
	}
	grids := [Channels]*BitGrid{a, b, c}
	for _, p := range planes {
		if hook != nil {
			hook(p)
		}
		for _, g := range grids {
			for i := p; i < len(g.Bits); i += PlaneCount {
				g.Bits[i] = 0
			}
		}
	}
	return nil
}
