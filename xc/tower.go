// tower.go --  This file is part of goXC project.
// Mirzaeva Irina, 2023
//
//	goXC is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------

package xc

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Tower is a value together with its partial derivatives with respect to
// Dim() coordinates, up to Order. Derivative slots above Order are nil,
// so reading them is a visible defect rather than stale data.
//
// The third derivative tensor is stored in full, row major, and kept
// symmetric by the tower operations.
type Tower struct {
	Order Order
	Val   float64
	Grad  []float64
	Hess  *mat.SymDense
	Third []float64

	dim int
}

// NewTower returns a tower with value val and all derivatives zero.
func NewTower(dim int, order Order, val float64) Tower {
	t := Tower{Order: order, Val: val, dim: dim}
	if order >= OrderVxc {
		t.Grad = make([]float64, dim)
	}
	if order >= OrderFxc {
		t.Hess = mat.NewSymDense(dim, nil)
	}
	if order >= OrderKxc {
		t.Third = make([]float64, dim*dim*dim)
	}
	return t
}

// Constant is NewTower under another name, for readability at call sites.
func Constant(dim int, order Order, val float64) Tower {
	return NewTower(dim, order, val)
}

// Variable returns the tower of coordinate idx itself, evaluated at val.
func Variable(dim, idx int, order Order, val float64) Tower {
	t := NewTower(dim, order, val)
	if order >= OrderVxc {
		t.Grad[idx] = 1
	}
	return t
}

func (t Tower) Dim() int { return t.dim }

func (t Tower) D1(i int) float64 { return t.Grad[i] }

func (t Tower) D2(i, j int) float64 { return t.Hess.At(i, j) }

func (t Tower) D3(i, j, k int) float64 { return t.Third[(i*t.dim+j)*t.dim+k] }

// SetD3 writes v into every permutation of (i, j, k).
func (t Tower) SetD3(i, j, k int, v float64) {
	n := t.dim
	t.Third[(i*n+j)*n+k] = v
	t.Third[(i*n+k)*n+j] = v
	t.Third[(j*n+i)*n+k] = v
	t.Third[(j*n+k)*n+i] = v
	t.Third[(k*n+i)*n+j] = v
	t.Third[(k*n+j)*n+i] = v
}

// Truncate returns a copy of t limited to order.
func (t Tower) Truncate(order Order) Tower {
	if order > t.Order {
		order = t.Order
	}
	r := NewTower(t.dim, order, t.Val)
	if order >= OrderVxc {
		copy(r.Grad, t.Grad)
	}
	if order >= OrderFxc {
		r.Hess.CopySym(t.Hess)
	}
	if order >= OrderKxc {
		copy(r.Third, t.Third)
	}
	return r
}

// Compose returns the tower of f(u_1(y), ..., u_m(y)) where f is a tower
// over the m inner values and inner[a] is the tower of u_a over y.
// Every path from y to f is summed:
//
//	g_k   = f_a u_k
//	g_kl  = f_ab u_k u_l + f_a u_kl
//	g_klm = f_abc u_k u_l u_m + f_ab (u_kl u_m + u_km u_l + u_lm u_k) + f_a u_klm
//
// Terms with a zero factor are dropped and overflow stops at ±Saturated,
// so a saturated derivative of f reaches only the slots it feeds.
//
// The result order is the lowest order among f and the inner towers.
func Compose(f Tower, inner []Tower) Tower {
	if len(inner) != f.dim {
		panic("xc: tower composition dimension mismatch")
	}
	order := f.Order
	ny := inner[0].dim
	for _, u := range inner {
		if u.Order < order {
			order = u.Order
		}
		if u.dim != ny {
			panic("xc: inner towers live in different spaces")
		}
	}
	g := NewTower(ny, order, f.Val)
	if order < OrderVxc {
		return g
	}
	for k := 0; k < ny; k++ {
		var v float64
		for a, u := range inner {
			v = satAdd(v, satMul(f.Grad[a], u.Grad[k]))
		}
		g.Grad[k] = v
	}
	if order < OrderFxc {
		return g
	}

	for k := 0; k < ny; k++ {
		for l := k; l < ny; l++ {
			var v float64
			for a, ua := range inner {
				v = satAdd(v, satMul(f.Grad[a], ua.D2(k, l)))
				for b, ub := range inner {
					v = satAdd(v, satMul(f.D2(a, b), satMul(ua.Grad[k], ub.Grad[l])))
				}
			}
			g.Hess.SetSym(k, l, v)
		}
	}
	if order < OrderKxc {
		return g
	}

	for k := 0; k < ny; k++ {
		for l := k; l < ny; l++ {
			for m := l; m < ny; m++ {
				var v float64
				for a, ua := range inner {
					v = satAdd(v, satMul(f.Grad[a], ua.D3(k, l, m)))
					for b, ub := range inner {
						if fab := f.D2(a, b); fab != 0 {
							v = satAdd(v, satMul(fab, satMul(ua.D2(k, l), ub.Grad[m])))
							v = satAdd(v, satMul(fab, satMul(ua.D2(k, m), ub.Grad[l])))
							v = satAdd(v, satMul(fab, satMul(ua.D2(l, m), ub.Grad[k])))
						}
						for c, uc := range inner {
							if fabc := f.D3(a, b, c); fabc != 0 {
								v = satAdd(v, satMul(fabc, satMul(ua.Grad[k], satMul(ub.Grad[l], uc.Grad[m]))))
							}
						}
					}
				}
				g.SetD3(k, l, m, v)
			}
		}
	}
	return g
}

// clamp maps values beyond ±Saturated, infinities included, onto the
// sentinel. NaN passes through.
func clamp(v float64) float64 {
	switch {
	case v > Saturated:
		return Saturated
	case v < -Saturated:
		return -Saturated
	}
	return v
}

// satMul is a*b with 0*x = 0 for every x and saturation on overflow.
func satMul(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	return clamp(a * b)
}

func satAdd(a, b float64) float64 { return clamp(a + b) }

// saturate clamps every derivative slot of t in place.
func (t Tower) saturate() {
	for i, v := range t.Grad {
		t.Grad[i] = clamp(v)
	}
	if t.Hess != nil {
		raw := t.Hess.RawSymmetric()
		for i, v := range raw.Data {
			raw.Data[i] = clamp(v)
		}
	}
	for i, v := range t.Third {
		t.Third[i] = clamp(v)
	}
}

// Apply composes the univariate function with derivatives
// d = [f(u), f'(u), f''(u), f'''(u)] with the tower u.
func Apply(u Tower, d [4]float64) Tower {
	f := NewTower(1, u.Order, d[0])
	if u.Order >= OrderVxc {
		f.Grad[0] = d[1]
	}
	if u.Order >= OrderFxc {
		f.Hess.SetSym(0, 0, d[2])
	}
	if u.Order >= OrderKxc {
		f.Third[0] = d[3]
	}
	return Compose(f, []Tower{u})
}

// Mul returns the tower of a*b.
func Mul(a, b Tower) Tower {
	order := min(a.Order, b.Order)
	f := NewTower(2, order, a.Val*b.Val)
	if order >= OrderVxc {
		f.Grad[0] = b.Val
		f.Grad[1] = a.Val
	}
	if order >= OrderFxc {
		f.Hess.SetSym(0, 1, 1)
	}
	return Compose(f, []Tower{a, b})
}

// Add returns the tower of the sum of ts.
func Add(ts ...Tower) Tower {
	order := ts[0].Order
	for _, t := range ts {
		order = min(order, t.Order)
	}
	r := NewTower(ts[0].dim, order, 0)
	for _, t := range ts {
		r.Val += t.Val
		if order >= OrderVxc {
			floats.Add(r.Grad, t.Grad)
		}
		if order >= OrderFxc {
			r.Hess.AddSym(r.Hess, t.Hess)
		}
		if order >= OrderKxc {
			floats.Add(r.Third, t.Third)
		}
	}
	r.saturate()
	r.Val = clamp(r.Val)
	return r
}

// Sub returns the tower of a-b.
func Sub(a, b Tower) Tower {
	return Add(a, b.Scale(-1))
}

// Scale returns the tower of c*t.
func (t Tower) Scale(c float64) Tower {
	r := t.Truncate(t.Order)
	r.Val *= c
	if r.Order >= OrderVxc {
		floats.Scale(c, r.Grad)
	}
	if r.Order >= OrderFxc {
		r.Hess.ScaleSym(c, r.Hess)
	}
	if r.Order >= OrderKxc {
		floats.Scale(c, r.Third)
	}
	r.saturate()
	r.Val = clamp(r.Val)
	return r
}

// Shift returns the tower of t+c.
func (t Tower) Shift(c float64) Tower {
	r := t.Truncate(t.Order)
	r.Val += c
	return r
}

func Inv(u Tower) Tower {
	x := u.Val
	v := 1 / x
	return Apply(u, [4]float64{v, -v * v, 2 * v * v * v, -6 * v * v * v * v})
}

func Sqrt(u Tower) Tower {
	x := u.Val
	s := math.Sqrt(x)
	return Apply(u, [4]float64{s, 0.5 / s, -0.25 / (s * x), 0.375 / (s * x * x)})
}

// Cbrt uses math.Cbrt so that negative arguments keep their sign.
func Cbrt(u Tower) Tower {
	x := u.Val
	c := math.Cbrt(x)
	return Apply(u, [4]float64{c, c / (3 * x), -2 * c / (9 * x * x), 10 * c / (27 * x * x * x)})
}

func Pow(u Tower, p float64) Tower {
	x := u.Val
	return Apply(u, [4]float64{
		math.Pow(x, p),
		p * math.Pow(x, p-1),
		p * (p - 1) * math.Pow(x, p-2),
		p * (p - 1) * (p - 2) * math.Pow(x, p-3),
	})
}

func Exp(u Tower) Tower {
	e := math.Exp(u.Val)
	return Apply(u, [4]float64{e, e, e, e})
}

func Log(u Tower) Tower {
	x := u.Val
	return Apply(u, [4]float64{math.Log(x), 1 / x, -1 / (x * x), 2 / (x * x * x)})
}

func Asinh(u Tower) Tower {
	x := u.Val
	s := math.Sqrt(1 + x*x)
	s3 := s * s * s
	return Apply(u, [4]float64{math.Asinh(x), 1 / s, -x / s3, (2*x*x - 1) / (s3 * s * s)})
}
