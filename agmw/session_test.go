//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

package agmw

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umn-ece-sartorilabs/MOTION/p2p"
)

func newTestSessions(t *testing.T) (*Session, *Session) {
	t.Helper()

	c0, c1 := p2p.Pipe()

	var s1 *Session
	var err1 error
	done := make(chan struct{})
	go func() {
		s1, err1 = NewSession(c1, 1)
		close(done)
	}()
	s0, err0 := NewSession(c0, 0)
	<-done

	require.NoError(t, err0)
	require.NoError(t, err1)
	return s0, s1
}

// runBoth runs the argument program on both parties concurrently and
// returns their outputs.
func runBoth(t *testing.T, f func(s *Session) ([]uint8, error)) (
	[]uint8, []uint8) {
	t.Helper()

	s0, s1 := newTestSessions(t)
	defer s0.Close()
	defer s1.Close()

	var r0, r1 []uint8
	var e0, e1 error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		r0, e0 = f(s0)
	}()
	go func() {
		defer wg.Done()
		r1, e1 = f(s1)
	}()
	wg.Wait()

	require.NoError(t, e0)
	require.NoError(t, e1)
	return r0, r1
}

// shareFor issues the collective input call: the owner passes data,
// the other party a same-length zero placeholder.
func shareFor(s *Session, owner int, data []uint8) (Share, error) {
	if s.ID() != owner {
		data = make([]uint8, len(data))
	}
	return s.In(data, owner)
}

func TestInputReveal(t *testing.T) {
	v0 := []uint8{10, 20, 30, 255}
	v1 := []uint8{1, 2, 3, 4}

	f := func(s *Session) ([]uint8, error) {
		a, err := shareFor(s, 0, v0)
		if err != nil {
			return nil, err
		}
		b, err := shareFor(s, 1, v1)
		if err != nil {
			return nil, err
		}
		sum, err := s.Add(a, b)
		if err != nil {
			return nil, err
		}
		out, err := s.Out(sum)
		if err != nil {
			return nil, err
		}
		if err := s.Run(); err != nil {
			return nil, err
		}
		return out.Vector()
	}

	r0, r1 := runBoth(t, f)
	expected := []uint8{11, 22, 33, 3}
	require.Equal(t, expected, r0)
	require.Equal(t, expected, r1)
}

func TestMul(t *testing.T) {
	v0 := []uint8{2, 20, 0, 255}
	v1 := []uint8{3, 20, 100, 255}

	f := func(s *Session) ([]uint8, error) {
		a, err := shareFor(s, 0, v0)
		if err != nil {
			return nil, err
		}
		b, err := shareFor(s, 1, v1)
		if err != nil {
			return nil, err
		}
		prod, err := s.Mul(a, b)
		if err != nil {
			return nil, err
		}
		out, err := s.Out(prod)
		if err != nil {
			return nil, err
		}
		if err := s.Run(); err != nil {
			return nil, err
		}
		return out.Vector()
	}

	r0, r1 := runBoth(t, f)
	expected := make([]uint8, len(v0))
	for i := range v0 {
		expected[i] = v0[i] * v1[i]
	}
	require.Equal(t, expected, r0)
	require.Equal(t, expected, r1)
}

func TestGt(t *testing.T) {
	// Equality, strict orderings, and the 8-bit extremes.
	v0 := []uint8{50, 51, 49, 0, 255, 128, 127, 200}
	v1 := []uint8{50, 50, 50, 255, 0, 127, 128, 200}

	f := func(s *Session) ([]uint8, error) {
		a, err := shareFor(s, 0, v0)
		if err != nil {
			return nil, err
		}
		b, err := shareFor(s, 1, v1)
		if err != nil {
			return nil, err
		}
		gt, err := s.Gt(a, b)
		if err != nil {
			return nil, err
		}
		if gt.Kind() != Bit {
			return nil, errors.New("expected Bit share from Gt")
		}
		out, err := s.Out(gt)
		if err != nil {
			return nil, err
		}
		if err := s.Run(); err != nil {
			return nil, err
		}
		return out.Vector()
	}

	r0, r1 := runBoth(t, f)
	expected := make([]uint8, len(v0))
	for i := range v0 {
		if v0[i] > v1[i] {
			expected[i] = 1
		}
	}
	require.Equal(t, expected, r0)
	require.Equal(t, expected, r1)
}

func TestGtTimesValue(t *testing.T) {
	// The oblivious-conditional idiom: gt * x == max(0, x) when gt
	// tests the sign threshold.
	negFive, negOneTwentyEight := int8(-5), int8(-128)
	vals := []uint8{uint8(negFive), 0, 5, uint8(negOneTwentyEight), 127}

	f := func(s *Session) ([]uint8, error) {
		x, err := shareFor(s, 0, vals)
		if err != nil {
			return nil, err
		}
		thresh := make([]uint8, len(vals))
		if s.ID() == 0 {
			for i := range thresh {
				thresh[i] = 1 << 7
			}
		}
		tsh, err := s.In(thresh, 0)
		if err != nil {
			return nil, err
		}
		nonNeg, err := s.Gt(tsh, x)
		if err != nil {
			return nil, err
		}
		relu, err := s.Mul(nonNeg, x)
		if err != nil {
			return nil, err
		}
		out, err := s.Out(relu)
		if err != nil {
			return nil, err
		}
		if err := s.Run(); err != nil {
			return nil, err
		}
		return out.Vector()
	}

	r0, r1 := runBoth(t, f)
	expected := make([]uint8, len(vals))
	for i := range vals {
		if int8(vals[i]) >= 0 {
			expected[i] = vals[i]
		}
	}
	require.Equal(t, expected, r0)
	require.Equal(t, expected, r1)
}

func TestSimdify(t *testing.T) {
	v0 := []uint8{1, 2, 3, 4, 5}

	f := func(s *Session) ([]uint8, error) {
		a, err := shareFor(s, 0, v0)
		if err != nil {
			return nil, err
		}
		elems, err := s.Unsimdify(a)
		if err != nil {
			return nil, err
		}
		if len(elems) != len(v0) {
			return nil, errors.New("bad element count")
		}
		packed, err := s.Simdify(elems)
		if err != nil {
			return nil, err
		}
		out, err := s.Out(packed)
		if err != nil {
			return nil, err
		}
		if err := s.Run(); err != nil {
			return nil, err
		}
		return out.Vector()
	}

	r0, r1 := runBoth(t, f)
	require.Equal(t, v0, r0)
	require.Equal(t, v0, r1)
}

func TestShapeMismatch(t *testing.T) {
	s0, s1 := newTestSessions(t)
	defer s0.Close()
	defer s1.Close()

	a, err := s0.In([]uint8{1, 2, 3}, 0)
	require.NoError(t, err)
	b, err := s0.In([]uint8{1, 2}, 1)
	require.NoError(t, err)

	_, err = s0.Add(a, b)
	require.ErrorIs(t, err, ErrShapeMismatch)
	_, err = s0.Mul(a, b)
	require.ErrorIs(t, err, ErrShapeMismatch)
	_, err = s0.Gt(a, b)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSessionStateMachine(t *testing.T) {
	f := func(s *Session) ([]uint8, error) {
		a, err := shareFor(s, 0, []uint8{42})
		if err != nil {
			return nil, err
		}
		out, err := s.Out(a)
		if err != nil {
			return nil, err
		}

		// Results are unavailable until the program has run.
		if _, err := out.Vector(); !errors.Is(err, ErrNotExecuted) {
			return nil, errors.New("expected ErrNotExecuted")
		}

		if err := s.Run(); err != nil {
			return nil, err
		}

		// The session accepts no further work.
		if _, err := s.In([]uint8{1}, 0); !errors.Is(err, ErrSessionExecuted) {
			return nil, errors.New("expected ErrSessionExecuted from In")
		}
		if err := s.Run(); !errors.Is(err, ErrSessionExecuted) {
			return nil, errors.New("expected ErrSessionExecuted from Run")
		}
		return out.Vector()
	}

	r0, r1 := runBoth(t, f)
	require.Equal(t, []uint8{42}, r0)
	require.Equal(t, []uint8{42}, r1)
}

func TestInvalidParty(t *testing.T) {
	c0, _ := p2p.Pipe()
	_, err := NewSession(c0, 2)
	require.Error(t, err)
}

func TestDealerDeterminism(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}
	d0, err := newDealer(seed, 0)
	require.NoError(t, err)
	d1, err := newDealer(seed, 1)
	require.NoError(t, err)

	const n = 64

	a0, b0, c0 := d0.triple(n)
	a1, b1, c1 := d1.triple(n)
	a := addVec(a0, a1)
	b := addVec(b0, b1)
	require.Equal(t, mulVec(a, b), addVec(c0, c1))

	x0, y0, z0 := d0.bitTriple(n)
	x1, y1, z1 := d1.bitTriple(n)
	x := xorVec(x0, x1)
	y := xorVec(y0, y1)
	require.Equal(t, andVec(x, y), xorVec(z0, z1))

	r0, rbits0 := d0.a2bMask(n)
	r1, rbits1 := d1.a2bMask(n)
	r := addVec(r0, r1)
	for j := uint(0); j < 8; j++ {
		require.Equal(t, bit(r, j), xorVec(rbits0[j], rbits1[j]),
			"bit plane %d", j)
	}

	ar0, xr0 := d0.daBit(n)
	ar1, xr1 := d1.daBit(n)
	require.Equal(t, addVec(ar0, ar1), xorVec(xr0, xr1))
}
