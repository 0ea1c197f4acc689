package fire

import "math/rand"

// sparkZone is the number of cells near the strip origin eligible for
// spark injection.
const sparkZone = 7

// Simulator owns the per-cell heat field and advances it one frame per
// Step call. The heat array persists across frames; only Step mutates it.
type Simulator struct {
	heat     []uint8
	reversed bool
	rng      *rand.Rand
}

// NewSimulator creates a simulator for a strip of the given cell count.
// The RNG is injected so runs are reproducible under a fixed seed.
func NewSimulator(cells int, reversed bool, rng *rand.Rand) *Simulator {
	if cells < 3 {
		cells = 3
	}
	return &Simulator{
		heat:     make([]uint8, cells),
		reversed: reversed,
		rng:      rng,
	}
}

func (s *Simulator) Cells() int {
	return len(s.heat)
}

// Heat returns a copy of the current heat field.
func (s *Simulator) Heat() []uint8 {
	h := make([]uint8, len(s.heat))
	copy(h, s.heat)
	return h
}

// SetHeat overwrites the heat field, truncating or zero-padding to the
// strip length. Used to seed known states.
func (s *Simulator) SetHeat(h []uint8) {
	for i := range s.heat {
		if i < len(h) {
			s.heat[i] = h[i]
		} else {
			s.heat[i] = 0
		}
	}
}

// Step advances the field by one frame: cooling, upward diffusion,
// spark injection, then color mapping. All arithmetic saturates, so no
// cell ever leaves [0,255].
func (s *Simulator) Step(sparking, cooling uint8) Frame {
	s.cool(cooling)
	s.diffuse()
	s.spark(sparking)
	return s.render()
}

func (s *Simulator) cool(cooling uint8) {
	n := len(s.heat)
	span := int(cooling)*10/n + 2
	for i := range s.heat {
		drop := s.rng.Intn(span)
		if drop > 255 {
			// Very short strips can push the draw past a full cell.
			drop = 255
		}
		s.heat[i] = qsub8(s.heat[i], uint8(drop))
	}
}

// diffuse smears heat toward higher indices. Cells 0 and 1 are left
// alone so sparking near the origin reads as flames rising from the
// base; the asymmetry is intentional.
func (s *Simulator) diffuse() {
	for k := len(s.heat) - 1; k >= 2; k-- {
		s.heat[k] = uint8((int(s.heat[k-1]) + 2*int(s.heat[k-2])) / 3)
	}
}

func (s *Simulator) spark(sparking uint8) {
	if s.rng.Intn(255) >= int(sparking) {
		return
	}
	zone := sparkZone
	if zone > len(s.heat) {
		zone = len(s.heat)
	}
	i := s.rng.Intn(zone)
	s.heat[i] = qadd8(s.heat[i], uint8(160+s.rng.Intn(96)))
}

func (s *Simulator) render() Frame {
	n := len(s.heat)
	frame := make(Frame, n)
	for i, h := range s.heat {
		pos := i
		if s.reversed {
			pos = n - 1 - i
		}
		frame[pos] = HeatColor(h)
	}
	return frame
}

// qsub8 subtracts with a floor of 0.
func qsub8(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

// qadd8 adds with a ceiling of 255.
func qadd8(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
