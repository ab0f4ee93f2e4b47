// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package feed

import (
	"math/rand"
	"sync"
	"time"
)

// RandSource yields uniform values in [0, 1).
type RandSource interface {
	Float64() float64
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// NewRandSource returns a goroutine-safe source seeded with seed.
func NewRandSource(seed int64) RandSource {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

var defaultSource = NewRandSource(time.Now().UnixNano())

func DefaultRand() RandSource {
	return defaultSource
}

func orDefault(rng RandSource) RandSource {
	if rng == nil {
		return defaultSource
	}
	return rng
}

// intn returns a value in [0, n).
func intn(rng RandSource, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(rng.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
