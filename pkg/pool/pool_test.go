package pool

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func square(i int) interface{} { return i * i }

func TestParallelize(t *testing.T) {
	for _, p := range []*Pool{nil, NewPool(1), NewPool(4)} {
		res := p.Parallelize(100, square)
		if assert.Len(t, res, 100) {
			for i, r := range res {
				assert.Equal(t, i*i, r)
			}
		}
		assert.Nil(t, p.Parallelize(0, square))
		p.TearDown()
	}
}

func TestMap(t *testing.T) {
	p := NewPool(3)
	defer p.TearDown()

	got := Map(p, 10, func(i int) uint64 { return uint64(i) + 1 })
	assert.Equal(t, []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, got)
	assert.Equal(t, 3, p.Workers())

	var nilPool *Pool
	assert.Equal(t, 1, nilPool.Workers())
	assert.Equal(t, []string{"a", "b"}, Map(nilPool, 2, func(i int) string { return string(rune('a' + i)) }))
}

func TestTearDownStopsWorkers(t *testing.T) {
	before := runtime.NumGoroutine()
	for round := 0; round < 10; round++ {
		p := NewPool(8)
		// fewer jobs than workers, then more
		p.Parallelize(3, square)
		p.Parallelize(50, square)
		p.TearDown()
	}
	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, 2*time.Second, 10*time.Millisecond)
}

func TestParallelizeConcurrentCallers(t *testing.T) {
	p := NewPool(4)
	defer p.TearDown()

	done := make(chan []interface{}, 8)
	for c := 0; c < 8; c++ {
		go func() { done <- p.Parallelize(64, square) }()
	}
	for c := 0; c < 8; c++ {
		res := <-done
		if assert.Len(t, res, 64) {
			for i, r := range res {
				assert.Equal(t, i*i, r)
			}
		}
	}
}
