package concurrent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsync(t *testing.T) {
	count := make(chan int, 3)
	dones := make([]<-chan struct{}, 3)
	for i := 0; i < 3; i++ {
		i := i
		dones[i] = Async(func() {
			count <- i
		})
	}
	for _, done := range dones {
		<-done
	}
	close(count)
	sum := 0
	for c := range count {
		sum += c
	}
	assert.Equal(t, 3, sum)
}
