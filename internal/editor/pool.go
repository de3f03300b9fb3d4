package editor

import "sync"

// fanOut drains paths across a fixed pool of workers, calling fn exactly
// once per path. It returns once paths is closed and every in-flight call
// has finished. Workers share nothing mutable, so no ordering is imposed
// across paths.
func fanOut(workers int, paths <-chan string, fn func(string)) {
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range paths {
				fn(p)
			}
		}()
	}
	wg.Wait()
}
