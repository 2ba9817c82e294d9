package abutment

import "sync"

// DesignAll designs every abutment kind from the same input. The kinds share
// nothing, so each runs in its own goroutine; results keep the order of Kinds.
func DesignAll(in Input) ([]Result, error) {
	results := make([]Result, len(Kinds))
	errs := make([]error, len(Kinds))

	var wg sync.WaitGroup
	for i, kind := range Kinds {
		wg.Add(1)
		go func(i int, kind Kind) {
			defer wg.Done()
			results[i], errs[i] = Design(kind, in)
		}(i, kind)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
