package composition

import (
	"fmt"
	"sort"
	"strings"

	"cms-mapper/internal/entity"
)

// topoSort returns indices so that every node comes after its dependencies.
//
// depsFn(i) yields indices that must come before i. When several nodes are
// ready the smallest index is picked, so the result is deterministic. On a
// cycle the indices that could not be ordered are returned as stuck.
func topoSort(n int, depsFn func(i int) []int) (order, stuck []int, err error) {
	if n <= 0 {
		return nil, nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	for i := range out {
		sort.Ints(out[i])
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order = make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// keep ready sorted
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		for i := range n {
			if indeg[i] > 0 {
				stuck = append(stuck, i)
			}
		}

		return nil, stuck, ErrCycle
	}

	return order, nil, nil
}

// ValidateGraph orders content types so that every composition precedes the
// types composing it. Compositions outside the given set are ignored.
func ValidateGraph(all []*entity.ContentType) ([]*entity.ContentType, error) {
	index := make(map[*entity.ContentType]int, len(all))
	byID := make(map[int]int, len(all))

	for i, ct := range all {
		index[ct] = i
		if ct.ID > 0 {
			byID[ct.ID] = i
		}
	}

	order, stuck, err := topoSort(len(all), func(i int) []int {
		var deps []int

		for _, c := range all[i].Compositions {
			if j, ok := index[c]; ok {
				deps = append(deps, j)
			} else if j, ok := byID[c.ID]; ok && c.ID > 0 {
				deps = append(deps, j)
			}
		}

		return deps
	})
	if err != nil {
		if len(stuck) == 0 {
			return nil, err
		}

		aliases := make([]string, 0, len(stuck))
		for _, i := range stuck {
			aliases = append(aliases, all[i].Alias)
		}

		return nil, fmt.Errorf("%w between %s", err, strings.Join(aliases, ", "))
	}

	result := make([]*entity.ContentType, 0, len(order))
	for _, i := range order {
		result = append(result, all[i])
	}

	return result, nil
}

// FindCycle returns the composition path that leads from ct back to a type
// already on the path, or nil when the graph reachable from ct is acyclic.
func FindCycle(ct *entity.ContentType) []*entity.ContentType {
	const (
		visiting = 1
		done     = 2
	)

	state := map[*entity.ContentType]int{}

	var path []*entity.ContentType

	var visit func(t *entity.ContentType) []*entity.ContentType
	visit = func(t *entity.ContentType) []*entity.ContentType {
		state[t] = visiting
		path = append(path, t)

		for _, c := range t.Compositions {
			switch state[c] {
			case visiting:
				for i, p := range path {
					if p == c {
						return append(append([]*entity.ContentType{}, path[i:]...), c)
					}
				}
			case done:
				continue
			default:
				if cycle := visit(c); cycle != nil {
					return cycle
				}
			}
		}

		path = path[:len(path)-1]
		state[t] = done

		return nil
	}

	return visit(ct)
}

func cycleError(cycle []*entity.ContentType) error {
	aliases := make([]string, 0, len(cycle))
	for _, c := range cycle {
		aliases = append(aliases, c.Alias)
	}

	return fmt.Errorf("%w: %s", ErrCycle, strings.Join(aliases, " -> "))
}
