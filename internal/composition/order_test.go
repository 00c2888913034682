package composition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms-mapper/internal/entity"
)

func TestTopoSort_Order(t *testing.T) {
	order, stuck, err := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return nil
		case 1:
			return []int{0}
		case 2:
			return []int{1}
		default:
			return nil
		}
	})
	require.NoError(t, err)
	assert.Empty(t, stuck)
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestTopoSort_Cycle(t *testing.T) {
	_, stuck, err := topoSort(3, func(i int) []int {
		switch i {
		case 0:
			return []int{1}
		case 1:
			return []int{0}
		default:
			return nil
		}
	})
	require.ErrorIs(t, err, ErrCycle)
	assert.Equal(t, []int{0, 1}, stuck)
}

func TestTopoSort_OutOfRange(t *testing.T) {
	_, _, err := topoSort(1, func(int) []int { return []int{3} })
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCycle)
}

func TestValidateGraph(t *testing.T) {
	seo, content, page, article, plain := site()

	ordered, err := ValidateGraph([]*entity.ContentType{article, page, plain, content, seo})
	require.NoError(t, err)

	pos := map[string]int{}
	for i, ct := range ordered {
		pos[ct.Alias] = i
	}

	assert.Len(t, ordered, 5)
	assert.Less(t, pos["seo"], pos["page"])
	assert.Less(t, pos["content"], pos["page"])
	assert.Less(t, pos["page"], pos["article"])
}

func TestValidateGraph_Cycle(t *testing.T) {
	a := docType(1, "a")
	b := docType(2, "b")
	c := docType(3, "c")
	a.Compositions = []*entity.ContentType{b}
	b.Compositions = []*entity.ContentType{a}

	_, err := ValidateGraph([]*entity.ContentType{a, b, c})
	require.ErrorIs(t, err, ErrCycle)
	assert.Contains(t, err.Error(), "a, b")
}

func TestValidateGraph_MatchesByID(t *testing.T) {
	base := docType(1, "base")
	derived := docType(2, "derived")
	derived.Compositions = []*entity.ContentType{{ID: 1, Alias: "base"}}

	ordered, err := ValidateGraph([]*entity.ContentType{derived, base})
	require.NoError(t, err)
	assert.Equal(t, []*entity.ContentType{base, derived}, ordered)
}

func TestFindCycle_Diamond(t *testing.T) {
	seo, content, page, _, _ := site()
	content.Compositions = []*entity.ContentType{seo}

	assert.Nil(t, FindCycle(page))
}
