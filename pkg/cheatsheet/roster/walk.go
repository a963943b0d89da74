package roster

import (
	"iter"

	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/models"
)

// Walk yields every selection reachable from roots in depth-first
// pre-order: a parent before its children, siblings in document order.
// Each call starts a fresh walk. The tree must be acyclic.
func Walk(roots []models.Selection) iter.Seq[*models.Selection] {
	return func(yield func(*models.Selection) bool) {
		stack := make([]*models.Selection, 0, len(roots))
		pushReversed := func(sels []models.Selection) {
			for i := len(sels) - 1; i >= 0; i-- {
				stack = append(stack, &sels[i])
			}
		}

		pushReversed(roots)
		for len(stack) > 0 {
			sel := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(sel) {
				return
			}
			pushReversed(sel.Selections)
		}
	}
}
