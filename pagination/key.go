package pagination

import "reflect"

// keyCursor implements the n+1 look-ahead cursor: request
// one more row than the page size, pop it if present, and use its
// {key, id} as the next startKey/startKeyDocId. For all-docs variants
// the boundary check is a no-op (keys equal ids by construction); for
// view variants a duplicate key+id at the boundary is recorded and
// thrown on the following Next() call.
type keyCursor[T any] struct {
	getKeyID       func(T) (interface{}, string)
	setStartKey    func(key interface{}, id string)
	clearSkip      func()
	allDocsVariant bool

	pending error
}

func newKeyCursor[T any](getKeyID func(T) (interface{}, string), setStartKey func(interface{}, string), clearSkip func(), allDocsVariant bool) *keyCursor[T] {
	return &keyCursor[T]{getKeyID: getKeyID, setStartKey: setStartKey, clearSkip: clearSkip, allDocsVariant: allDocsVariant}
}

func (c *keyCursor[T]) requestLimit(pageSize int) int {
	return pageSize + 1
}

func (c *keyCursor[T]) advance(rows []T, meta any, pageSize int) ([]T, bool) {
	if len(rows) <= pageSize {
		return rows, false
	}

	popped := rows[pageSize]
	delivered := rows[:pageSize]

	if !c.allDocsVariant && len(delivered) > 0 {
		penultimateKey, penultimateID := c.getKeyID(delivered[len(delivered)-1])
		poppedKey, poppedID := c.getKeyID(popped)
		if penultimateID == poppedID && reflect.DeepEqual(penultimateKey, poppedKey) {
			c.pending = &BoundaryError{Key: poppedKey, ID: poppedID}
		}
	}

	key, id := c.getKeyID(popped)
	c.setStartKey(key, id)
	c.clearSkip()
	return delivered, true
}

func (c *keyCursor[T]) takePendingError() error {
	err := c.pending
	c.pending = nil
	return err
}
