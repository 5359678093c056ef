package cache

import (
	"container/list"
	"sync"
)

// NamespaceLRU is a namespace-based LRU cache holding values of type V
type NamespaceLRU[V any] struct {
	capacity int
	items    map[string]*list.Element
	queue    *list.List
	mutex    sync.Mutex
}

type entry[V any] struct {
	namespace string
	key       string
	value     V
}

// NewNamespaceLRU creates a new namespace-based LRU cache with specified capacity.
// A capacity below one is treated as one.
func NewNamespaceLRU[V any](capacity int) *NamespaceLRU[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &NamespaceLRU[V]{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		queue:    list.New(),
	}
}

func compositeKey(namespace, key string) string {
	return namespace + ":" + key
}

// Set adds or replaces the value stored under namespace and key
func (c *NamespaceLRU[V]) Set(namespace, key string, value V) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	ck := compositeKey(namespace, key)
	if element, exists := c.items[ck]; exists {
		c.queue.MoveToFront(element)
		element.Value.(*entry[V]).value = value
		return
	}

	c.items[ck] = c.queue.PushFront(&entry[V]{
		namespace: namespace,
		key:       key,
		value:     value,
	})

	if c.queue.Len() > c.capacity {
		c.evict()
	}
}

// Get retrieves a value by namespace and key and marks it recently used
func (c *NamespaceLRU[V]) Get(namespace, key string) (V, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	element, exists := c.items[compositeKey(namespace, key)]
	if !exists {
		var zero V
		return zero, false
	}

	c.queue.MoveToFront(element)
	return element.Value.(*entry[V]).value, true
}

// Invalidate removes an item from the cache by namespace and key
func (c *NamespaceLRU[V]) Invalidate(namespace, key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	ck := compositeKey(namespace, key)
	if element, exists := c.items[ck]; exists {
		c.queue.Remove(element)
		delete(c.items, ck)
	}
}

// Size returns the current number of items in the cache
func (c *NamespaceLRU[V]) Size() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.queue.Len()
}

// evict removes the least recently used item; the caller holds the lock
func (c *NamespaceLRU[V]) evict() {
	element := c.queue.Back()
	if element == nil {
		return
	}
	c.queue.Remove(element)
	e := element.Value.(*entry[V])
	delete(c.items, compositeKey(e.namespace, e.key))
}
