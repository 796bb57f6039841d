package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

const cleanupInterval = 5 * time.Minute

type CacheItem struct {
	Value      interface{}
	Expiration int64
}

// Cache guarda respuestas de listados por colección.
// Un TTL de cero lo deshabilita: Set no guarda nada y GetValue nunca acierta.
type Cache struct {
	items map[string]CacheItem
	mu    sync.RWMutex
	ttl   time.Duration
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		items: make(map[string]CacheItem),
		ttl:   ttl,
	}
}

// Enabled indica si el caché guarda valores
func (c *Cache) Enabled() bool {
	return c != nil && c.ttl > 0
}

// ListKey arma la clave de un listado de una colección
func ListKey(collection string, limit int64) string {
	return fmt.Sprintf("%s:list:%d", collection, limit)
}

// Set guarda un valor en caché
func (c *Cache) Set(key string, value interface{}) {
	if !c.Enabled() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = CacheItem{
		Value:      value,
		Expiration: time.Now().Add(c.ttl).UnixNano(),
	}
}

// GetValue obtiene un valor del caché
func (c *Cache) GetValue(key string) (interface{}, bool) {
	if !c.Enabled() {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}

	// Verificar si expiró
	if time.Now().UnixNano() > item.Expiration {
		return nil, false
	}

	return item.Value, true
}

// InvalidateCollection elimina todos los listados de una colección
func (c *Cache) InvalidateCollection(collection string) {
	if !c.Enabled() {
		return
	}
	c.DeleteByPrefix(collection + ":list:")
}

// DeleteByPrefix elimina todas las claves que empiecen con un prefijo
func (c *Cache) DeleteByPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

// Run limpia items expirados hasta que ctx termine
func (c *Cache) Run(ctx context.Context) {
	if !c.Enabled() {
		return
	}
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *Cache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now().UnixNano()
	for key, item := range c.items {
		if now > item.Expiration {
			delete(c.items, key)
		}
	}
}

// Size retorna el número de items en caché
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
