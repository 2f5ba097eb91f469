package level

import "fmt"

// Catalog caches the configs of every campaign level. Configs are generated
// once up front and handed out as copies.
type Catalog struct {
	configs map[int]Config
}

// NewCatalog generates levels 1..FinalLevel.
func NewCatalog() *Catalog {
	c := &Catalog{configs: make(map[int]Config, FinalLevel)}
	for i := 1; i <= FinalLevel; i++ {
		cfg, err := Generate(i)
		if err != nil {
			// Generate only fails outside 1..FinalLevel.
			panic(err)
		}
		c.configs[i] = cfg
	}
	return c
}

// Get returns the config for a level.
func (c *Catalog) Get(levelIndex int) (Config, error) {
	cfg, ok := c.configs[levelIndex]
	if !ok {
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidLevelIndex, levelIndex)
	}
	return cfg.clone(), nil
}

// Len returns the number of cached levels.
func (c *Catalog) Len() int {
	return len(c.configs)
}
