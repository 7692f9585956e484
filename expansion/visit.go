package expansion

import (
	"github.com/AG-Philipsen/hopping-large-nt/wilson"
)

// Visitor receives a depth-first walk over a catalog. It extends
// wilson.Visitor, which is driven for every term of every path.
type Visitor interface {
	wilson.Visitor

	EnterCatalog(c *Catalog)
	ExitCatalog(c *Catalog)

	EnterConfiguration(cfg *Configuration)
	ExitConfiguration(cfg *Configuration)

	EnterPath(p *Path)
	VisitSpatial(sp []int)
	ExitPath(p *Path)
}

// Accept walks the top-order configurations of c: each configuration, its
// paths, every spatial assignment of a path and then the path's terms.
func (c *Catalog) Accept(v Visitor) {
	v.EnterCatalog(c)
	for _, cfg := range c.Top() {
		cfg.Accept(v)
	}
	v.ExitCatalog(c)
}

// Accept walks cfg and its paths.
func (c *Configuration) Accept(v Visitor) {
	v.EnterConfiguration(c)
	for _, p := range c.Paths {
		v.EnterPath(p)
		for _, sp := range p.Spatials {
			v.VisitSpatial(sp)
		}
		wilson.Walk(p.Terms, v)
		v.ExitPath(p)
	}
	v.ExitConfiguration(c)
}
