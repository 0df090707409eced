package catalog

// Test is a single offerable lab test. Prices are whole currency units.
type Test struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Prep  string `json:"prep"`
}

// Catalog is the fixed set of lab tests. It is built once at startup and is
// safe for concurrent reads; there is no mutation API.
type Catalog struct {
	tests []Test
	byID  map[string]Test
}

// New builds a catalog from the given tests, preserving definition order.
func New(tests []Test) *Catalog {
	c := &Catalog{
		tests: make([]Test, len(tests)),
		byID:  make(map[string]Test, len(tests)),
	}
	copy(c.tests, tests)
	for _, t := range tests {
		c.byID[t.ID] = t
	}
	return c
}

// Default returns the catalog offered by the lab.
func Default() *Catalog {
	return New([]Test{
		{ID: "blood", Name: "Complete Blood Count (CBC)", Price: 500, Prep: "Fasting 8 hours"},
		{ID: "thyroid", Name: "Thyroid Profile", Price: 800, Prep: "No fasting required"},
		{ID: "diabetes", Name: "Fasting Blood Sugar", Price: 600, Prep: "Fasting 10 hours"},
	})
}

// List returns the tests in definition order.
func (c *Catalog) List() []Test {
	out := make([]Test, len(c.tests))
	copy(out, c.tests)
	return out
}

// Lookup returns the test with the given id.
func (c *Catalog) Lookup(id string) (Test, bool) {
	t, ok := c.byID[id]
	return t, ok
}
