package catalog

// Repository is the read-only view over the static catalog. There is no
// mutation surface: the records are fixed for the lifetime of the process,
// so no locking is needed on the read paths.
type Repository interface {
	All() []Product
	ByID(id string) (Product, bool)
	Categories() []Category
	CategoryByID(id string) (Category, bool)
}

type memoryRepository struct {
	products   []Product
	byID       map[string]int
	categories []Category
	catByID    map[string]int
}

func NewRepository(products []Product, categories []Category) Repository {
	r := &memoryRepository{
		products:   products,
		byID:       make(map[string]int, len(products)),
		categories: categories,
		catByID:    make(map[string]int, len(categories)),
	}
	for i, p := range products {
		r.byID[p.ID] = i
	}
	for i, c := range categories {
		r.catByID[c.ID] = i
	}
	return r
}

// All returns the catalog in its canonical order. Callers must not mutate
// the returned slice; query operations copy before sorting.
func (r *memoryRepository) All() []Product {
	return r.products
}

func (r *memoryRepository) ByID(id string) (Product, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Product{}, false
	}
	return r.products[i], true
}

func (r *memoryRepository) Categories() []Category {
	return r.categories
}

func (r *memoryRepository) CategoryByID(id string) (Category, bool) {
	i, ok := r.catByID[id]
	if !ok {
		return Category{}, false
	}
	return r.categories[i], true
}
