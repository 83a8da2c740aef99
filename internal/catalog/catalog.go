// Package catalog is the static configuration of categories, items and
// their display colors. A Catalog is read-only once built.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/steps/internal/model"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Entry is one catalog item. Entries only come out of a Catalog, so holding
// one means the item is a catalog member.
type Entry struct {
	id       model.ItemID
	color    string
	category string
	index    int
}

func (e Entry) ID() model.ItemID { return e.id }
func (e Entry) Color() string    { return e.color }
func (e Entry) Category() string { return e.category }
func (e Entry) Index() int       { return e.index }
func (e Entry) String() string   { return string(e.id) }
func (e Entry) IsZero() bool     { return e.id == "" }

// Catalog maps categories to ordered items plus item colors.
type Catalog struct {
	categories []model.Category
	entries    []Entry
	byID       map[model.ItemID]int
}

// File is the on-disk shape of a catalog.
type File struct {
	Categories []model.Category        `yaml:"categories"`
	Colors     map[model.ItemID]string `yaml:"colors"`
}

// Default is the compiled-in catalog.
func Default() *Catalog {
	c, err := New(File{
		Categories: []model.Category{
			{Name: "LANGUAGE", Items: []model.ItemID{"TOEIC_RC", "TOEIC_LC", "JLPT"}},
			{Name: "CODING", Items: []model.ItemID{"JAVA", "PYTHON", "C++"}},
			{Name: "HEALTH", Items: []model.ItemID{"GYM"}},
		},
		Colors: map[model.ItemID]string{
			"TOEIC_RC": "#F97316",
			"TOEIC_LC": "#FB923C",
			"JLPT":     "#E879F9",
			"JAVA":     "#0EA5E9",
			"PYTHON":   "#60A5FA",
			"C++":      "#6366F1",
			"GYM":      "#16A34A",
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// New validates f and builds a Catalog from it.
func New(f File) (*Catalog, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	c := &Catalog{byID: make(map[model.ItemID]int)}
	for _, cat := range f.Categories {
		items := make([]model.ItemID, len(cat.Items))
		copy(items, cat.Items)
		c.categories = append(c.categories, model.Category{Name: cat.Name, Items: items})
		for _, id := range items {
			c.byID[id] = len(c.entries)
			c.entries = append(c.entries, Entry{
				id:       id,
				color:    strings.ToUpper(f.Colors[id]),
				category: cat.Name,
				index:    len(c.entries),
			})
		}
	}
	return c, nil
}

// Validate checks the catalog invariants: unique ids, one category and one
// color per item, no empty names.
func (f File) Validate() error {
	var errs []error
	if len(f.Categories) == 0 {
		errs = append(errs, errors.New("no categories"))
	}
	seenCat := map[string]bool{}
	seenItem := map[model.ItemID]string{}
	for _, cat := range f.Categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			errs = append(errs, errors.New("category with empty name"))
		}
		if seenCat[name] {
			errs = append(errs, fmt.Errorf("duplicate category %q", name))
		}
		seenCat[name] = true
		if len(cat.Items) == 0 {
			errs = append(errs, fmt.Errorf("category %q has no items", name))
		}
		for _, id := range cat.Items {
			if strings.TrimSpace(string(id)) == "" {
				errs = append(errs, fmt.Errorf("category %q: empty item id", name))
				continue
			}
			if prev, dup := seenItem[id]; dup {
				errs = append(errs, fmt.Errorf("item %q in both %q and %q", id, prev, name))
				continue
			}
			seenItem[id] = name
			color, ok := f.Colors[id]
			switch {
			case !ok:
				errs = append(errs, fmt.Errorf("item %q has no color", id))
			case !hexColor.MatchString(color):
				errs = append(errs, fmt.Errorf("item %q: color %q is not #RRGGBB", id, color))
			}
		}
	}
	for id := range f.Colors {
		if _, ok := seenItem[id]; !ok {
			errs = append(errs, fmt.Errorf("color for unknown item %q", id))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}

// LoadFile reads a YAML catalog. An empty path yields Default.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(f)
}

// Categories returns the categories in display order.
func (c *Catalog) Categories() []model.Category {
	out := make([]model.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Entries returns every item in catalog iteration order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len is the number of items.
func (c *Catalog) Len() int { return len(c.entries) }

// At returns the i-th entry in iteration order.
func (c *Catalog) At(i int) (Entry, bool) {
	if i < 0 || i >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Lookup resolves an item id, case-insensitively as a fallback.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	if i, ok := c.byID[model.ItemID(id)]; ok {
		return c.entries[i], true
	}
	for _, e := range c.entries {
		if strings.EqualFold(string(e.id), id) {
			return e, true
		}
	}
	return Entry{}, false
}
