package domain

import (
	"errors"
	"fmt"
)

var defaultDrinks = []DrinkOption{
	{ID: "ayran", Name: "Ayran", PriceModifier: 0},
	{ID: "buyuk-ayran", Name: "Büyük Ayran", PriceModifier: 5},
	{ID: "kola", Name: "Kola", PriceModifier: 10},
}

// DefaultMenu returns a fresh copy of the seed catalog used when the store
// holds no menu document yet.
func DefaultMenu() Menu {
	return Menu{
		DefaultDrinks: defaultDrinks,
		Restaurants: []Restaurant{
			{
				ID:   "pilav-istasyonu",
				Name: "Pilav İstasyonu",
				Products: []Product{
					{
						ID:   "tavuklu-pilav",
						Name: "Tavuklu Pilav",
						Portions: []PortionOption{
							{ID: "1-porsiyon", Name: "1 Porsiyon", Price: 120},
							{ID: "1.5-porsiyon", Name: "1.5 Porsiyon", Price: 170},
							{ID: "2-porsiyon", Name: "2 Porsiyon", Price: 220},
						},
						DrinkSource:    DrinkSourceGlobal,
						DefaultDrinkID: "ayran",
					},
					{
						ID:   "etli-pilav",
						Name: "Etli Pilav",
						Portions: []PortionOption{
							{ID: "1-porsiyon", Name: "1 Porsiyon", Price: 140},
							{ID: "1.5-porsiyon", Name: "1.5 Porsiyon", Price: 190},
						},
						DrinkSource:    DrinkSourceGlobal,
						DefaultDrinkID: "ayran",
					},
					{
						ID:   "kuru-fasulye-pilav",
						Name: "Kuru Fasulye + Pilav",
						Portions: []PortionOption{
							{ID: "1-porsiyon", Name: "1 Porsiyon", Price: 100},
							{ID: "1.5-porsiyon", Name: "1.5 Porsiyon", Price: 140},
						},
						DrinkSource:    DrinkSourceGlobal,
						DefaultDrinkID: "ayran",
					},
				},
			},
			{
				ID:   "makarnaci",
				Name: "Makarnacı",
				Products: []Product{
					{
						ID:   "makarna",
						Name: "Makarna",
						Portions: []PortionOption{
							{ID: "normal", Name: "Normal Porsiyon", Price: 90},
							{ID: "buyuk", Name: "Büyük Porsiyon", Price: 120},
						},
						Sauces: []SauceOption{
							{ID: "kori", Name: "Köri Soslu", PriceModifier: 0},
							{ID: "bolonez", Name: "Bolonez", PriceModifier: 10},
							{ID: "alfredo", Name: "Alfredo", PriceModifier: 5},
							{ID: "arabiata", Name: "Arabiata", PriceModifier: 0},
						},
						Extras: []ExtraOption{
							{ID: "tavuklu", Name: "Tavuklu", PriceModifier: 20},
							{ID: "peynirli", Name: "Peynirli", PriceModifier: 15},
						},
						DrinkSource:    DrinkSourceGlobal,
						DefaultDrinkID: "ayran",
					},
				},
			},
		},
	}
}

// RestaurantByID returns the restaurant with the given id, or nil.
func (m *Menu) RestaurantByID(id string) *Restaurant {
	for i := range m.Restaurants {
		if m.Restaurants[i].ID == id {
			return &m.Restaurants[i]
		}
	}
	return nil
}

// ProductByID returns the product with the given id, or nil.
func (r *Restaurant) ProductByID(id string) *Product {
	for i := range r.Products {
		if r.Products[i].ID == id {
			return &r.Products[i]
		}
	}
	return nil
}

// Open reports whether the restaurant accepts orders. A restaurant without an
// explicit flag is open.
func (r *Restaurant) Open() bool {
	return r.IsOpen == nil || *r.IsOpen
}

// EffectiveDrinks resolves the drink list that applies to a product, following
// its drink source: the product's own list, the restaurant's shared list, or
// the menu-wide default list.
func (m *Menu) EffectiveDrinks(r *Restaurant, p *Product) []DrinkOption {
	switch p.DrinkSource {
	case DrinkSourceGlobal:
		return m.DefaultDrinks
	case DrinkSourceRestaurant:
		return r.Drinks
	default:
		return p.DrinkOptions
	}
}

// PortionByID returns the portion with the given id, or nil.
func (p *Product) PortionByID(id string) *PortionOption {
	for i := range p.Portions {
		if p.Portions[i].ID == id {
			return &p.Portions[i]
		}
	}
	return nil
}

// SauceByID returns the sauce with the given id, or nil.
func (p *Product) SauceByID(id string) *SauceOption {
	for i := range p.Sauces {
		if p.Sauces[i].ID == id {
			return &p.Sauces[i]
		}
	}
	return nil
}

// ExtraByID returns the extra with the given id, or nil.
func (p *Product) ExtraByID(id string) *ExtraOption {
	for i := range p.Extras {
		if p.Extras[i].ID == id {
			return &p.Extras[i]
		}
	}
	return nil
}

// ErrInvalidMenu wraps all menu validation failures.
var ErrInvalidMenu = errors.New("invalid menu")

// Validate checks the catalog invariants: unique restaurant ids, at least one
// portion per product, non-negative portion prices and a resolvable
// defaultDrinkId wherever the product exposes drinks.
func (m *Menu) Validate() error {
	seen := make(map[string]bool, len(m.Restaurants))
	for ri := range m.Restaurants {
		r := &m.Restaurants[ri]
		if r.ID == "" {
			return fmt.Errorf("%w: restaurant %q has no id", ErrInvalidMenu, r.Name)
		}
		if seen[r.ID] {
			return fmt.Errorf("%w: duplicate restaurant id %q", ErrInvalidMenu, r.ID)
		}
		seen[r.ID] = true

		for pi := range r.Products {
			p := &r.Products[pi]
			if p.ID == "" {
				return fmt.Errorf("%w: product %q in %q has no id", ErrInvalidMenu, p.Name, r.ID)
			}
			if len(p.Portions) == 0 {
				return fmt.Errorf("%w: product %q has no portions", ErrInvalidMenu, p.ID)
			}
			for _, portion := range p.Portions {
				if portion.Price < 0 {
					return fmt.Errorf("%w: portion %q of %q has negative price", ErrInvalidMenu, portion.ID, p.ID)
				}
			}
			drinks := m.EffectiveDrinks(r, p)
			if len(drinks) > 0 && p.DefaultDrinkID != "" && findDrink(drinks, p.DefaultDrinkID) == nil {
				return fmt.Errorf("%w: defaultDrinkId %q of %q does not resolve", ErrInvalidMenu, p.DefaultDrinkID, p.ID)
			}
		}
	}
	return nil
}

func findDrink(drinks []DrinkOption, id string) *DrinkOption {
	for i := range drinks {
		if drinks[i].ID == id {
			return &drinks[i]
		}
	}
	return nil
}

// FindDrink returns the drink with the given id from the list, or nil.
func FindDrink(drinks []DrinkOption, id string) *DrinkOption {
	return findDrink(drinks, id)
}
