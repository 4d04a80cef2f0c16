package models

// The view types below are the only shapes written to clients. Relationship
// fields on the entities are never encoded directly, so a nested record can
// not point back at its parent and serialization always terminates.

// RestaurantSummary is a restaurant without its relationships
type RestaurantSummary struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaSummary is a pizza without its relationships
type PizzaSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaView is a price nested under its restaurant
type RestaurantPizzaView struct {
	ID           int          `json:"id"`
	Price        int          `json:"price"`
	PizzaID      int          `json:"pizza_id"`
	RestaurantID int          `json:"restaurant_id"`
	Pizza        PizzaSummary `json:"pizza"`
}

// PizzaRestaurantView is a price nested under its pizza
type PizzaRestaurantView struct {
	ID           int               `json:"id"`
	Price        int               `json:"price"`
	PizzaID      int               `json:"pizza_id"`
	RestaurantID int               `json:"restaurant_id"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

// RestaurantDetail is a restaurant with the pizzas it sells
type RestaurantDetail struct {
	ID               int                   `json:"id"`
	Name             string                `json:"name"`
	Address          string                `json:"address"`
	RestaurantPizzas []RestaurantPizzaView `json:"restaurant_pizzas"`
}

// PizzaDetail is a pizza with the restaurants selling it
type PizzaDetail struct {
	ID               int                   `json:"id"`
	Name             string                `json:"name"`
	Ingredients      string                `json:"ingredients"`
	RestaurantPizzas []PizzaRestaurantView `json:"restaurant_pizzas"`
}

// RestaurantPizzaDetail is a price with both ends of the association
type RestaurantPizzaDetail struct {
	ID           int               `json:"id"`
	Price        int               `json:"price"`
	PizzaID      int               `json:"pizza_id"`
	RestaurantID int               `json:"restaurant_id"`
	Pizza        PizzaSummary      `json:"pizza"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

func (r Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

func (p Pizza) Summary() PizzaSummary {
	return PizzaSummary{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// Detail expands the restaurant pizzas and their pizzas, which must be preloaded
func (r Restaurant) Detail() RestaurantDetail {
	views := make([]RestaurantPizzaView, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		view := RestaurantPizzaView{
			ID:           rp.ID,
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
		}
		if rp.Pizza != nil {
			view.Pizza = rp.Pizza.Summary()
		}
		views = append(views, view)
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: views,
	}
}

// Detail expands the restaurant pizzas and their restaurants, which must be preloaded
func (p Pizza) Detail() PizzaDetail {
	views := make([]PizzaRestaurantView, 0, len(p.RestaurantPizzas))
	for _, rp := range p.RestaurantPizzas {
		view := PizzaRestaurantView{
			ID:           rp.ID,
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
		}
		if rp.Restaurant != nil {
			view.Restaurant = rp.Restaurant.Summary()
		}
		views = append(views, view)
	}
	return PizzaDetail{
		ID:               p.ID,
		Name:             p.Name,
		Ingredients:      p.Ingredients,
		RestaurantPizzas: views,
	}
}

func (rp RestaurantPizza) Detail() RestaurantPizzaDetail {
	detail := RestaurantPizzaDetail{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
	}
	if rp.Pizza != nil {
		detail.Pizza = rp.Pizza.Summary()
	}
	if rp.Restaurant != nil {
		detail.Restaurant = rp.Restaurant.Summary()
	}
	return detail
}

// RestaurantSummaries maps restaurants to their summaries, never returning nil
func RestaurantSummaries(restaurants []Restaurant) []RestaurantSummary {
	out := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, r.Summary())
	}
	return out
}

// PizzaSummaries maps pizzas to their summaries, never returning nil
func PizzaSummaries(pizzas []Pizza) []PizzaSummary {
	out := make([]PizzaSummary, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, p.Summary())
	}
	return out
}
