package dal

// Seller defines a dealer and the cars it currently lists
type Seller struct {
	Name      string `json:"name"`
	Rating    string `json:"rating"`
	Inventory []*Car `json:"inventory"`
}

// NewSeller returns a seller with an empty inventory.
func NewSeller(name, rating string) *Seller {
	return &Seller{Name: name, Rating: rating, Inventory: []*Car{}}
}

// Buy appends car to the inventory. Repeated calls add repeated entries.
func (s *Seller) Buy(car *Car) {
	s.Inventory = append(s.Inventory, car)
}

// Sell removes the first inventory entry pointing at car.
func (s *Seller) Sell(car *Car) error {
	for i, c := range s.Inventory {
		if c == car {
			s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
			return nil
		}
	}
	name := "<nil>"
	if car != nil {
		name = car.String()
	}
	return &NotFoundError{Seller: s.Name, Car: name}
}

// Count returns the number of cars in the inventory.
func (s *Seller) Count() int {
	return len(s.Inventory)
}
