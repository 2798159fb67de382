package services

import (
	"fmt"
	"sort"

	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/models"
)

// ItemSelection is one entry of an in-progress order's item map, carrying the
// catalog price snapshotted at selection time.
type ItemSelection struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Price    float64  `json:"price"`
	Notes    string   `json:"notes,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// ItemMap keys selections by catalog item ID so the same garment can never
// appear twice.
type ItemMap map[uint]ItemSelection

// Add puts an item into the map, or bumps its quantity if already selected.
func (m ItemMap) Add(id uint, name string, price float64) {
	if existing, ok := m[id]; ok {
		existing.Quantity++
		m[id] = existing
		return
	}
	m[id] = ItemSelection{Name: name, Quantity: 1, Price: price}
}

// SetQuantity overwrites an item's quantity; zero or negative removes the
// entry entirely.
func (m ItemMap) SetQuantity(id uint, quantity int) {
	if quantity <= 0 {
		delete(m, id)
		return
	}
	selection, ok := m[id]
	if !ok {
		return
	}
	selection.Quantity = quantity
	m[id] = selection
}

// Compact returns a copy without zero- or negative-quantity entries, the
// same rule SetQuantity applies on edit.
func (m ItemMap) Compact() ItemMap {
	compacted := make(ItemMap, len(m))
	for id, selection := range m {
		if selection.Quantity <= 0 {
			continue
		}
		compacted[id] = selection
	}
	return compacted
}

// Subtotal is the sum of quantity times unit price over every selection.
func (m ItemMap) Subtotal() float64 {
	var subtotal float64
	for _, selection := range m {
		subtotal += float64(selection.Quantity) * selection.Price
	}
	return subtotal
}

// Summary renders the map as "Shirt (3), Pants (2)" for order listings.
func (m ItemMap) Summary() string {
	selections := m.sorted()
	summary := ""
	for i, selection := range selections {
		if i > 0 {
			summary += ", "
		}
		summary += fmt.Sprintf("%s (%d)", selection.Name, selection.Quantity)
	}
	return summary
}

// LineItems decomposes the map into order line records. Every line starts
// payment-pending regardless of any prior payment state.
func (m ItemMap) LineItems() []models.OrderItem {
	selections := m.sorted()
	items := make([]models.OrderItem, 0, len(selections))
	for _, selection := range selections {
		items = append(items, models.OrderItem{
			ItemName:       selection.Name,
			Quantity:       selection.Quantity,
			PricePerItem:   selection.Price,
			TotalPrice:     float64(selection.Quantity) * selection.Price,
			PaymentPending: true,
			Notes:          selection.Notes,
			Tags:           selection.Tags,
		})
	}
	return items
}

// Descriptors strips quantities and prices for kg-priced orders, where items
// are informational only.
func (m ItemMap) Descriptors() models.ItemDescriptors {
	selections := m.sorted()
	descriptors := make(models.ItemDescriptors, 0, len(selections))
	for _, selection := range selections {
		descriptors = append(descriptors, models.ItemDescriptor{
			Name:  selection.Name,
			Notes: selection.Notes,
			Tags:  selection.Tags,
		})
	}
	return descriptors
}

func (m ItemMap) sorted() []ItemSelection {
	selections := make([]ItemSelection, 0, len(m))
	for _, selection := range m {
		selections = append(selections, selection)
	}
	sort.Slice(selections, func(i, j int) bool {
		return selections[i].Name < selections[j].Name
	})
	return selections
}

// KgSubtotal prices an order by weight. An unset weight or rate yields zero
// rather than an error.
func KgSubtotal(weight, pricePerKg float64) float64 {
	if weight <= 0 || pricePerKg <= 0 {
		return 0
	}
	return weight * pricePerKg
}

// ApplyDiscount derives the final amount from the subtotal. A percentage
// discount scales the subtotal; a fixed discount subtracts, floored at zero.
// Percentage values are expected to be clamped to [0,100] by the caller.
func ApplyDiscount(subtotal, discount float64, discountType string) float64 {
	if discountType == string(models.DiscountFixed) {
		amount := subtotal - discount
		if amount < 0 {
			return 0
		}
		return amount
	}
	return subtotal - subtotal*discount/100
}

// PricingState is an order-in-progress pricing basis. The two modes are
// mutually exclusive, so switching resets every derived and mode-specific
// field back to zero.
type PricingState struct {
	PricingType   string
	Items         ItemMap
	ServiceTypeID *uint
	PricePerKg    float64
	TotalWeight   float64
	Discount      float64
	DiscountType  string
	Subtotal      float64
	Amount        float64
}

// SwitchMode changes the pricing basis and wipes all pricing inputs.
func (p *PricingState) SwitchMode(pricingType string) {
	p.PricingType = pricingType
	p.Items = ItemMap{}
	p.ServiceTypeID = nil
	p.PricePerKg = 0
	p.TotalWeight = 0
	p.Discount = 0
	p.Subtotal = 0
	p.Amount = 0
}

// Recalculate refreshes subtotal and amount from the current inputs.
func (p *PricingState) Recalculate() {
	if p.PricingType == string(models.PricingPerKg) {
		p.Subtotal = KgSubtotal(p.TotalWeight, p.PricePerKg)
	} else {
		p.Subtotal = p.Items.Subtotal()
	}
	p.Amount = ApplyDiscount(p.Subtotal, p.Discount, p.DiscountType)
}
