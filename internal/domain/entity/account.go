package entity

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderItem is one line of a past order.
type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
}

// Order is a past purchase shown on the order-history screen.
type Order struct {
	ID              string      `json:"id"`
	Date            string      `json:"date"`
	Status          OrderStatus `json:"status"`
	Total           float64     `json:"total"`
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shippingAddress"`
	TrackingNumber  string      `json:"trackingNumber,omitempty"`
}

// Address is a saved shipping address.
type Address struct {
	ID        string `json:"id"`
	Type      string `json:"type"` // home, work or other
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	Phone     string `json:"phone,omitempty"`
	IsDefault bool   `json:"isDefault"`
}

// PaymentMethod is a saved payment instrument.
type PaymentMethod struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // card, paypal or apple_pay
	Brand       string `json:"brand"`
	Last4       string `json:"last4"`
	ExpiryMonth int    `json:"expiryMonth"`
	ExpiryYear  int    `json:"expiryYear"`
	IsDefault   bool   `json:"isDefault"`
	HolderName  string `json:"holderName"`
}
