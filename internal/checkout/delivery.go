package checkout

// DeliveryOption is one of the fixed shipping choices offered at checkout.
type DeliveryOption struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	Description   string `json:"description"`
	Coverage      string `json:"coverage"`
	EstimatedDays string `json:"estimatedDays"`
}

var deliveryOptions = []DeliveryOption{
	{
		ID:            "gigl",
		Name:          "GIGL Express",
		Price:         5500,
		Description:   "Nationwide delivery - Fast and reliable",
		Coverage:      "All 36 states + FCT",
		EstimatedDays: "2-4 business days",
	},
	{
		ID:            "guo",
		Name:          "GUO Transport",
		Price:         4500,
		Description:   "Limited coverage - Budget friendly",
		Coverage:      "Selected major cities",
		EstimatedDays: "3-7 business days",
	},
	{
		ID:            "rider",
		Name:          "Our Rider (Benin City)",
		Price:         2000,
		Description:   "Same day delivery within Benin City",
		Coverage:      "Benin City only",
		EstimatedDays: "Same day",
	},
}

// DeliveryOptions lists the available shipping choices.
func DeliveryOptions() []DeliveryOption {
	out := make([]DeliveryOption, len(deliveryOptions))
	copy(out, deliveryOptions)
	return out
}

// DeliveryOptionByID resolves a choice by its id.
func DeliveryOptionByID(id string) (DeliveryOption, bool) {
	for _, opt := range deliveryOptions {
		if opt.ID == id {
			return opt, true
		}
	}
	return DeliveryOption{}, false
}
