package request

// SelectCustomerRequest represents the request to attach a customer to the sale
type SelectCustomerRequest struct {
	CustomerID string `json:"customerId" binding:"required"`
}

// CreateCustomerRequest represents the request to register a new customer
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Phone   string `json:"phone" binding:"required,min=8,max=20"`
	Email   string `json:"email" binding:"omitempty,email"`
	CPFCNPJ string `json:"cpf_cnpj" binding:"omitempty,min=11,max=18"`
	Type    string `json:"type" binding:"omitempty,oneof=individual business"`
	Address *CustomerAddressRequest `json:"address"`
}

// CustomerAddressRequest represents a customer address payload
type CustomerAddressRequest struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}
