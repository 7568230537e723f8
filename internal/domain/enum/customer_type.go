package enum

import "encoding/json"

// CustomerType classifies a customer as an individual or a business.
type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "individual"
	CustomerTypeBusiness   CustomerType = "business"
)

func (t CustomerType) String() string {
	return string(t)
}

func (t CustomerType) MarshalJSON() ([]byte, error) {
	if t != CustomerTypeBusiness {
		return json.Marshal(string(CustomerTypeIndividual))
	}
	return json.Marshal(string(t))
}

func (t *CustomerType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "business" {
		*t = CustomerTypeBusiness
	} else {
		*t = CustomerTypeIndividual
	}
	return nil
}
