package entity

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/enum"
)

// PlaceholderAvatar is the fallback avatar reference for customers without one.
const PlaceholderAvatar = "/placeholder-avatar.jpg"

// Address is a customer's postal address.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// Customer represents a customer of the terminal. At most one customer is
// selected in the working sale at a time.
type Customer struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Avatar    string            `json:"avatar"`
	Email     *string           `json:"email,omitempty"`
	Phone     string            `json:"phone"`
	CPFCNPJ   *string           `json:"cpf_cnpj,omitempty"`
	Type      enum.CustomerType `json:"type"`
	Address   *Address          `json:"address,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

var avatarSeedInvalid = regexp.MustCompile(`[^a-z.]`)

// GenerateAvatarURL derives a deterministic avatar image URL from the
// customer name so that newly created customers never have an empty avatar.
func GenerateAvatarURL(name string) string {
	seed := strings.ToLower(name)
	seed = strings.ReplaceAll(seed, " ", ".")
	seed = avatarSeedInvalid.ReplaceAllString(seed, "")
	if seed == "" {
		return PlaceholderAvatar
	}
	return "https://api.dicebear.com/9.x/avataaars/svg?seed=" + url.QueryEscape(seed)
}
