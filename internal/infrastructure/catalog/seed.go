package catalog

import (
	"time"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/entity"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/enum"
)

func strptr(s string) *string { return &s }

// seedProducts returns the demo product set the terminal ships with.
func seedProducts() []entity.Product {
	sizes := []string{"P", "M", "G", "GG"}
	shoeSizes := []string{"38", "39", "40", "41", "42"}

	return []entity.Product{
		{
			ID: "prod-001", Code: "PROD-001", Name: "Camiseta Básica",
			Description: "Camiseta de algodão com corte reto", Category: "clothing",
			Price: 49.90, Image: "/products/camiseta-basica.jpg", Stock: 120,
			Variants: &entity.ProductVariants{Size: sizes, Color: []string{"Preto", "Branco", "Azul"}},
		},
		{
			ID: "prod-002", Code: "PROD-002", Name: "Calça Jeans Slim",
			Description: "Calça jeans com elastano", Category: "clothing",
			Price: 159.90, Image: "/products/calca-jeans-slim.jpg", Stock: 64,
			Variants: &entity.ProductVariants{Size: sizes, Color: []string{"Azul Escuro", "Azul Claro"}},
		},
		{
			ID: "prod-003", Code: "PROD-003", Name: "Vestido Floral",
			Description: "Vestido estampado midi", Category: "clothing",
			Price: 189.90, Image: "/products/vestido-floral.jpg", Stock: 32,
			Variants: &entity.ProductVariants{Size: sizes},
		},
		{
			ID: "prod-004", Code: "PROD-004", Name: "Jaqueta Corta-Vento",
			Description: "Jaqueta leve impermeável", Category: "clothing",
			Price: 229.90, Image: "/products/jaqueta-corta-vento.jpg", Stock: 18,
			Variants: &entity.ProductVariants{Size: sizes, Color: []string{"Preto", "Verde"}},
		},
		{
			ID: "prod-005", Code: "PROD-005", Name: "Tênis Esportivo",
			Description: "Tênis para corrida com amortecimento", Category: "shoes",
			Price: 299.90, Image: "/products/tenis-esportivo.jpg", Stock: 40,
			Variants: &entity.ProductVariants{Size: shoeSizes, Color: []string{"Preto", "Branco"}},
		},
		{
			ID: "prod-006", Code: "PROD-006", Name: "Sandália de Couro",
			Description: "Sandália artesanal de couro legítimo", Category: "shoes",
			Price: 139.90, Image: "/products/sandalia-couro.jpg", Stock: 25,
			Variants: &entity.ProductVariants{Size: shoeSizes},
		},
		{
			ID: "prod-007", Code: "PROD-007", Name: "Bota Casual",
			Description: "Bota em couro sintético", Category: "shoes",
			Price: 249.90, Image: "/products/bota-casual.jpg", Stock: 15,
			Variants: &entity.ProductVariants{Size: shoeSizes, Color: []string{"Marrom", "Preto"}},
		},
		{
			ID: "prod-008", Code: "PROD-008", Name: "Boné Aba Curva",
			Description: "Boné ajustável", Category: "accessories",
			Price: 59.90, Image: "/products/bone-aba-curva.jpg", Stock: 80,
		},
		{
			ID: "prod-009", Code: "PROD-009", Name: "Bolsa Transversal",
			Description: "Bolsa compacta com alça regulável", Category: "accessories",
			Price: 119.90, Image: "/products/bolsa-transversal.jpg", Stock: 22,
		},
		{
			ID: "prod-010", Code: "PROD-010", Name: "Óculos de Sol",
			Description: "Óculos com proteção UV400", Category: "accessories",
			Price: 89.90, Image: "/products/oculos-de-sol.jpg", Stock: 50,
		},
		{
			ID: "prod-011", Code: "PROD-011", Name: "Fone de Ouvido Bluetooth",
			Description: "Fone sem fio com estojo de recarga", Category: "electronics",
			Price: 199.90, Image: "/products/fone-bluetooth.jpg", Stock: 35,
		},
		{
			ID: "prod-012", Code: "PROD-012", Name: "Carregador Portátil",
			Description: "Power bank 10000mAh", Category: "electronics",
			Price: 129.90, Image: "/products/carregador-portatil.jpg", Stock: 45,
		},
	}
}

// seedCustomers returns the demo customer set.
func seedCustomers() []entity.Customer {
	base := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

	return []entity.Customer{
		{
			ID: "cust-001", Name: "Ana Silva", Phone: "(11) 98765-4321",
			Avatar:  entity.GenerateAvatarURL("Ana Silva"),
			Email:   strptr("ana.silva@example.com"),
			CPFCNPJ: strptr("123.456.789-00"),
			Type:    enum.CustomerTypeIndividual,
			Address: &entity.Address{
				Street: "Rua das Flores", Number: "120", Neighborhood: "Centro",
				City: "São Paulo", State: "SP", ZipCode: "01010-000",
			},
			CreatedAt: base,
		},
		{
			ID: "cust-002", Name: "Bruno Santos", Phone: "(11) 97654-3210",
			Avatar:    entity.GenerateAvatarURL("Bruno Santos"),
			Email:     strptr("bruno.santos@example.com"),
			Type:      enum.CustomerTypeIndividual,
			CreatedAt: base.AddDate(0, 0, 12),
		},
		{
			ID: "cust-003", Name: "Carla Oliveira", Phone: "(21) 96543-2109",
			Avatar:    entity.GenerateAvatarURL("Carla Oliveira"),
			CPFCNPJ:   strptr("987.654.321-00"),
			Type:      enum.CustomerTypeIndividual,
			CreatedAt: base.AddDate(0, 1, 3),
		},
		{
			ID: "cust-004", Name: "Moda Urbana LTDA", Phone: "(11) 3322-1100",
			Avatar:  entity.GenerateAvatarURL("Moda Urbana"),
			Email:   strptr("contato@modaurbana.example.com"),
			CPFCNPJ: strptr("12.345.678/0001-90"),
			Type:    enum.CustomerTypeBusiness,
			Address: &entity.Address{
				Street: "Avenida Paulista", Number: "1500", Complement: "Sala 204",
				Neighborhood: "Bela Vista", City: "São Paulo", State: "SP", ZipCode: "01310-200",
			},
			CreatedAt: base.AddDate(0, 1, 20),
		},
		{
			ID: "cust-005", Name: "Daniel Souza", Phone: "(31) 95432-1098",
			Avatar:    entity.GenerateAvatarURL("Daniel Souza"),
			Type:      enum.CustomerTypeIndividual,
			CreatedAt: base.AddDate(0, 2, 5),
		},
		{
			ID: "cust-006", Name: "Eduarda Pereira", Phone: "(41) 94321-0987",
			Avatar:    entity.GenerateAvatarURL("Eduarda Pereira"),
			Email:     strptr("eduarda.pereira@example.com"),
			Type:      enum.CustomerTypeIndividual,
			CreatedAt: base.AddDate(0, 2, 18),
		},
	}
}
