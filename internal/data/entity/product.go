package entity

type Product string

const (
	ProductNebulaForce     Product = "Nebula Force"
	ProductIronFist        Product = "Iron Fist"
	ProductQuantumLeap     Product = "Quantum Leap"
	ProductThunderBurst    Product = "Thunder Burst"
	ProductAdrenalineShock Product = "Adrenaline Shock"
	ProductSonicBoom       Product = "Sonic Boom"
	ProductInfernoX        Product = "Inferno X"
	ProductPlatinumPush    Product = "Platinum Push"
	ProductDragonFury      Product = "Dragon Fury"
	ProductVelocityPunch   Product = "Velocity Punch"
)

// Catalog lists every product in the order the form presents them.
var Catalog = []Product{
	ProductNebulaForce,
	ProductIronFist,
	ProductQuantumLeap,
	ProductThunderBurst,
	ProductAdrenalineShock,
	ProductSonicBoom,
	ProductInfernoX,
	ProductPlatinumPush,
	ProductDragonFury,
	ProductVelocityPunch,
}

func IsCatalogProduct(name string) bool {
	for _, p := range Catalog {
		if string(p) == name {
			return true
		}
	}
	return false
}
