package models

// ProductCategory classifies a product record.
type ProductCategory string

const (
	CategorySeeds         ProductCategory = "Seeds"
	CategoryFertilizer    ProductCategory = "Fertilizer"
	CategoryEquipment     ProductCategory = "Equipment"
	CategoryLivestockFeed ProductCategory = "Livestock Feed"
	CategoryOther         ProductCategory = "Other"
)

// ProductCategories lists the selectable categories in display order.
var ProductCategories = []ProductCategory{
	CategorySeeds,
	CategoryFertilizer,
	CategoryEquipment,
	CategoryLivestockFeed,
	CategoryOther,
}

// ProductUnit is the unit a product's stock is counted in.
type ProductUnit string

const (
	UnitKg     ProductUnit = "kg"
	UnitLiters ProductUnit = "liters"
	UnitPieces ProductUnit = "pieces"
	UnitBags   ProductUnit = "bags"
	UnitTons   ProductUnit = "tons"
)

// ProductUnits lists the selectable units in display order.
var ProductUnits = []ProductUnit{
	UnitKg,
	UnitLiters,
	UnitPieces,
	UnitBags,
	UnitTons,
}

// Product is a stocked item. The id is assigned by the store at creation and
// never changes afterwards.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      ProductCategory `json:"category"`
	Unit          ProductUnit     `json:"unit"`
	CurrentStock  float64         `json:"currentStock"`
	PurchasePrice float64         `json:"purchasePrice"`
}
