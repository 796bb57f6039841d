package models

// GrainProductCollection almacena los granos disponibles para la venta
const GrainProductCollection = "grainproduct"

// GrainProduct representa un grano ofrecido en el catálogo
type GrainProduct struct {
	Name        string   `json:"name" bson:"name" binding:"required"`
	Variety     *string  `json:"variety" bson:"variety"`
	Grade       *string  `json:"grade" bson:"grade"`
	PricePerTon *float64 `json:"price_per_ton" bson:"price_per_ton" binding:"required,gte=0"`
	StockTons   *float64 `json:"stock_tons" bson:"stock_tons" binding:"required,gte=0"`
	Origin      *string  `json:"origin" bson:"origin"`
	Moisture    *float64 `json:"moisture" bson:"moisture" binding:"omitempty,gte=0,lte=100"`
	Protein     *float64 `json:"protein" bson:"protein" binding:"omitempty,gte=0,lte=100"`
	Description *string  `json:"description" bson:"description"`
	ImageURL    *string  `json:"image_url" bson:"image_url" binding:"omitempty,http_url"`
}

func (GrainProduct) Collection() string { return GrainProductCollection }

func (p *GrainProduct) ApplyDefaults() {}
