package models

const PhotographyServiceCollection = "photographyservice"

type PhotographyService struct {
	Name          string   `json:"name" bson:"name" binding:"required"`
	Category      *string  `json:"category" bson:"category"`
	Price         *float64 `json:"price" bson:"price" binding:"omitempty,gte=0"`
	DurationHours *float64 `json:"duration_hours" bson:"duration_hours" binding:"omitempty,gte=0"`
	Description   *string  `json:"description" bson:"description"`
	ImageURL      *string  `json:"image_url" bson:"image_url" binding:"omitempty,http_url"`
}

func (PhotographyService) Collection() string { return PhotographyServiceCollection }

func (s *PhotographyService) ApplyDefaults() {}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// DefaultPhotographyServices son los servicios que se cargan en una base vacía
func DefaultPhotographyServices() []PhotographyService {
	return []PhotographyService{
		{
			Name:          "Wedding Photography",
			Category:      strPtr("wedding"),
			Price:         floatPtr(1500),
			DurationHours: floatPtr(8),
			Description:   strPtr("Full-day coverage of your ceremony and reception, with an online gallery of edited images."),
		},
		{
			Name:          "Portrait Session",
			Category:      strPtr("portrait"),
			Price:         floatPtr(200),
			DurationHours: floatPtr(1),
			Description:   strPtr("Individual or family portraits in studio or on location, including ten retouched photos."),
		},
		{
			Name:          "Event Coverage",
			Category:      strPtr("event"),
			Price:         floatPtr(600),
			DurationHours: floatPtr(4),
			Description:   strPtr("Corporate events, parties and conferences documented from start to finish."),
		},
		{
			Name:          "Product Photography",
			Category:      strPtr("commercial"),
			Price:         floatPtr(350),
			DurationHours: floatPtr(3),
			Description:   strPtr("Clean studio shots of your products, ready for catalogs and online stores."),
		},
	}
}
