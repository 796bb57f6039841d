package models

const InquiryCollection = "inquiry"

const (
	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusClosed    = "closed"
)

// Inquiry es una solicitud de cotización enviada por un comprador
type Inquiry struct {
	Name         string   `json:"name" bson:"name" binding:"required"`
	Email        string   `json:"email" bson:"email" binding:"required"`
	Phone        *string  `json:"phone" bson:"phone"`
	ProductName  *string  `json:"product_name" bson:"product_name"`
	ProductID    *string  `json:"product_id" bson:"product_id"`
	QuantityTons *float64 `json:"quantity_tons" bson:"quantity_tons" binding:"omitempty,gte=0"`
	Message      *string  `json:"message" bson:"message"`
	Status       string   `json:"status" bson:"status" binding:"omitempty,oneof=new contacted closed"`
}

func (Inquiry) Collection() string { return InquiryCollection }

// ApplyDefaults deja toda consulta nueva en estado "new"
func (i *Inquiry) ApplyDefaults() {
	if i.Status == "" {
		i.Status = InquiryStatusNew
	}
}
