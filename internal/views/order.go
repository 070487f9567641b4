package views

import (
	"strconv"
	"time"

	"github.com/edustore/dashboard/internal/models"
)

// OrderLine is one purchased item on an order card
type OrderLine struct {
	ID         string          `json:"id"`
	Kind       models.ItemKind `json:"kind"`
	Label      string          `json:"label"`
	Quantity   int             `json:"quantity"`
	TotalPrice string          `json:"totalPrice"`
}

// Recipient is the delivery block of orders with physical products
type Recipient struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// OrderCard is a refund or exchange request as shown in the customer settings
type OrderCard struct {
	ID            string      `json:"id"`
	OrderCode     string      `json:"orderCode"`
	Status        Badge       `json:"status"`
	OrderDate     string      `json:"orderDate"`
	RequestDate   string      `json:"requestDate"`
	ProcessedDate string      `json:"processedDate,omitempty"`
	Lines         []OrderLine `json:"lines"`
	Recipient     *Recipient  `json:"recipient,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	PayDate       string      `json:"payDate,omitempty"`
	Reason        string      `json:"reason"`
	Note          string      `json:"note,omitempty"`
	Images        []string    `json:"images,omitempty"`
	Total         string      `json:"total"`
}

// RefundCard renders a refund request
func RefundCard(o models.RefundOrder) OrderCard {
	card := newOrderCard(o.ID, o.OrderCode, o.OrderDate, o.RefundRequestDate, o.RefundProcessedDate,
		o.OrderDetails, o.Delivery, o.Payment, o.TotalAmount)
	card.Status = RefundBadge(o.Status)
	card.Reason = reasonOrDefault(o.RefundReason)
	if o.RefundNote != nil {
		card.Note = *o.RefundNote
	}
	return card
}

// ReturnCard renders an exchange request
func ReturnCard(o models.ReturnOrder) OrderCard {
	card := newOrderCard(o.ID, o.OrderCode, o.OrderDate, o.ExchangeRequestDate, o.ExchangeProcessedDate,
		o.OrderDetails, o.Delivery, o.Payment, o.TotalAmount)
	card.Status = ReturnBadge(o.Status)
	card.Reason = reasonOrDefault(o.ExchangeReason)
	if o.ExchangeNote != nil {
		card.Note = *o.ExchangeNote
	}
	card.Images = o.ReturnRequestImages
	return card
}

func newOrderCard(id string, code int64, ordered, requested time.Time, processed *time.Time,
	details []models.OrderDetail, delivery *models.Delivery, payment *models.Payment, total float64) OrderCard {
	orderDate, _ := FormatDate(ordered)
	requestDate, _ := FormatDate(requested)
	card := OrderCard{
		ID:            id,
		OrderCode:     "#" + strconv.FormatInt(code, 10),
		OrderDate:     orderDate,
		RequestDate:   requestDate,
		ProcessedDate: FormatOptionalDate(processed),
		Lines:         make([]OrderLine, 0, len(details)),
		Total:         FormatPriceFloat(total),
	}

	hasProduct := false
	for _, d := range details {
		kind := d.Kind()
		if kind == models.ItemKindProduct {
			hasProduct = true
		}
		card.Lines = append(card.Lines, OrderLine{
			ID:         d.ID,
			Kind:       kind,
			Label:      itemLabel(kind),
			Quantity:   d.Quantity,
			TotalPrice: FormatPriceFloat(d.TotalPrice),
		})
	}

	if hasProduct {
		recipient := &Recipient{Name: "N/A"}
		if delivery != nil {
			if delivery.Name != "" {
				recipient.Name = delivery.Name
			}
			recipient.Phone = delivery.Phone
			recipient.Address = delivery.Address
		}
		card.Recipient = recipient
	}

	if payment != nil {
		card.PaymentMethod = PaymentMethodText(payment.PayMethod)
		card.PayDate = FormatOptionalDate(payment.PayDate)
	}
	return card
}

// PaymentMethodText describes a pay method; anything but COD was paid by bank transfer.
func PaymentMethodText(m models.PayMethod) string {
	if m == models.PayMethodCOD {
		return "Cash on delivery"
	}
	return "Bank transfer"
}

func itemLabel(kind models.ItemKind) string {
	switch kind {
	case models.ItemKindCourse:
		return "Course"
	case models.ItemKindProduct:
		return "Product"
	case models.ItemKindCombo:
		return "Combo"
	default:
		return "Item"
	}
}

func reasonOrDefault(reason string) string {
	if reason == "" {
		return "No reason given"
	}
	return reason
}
