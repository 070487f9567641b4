package models

import "time"

// RefundStatus is the state of a refund request.
// Values outside the declared set are kept verbatim and rendered as unknown.
type RefundStatus string

const (
	RefundStatusRequest   RefundStatus = "REFUND_REQUEST"
	RefundStatusRefunding RefundStatus = "REFUNDING"
	RefundStatusRefunded  RefundStatus = "REFUNDED"
	RefundStatusFailed    RefundStatus = "REFUND_FAILED"
)

// RefundStatuses lists the declared refund statuses in display order
var RefundStatuses = []RefundStatus{RefundStatusRequest, RefundStatusRefunding, RefundStatusRefunded, RefundStatusFailed}

// Known reports whether s is a declared refund status
func (s RefundStatus) Known() bool {
	switch s {
	case RefundStatusRequest, RefundStatusRefunding, RefundStatusRefunded, RefundStatusFailed:
		return true
	}
	return false
}

// ReturnStatus is the state of an exchange request
type ReturnStatus string

const (
	ReturnStatusRequest    ReturnStatus = "EXCHANGE_REQUEST"
	ReturnStatusExchanging ReturnStatus = "EXCHANGING"
	ReturnStatusExchanged  ReturnStatus = "EXCHANGED"
	ReturnStatusFailed     ReturnStatus = "EXCHANGE_FAILED"
)

// ReturnStatuses lists the declared return statuses in display order
var ReturnStatuses = []ReturnStatus{ReturnStatusRequest, ReturnStatusExchanging, ReturnStatusExchanged, ReturnStatusFailed}

// Known reports whether s is a declared return status
func (s ReturnStatus) Known() bool {
	switch s {
	case ReturnStatusRequest, ReturnStatusExchanging, ReturnStatusExchanged, ReturnStatusFailed:
		return true
	}
	return false
}

// PayMethod is how an order was paid
type PayMethod string

const (
	PayMethodCOD     PayMethod = "COD"
	PayMethodBanking PayMethod = "BANKING"
)

// ItemKind says what an order line refers to
type ItemKind string

const (
	ItemKindCourse  ItemKind = "course"
	ItemKindProduct ItemKind = "product"
	ItemKindCombo   ItemKind = "combo"
)

// OrderDetail is one line of an order. Exactly one of CourseID, ProductID and ComboID is set.
type OrderDetail struct {
	ID         string  `json:"id" validate:"required"`
	CourseID   *string `json:"courseId,omitempty"`
	ProductID  *string `json:"productId,omitempty"`
	ComboID    *string `json:"comboId,omitempty"`
	Quantity   int     `json:"quantity" validate:"gte=0"`
	TotalPrice float64 `json:"totalPrice" validate:"gte=0"`
}

// Kind returns which entity the line refers to. Empty ids count as unset.
func (d OrderDetail) Kind() ItemKind {
	switch {
	case isSet(d.CourseID):
		return ItemKindCourse
	case isSet(d.ProductID):
		return ItemKindProduct
	case isSet(d.ComboID):
		return ItemKindCombo
	}
	return ""
}

func isSet(id *string) bool {
	return id != nil && *id != ""
}

// Delivery is the recipient of physical products
type Delivery struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Payment describes how and when an order was paid
type Payment struct {
	PayMethod PayMethod  `json:"payMethod"`
	PayDate   *time.Time `json:"payDate,omitempty"`
}

// RefundOrder is an order with a pending or processed refund
type RefundOrder struct {
	ID                  string        `json:"id" validate:"required"`
	OrderCode           int64         `json:"orderCode"`
	Status              RefundStatus  `json:"status"`
	OrderDate           time.Time     `json:"orderDate"`
	RefundRequestDate   time.Time     `json:"refundRequestDate"`
	RefundProcessedDate *time.Time    `json:"refundProcessedDate,omitempty"`
	RefundReason        string        `json:"refundReason,omitempty"`
	RefundNote          *string       `json:"refundNote,omitempty"`
	TotalAmount         float64       `json:"totalAmount" validate:"gte=0"`
	OrderDetails        []OrderDetail `json:"orderDetails,omitempty" validate:"omitempty,dive"`
	Delivery            *Delivery     `json:"delivery,omitempty"`
	Payment             *Payment      `json:"payment,omitempty"`
}

// ReturnOrder is an order with a pending or processed exchange
type ReturnOrder struct {
	ID                    string        `json:"id" validate:"required"`
	OrderCode             int64         `json:"orderCode"`
	Status                ReturnStatus  `json:"status"`
	OrderDate             time.Time     `json:"orderDate"`
	ExchangeRequestDate   time.Time     `json:"exchangeRequestDate"`
	ExchangeProcessedDate *time.Time    `json:"exchangeProcessedDate,omitempty"`
	ExchangeReason        string        `json:"exchangeReason,omitempty"`
	ExchangeNote          *string       `json:"exchangeNote,omitempty"`
	ReturnRequestImages   []string      `json:"returnRequestImages,omitempty"`
	TotalAmount           float64       `json:"totalAmount" validate:"gte=0"`
	OrderDetails          []OrderDetail `json:"orderDetails,omitempty" validate:"omitempty,dive"`
	Delivery              *Delivery     `json:"delivery,omitempty"`
	Payment               *Payment      `json:"payment,omitempty"`
}
