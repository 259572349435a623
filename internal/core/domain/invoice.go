package domain

import (
	"errors"
	"time"
)

// InvoiceStatus represents the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

var ErrInvoiceNotFound = errors.New("invoice not found")
var ErrInvoiceNotPayable = errors.New("invoice is not payable")

// DefaultConsultationFee is charged when a completed appointment has no
// matching catalog treatment.
const DefaultConsultationFee = 1500

// DefaultCurrency is the clinic network's billing currency.
const DefaultCurrency = "INR"

// Invoice is raised when an appointment completes.
type Invoice struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	Number        string        `json:"number" bson:"number"`
	AppointmentID string        `json:"appointment_id" bson:"appointment_id"`
	PatientID     string        `json:"patient_id" bson:"patient_id"`
	DoctorID      string        `json:"doctor_id" bson:"doctor_id"`
	HospitalID    string        `json:"hospital_id" bson:"hospital_id"`
	Treatment     string        `json:"treatment" bson:"treatment"`
	Amount        float64       `json:"amount" bson:"amount"`
	Currency      string        `json:"currency" bson:"currency"`
	Status        InvoiceStatus `json:"status" bson:"status"`
	IssuedAt      time.Time     `json:"issued_at" bson:"issued_at"`
	PaidAt        *time.Time    `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
}
