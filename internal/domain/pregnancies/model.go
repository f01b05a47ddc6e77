package pregnancies

import (
	"time"

	"prenatal-clinical-history/internal/domain/gestation"
)

// DeliveryType define la vía de parto deseada.
// @Enum vaginal, cesarean, undecided
type DeliveryType string

const (
	DeliveryVaginal   DeliveryType = "vaginal"
	DeliveryCesarean  DeliveryType = "cesarean"
	DeliveryUndecided DeliveryType = "undecided"
)

// Status define el estado del seguimiento.
// @Enum active, delivered, closed
type Status string

const (
	StatusActive    Status = "active"
	StatusDelivered Status = "delivered"
	StatusClosed    Status = "closed"
)

// Pregnancy representa un embarazo en seguimiento prenatal, con los datos
// de datación cargados en el intake (corregibles por el staff, de solo
// lectura para el motor de cálculo).
type Pregnancy struct {
	ID string

	PatientName string
	Phone       string
	Email       string

	// Datación. Si UltrasoundGAWeeks está seteado, UltrasoundDate también.
	LMPDate           *time.Time
	UltrasoundDate    *time.Time
	UltrasoundGAWeeks *int
	UltrasoundGADays  *int

	// Fecha de parto programada por el médico (p.ej. cesárea agendada).
	ProgrammedDeliveryDate *time.Time
	DesiredDeliveryType    DeliveryType

	HighRisk bool
	Notes    string
	Status   Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Dating arma la vista que consume el motor gestacional.
func (p Pregnancy) Dating() gestation.Dating {
	return gestation.Dating{
		LMPDate:                p.LMPDate,
		UltrasoundDate:         p.UltrasoundDate,
		UltrasoundGAWeeks:      p.UltrasoundGAWeeks,
		UltrasoundGADays:       p.UltrasoundGADays,
		ProgrammedDeliveryDate: p.ProgrammedDeliveryDate,
	}
}
