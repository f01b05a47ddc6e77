package justifications

import "time"

// Reason enumera los motivos aceptados para excluir a una paciente del
// alerta de consulta atrasada. Los valores vienen del flujo clínico y se
// persisten tal cual.
type Reason string

const (
	ReasonAlreadyScheduled    Reason = "ja_agendada"
	ReasonAfterMorphology     Reason = "consulta_apos_morfologico"
	ReasonNearDeliveryCTG     Reason = "parto_proximo_ctg_doppler"
	ReasonDroppedOut          Reason = "desistiu_prenatal"
	ReasonMiscarriage         Reason = "abortamento"
	ReasonMovedAway           Reason = "mudou_cidade"
	ReasonWentIntoLabor       Reason = "evoluiu_parto"
	ReasonWiderVisitSpacing   Reason = "espaco_maior_consultas"
)

// Status define el ciclo de vida de una justificación.
// @Enum active, removed
type Status string

const (
	StatusActive  Status = "active"
	StatusRemoved Status = "removed"
)

// Justification suprime el alerta de consulta atrasada para un embarazo.
// ExpectedVisitBy actúa como vencimiento: pasada esa fecha sin una nueva
// consulta, la paciente vuelve a entrar en la lista.
type Justification struct {
	ID          string
	PregnancyID string

	Reason          Reason
	ExpectedVisitBy *time.Time
	Notes           string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SuppressesAt dice si esta justificación suprime el alerta evaluado en
// referenceDate. Sin fecha prevista, suprime hasta que el staff la quite.
func (j Justification) SuppressesAt(referenceDate time.Time) bool {
	if j.Status != StatusActive {
		return false
	}
	if j.ExpectedVisitBy == nil {
		return true
	}
	return !referenceDate.After(*j.ExpectedVisitBy)
}

func ValidReason(r Reason) bool {
	switch r {
	case ReasonAlreadyScheduled, ReasonAfterMorphology, ReasonNearDeliveryCTG,
		ReasonDroppedOut, ReasonMiscarriage, ReasonMovedAway,
		ReasonWentIntoLabor, ReasonWiderVisitSpacing:
		return true
	}
	return false
}
