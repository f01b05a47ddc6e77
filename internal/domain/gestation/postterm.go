package gestation

// PostTerm es el estado de pos-datismo derivado de la IG canónica.
type PostTerm struct {
	IsPostTerm   bool
	DaysPostTerm int
}

// DetectPostTerm marca pos-término a partir de los 280 días cumplidos:
// falso el día de la FPP (IG == 280 => 0 días de pos-datismo), verdadero
// recién al día siguiente. DaysPostTerm crece exactamente 1 por día
// calendario; los tests de regresión validan ese invariante.
//
// Una IG negativa (medición con fecha futura) queda en cero: el guard
// contra IG negativa es responsabilidad del caller, pero acá nunca
// devolvemos pos-datismo negativo.
func DetectPostTerm(gaDays int) PostTerm {
	days := gaDays - TermDays
	if days < 0 {
		days = 0
	}
	return PostTerm{
		IsPostTerm:   gaDays > TermDays,
		DaysPostTerm: days,
	}
}
