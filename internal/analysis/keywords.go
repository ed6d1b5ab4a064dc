// internal/analysis/keywords.go
//
// Fixed bilingual (Spanish/English) keyword tables. Loaded once at process
// start and never mutated, so concurrent analyses share them without
// synchronization. A word may appear in more than one list ("bad" is both a
// negative word and a critical severity keyword); each list counts it
// independently.
package analysis

var categoryOrder = []string{"contrast", "spacing", "alignment", "hierarchy"}

var categoryKeywords = map[string][]string{
	"contrast":  {"contraste", "legibilidad", "contrast", "readability"},
	"spacing":   {"espaciado", "padding", "margin", "spacing", "espacio"},
	"alignment": {"alineación", "grid", "alignment", "alinear", "centrado"},
	"hierarchy": {"jerarquía", "tamaño", "hierarchy", "tamaños", "size", "peso"},
}

var severityKeywords = map[Severity][]string{
	SeverityCritical: {"crítico", "malo", "terrible", "grave", "critical", "bad", "poor"},
	SeverityWarning:  {"mejorable", "necesita", "debería", "warning", "improve", "needs"},
}

var positiveWords = []string{
	"bien", "bueno", "correcto", "excelente", "perfecto", "good",
	"excellent", "correct", "great", "nice", "properly", "adecuado",
}

var negativeWords = []string{
	"mal", "malo", "problema", "issue", "error", "falta", "bad",
	"wrong", "problem", "missing", "poor", "incorrect",
}

var improvementKeywords = []string{
	"mejorar", "cambiar", "ajustar", "corregir", "improve", "change", "adjust", "fix",
}

// CategoryOrder returns the fixed category names in report order.
func CategoryOrder() []string {
	return categoryOrder
}
