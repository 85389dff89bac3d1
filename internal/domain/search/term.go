// Package search interpreta el término de búsqueda de materiales.
// La gramática, en orden de prioridad:
//  1. "rack:<valor>-bin:<valor>"  → ubicación exacta (case-insensitive)
//  2. "rack:<valor>"              → prefijo de rack (case-insensitive)
//  3. cualquier otro texto        → substring sobre código, rack, bin o "rack-bin"
package search

import "strings"

// Kind distingue los tres modos de búsqueda.
type Kind int

const (
	// FreeText substring case-insensitive sobre code, rack, bin o "rack-bin".
	FreeText Kind = iota
	// RackPrefix materiales cuyo rack empieza por el valor dado.
	RackPrefix
	// ExactRackBin materiales en exactamente ese rack y bin.
	ExactRackBin
)

const (
	rackMarker = "rack:"
	binMarker  = "bin:"
)

// Term resultado del parseo del término de búsqueda.
// Empty es true cuando el término estaba vacío (listar todo).
type Term struct {
	Kind  Kind
	Text  string // FreeText: el término completo
	Rack  string // RackPrefix y ExactRackBin
	Bin   string // solo ExactRackBin
	Empty bool
}

// Parse interpreta el término según la gramática. Función pura, sin estado.
func Parse(raw string) Term {
	term := strings.TrimSpace(raw)
	if term == "" {
		return Term{Empty: true}
	}
	lower := strings.ToLower(term)

	// Caso 1: "rack:A1-bin:01" — ambos marcadores unidos por guion.
	if strings.HasPrefix(lower, rackMarker) {
		if idx := strings.Index(lower, "-"+binMarker); idx >= 0 {
			rack := strings.TrimSpace(term[len(rackMarker):idx])
			bin := strings.TrimSpace(term[idx+1+len(binMarker):])
			if rack != "" && bin != "" {
				return Term{Kind: ExactRackBin, Rack: rack, Bin: bin}
			}
		}
		// Caso 2: solo "rack:A1" — prefijo de rack.
		if rack := strings.TrimSpace(term[len(rackMarker):]); rack != "" {
			return Term{Kind: RackPrefix, Rack: rack}
		}
		// "rack:" sin valor se trata como texto libre.
	}

	// Caso 3: texto libre.
	return Term{Kind: FreeText, Text: term}
}
