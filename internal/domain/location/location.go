// Package location valida y compone ubicaciones físicas rack/bin.
package location

import "strings"

// Valid verifica la forma estructural de una ubicación: rack tipo "A1" (letra
// seguida de dígitos) y bin de dos dígitos. No se valida contra un catálogo fijo;
// el vocabulario concreto lo decide cada despliegue.
func Valid(rack, bin string) bool {
	return ValidRack(rack) && ValidBin(bin)
}

// ValidRack verifica la forma del rack: una letra seguida de uno o más dígitos.
func ValidRack(rack string) bool {
	if len(rack) < 2 {
		return false
	}
	first := rack[0]
	if !(first >= 'A' && first <= 'Z' || first >= 'a' && first <= 'z') {
		return false
	}
	for i := 1; i < len(rack); i++ {
		if rack[i] < '0' || rack[i] > '9' {
			return false
		}
	}
	return true
}

// ValidBin verifica la forma del bin: exactamente dos dígitos.
func ValidBin(bin string) bool {
	if len(bin) != 2 {
		return false
	}
	return bin[0] >= '0' && bin[0] <= '9' && bin[1] >= '0' && bin[1] <= '9'
}

// Equal compara dos ubicaciones sin distinguir mayúsculas.
func Equal(rackA, binA, rackB, binB string) bool {
	return strings.EqualFold(rackA, rackB) && strings.EqualFold(binA, binB)
}

// Compose devuelve la ubicación compuesta "rack-bin" usada en BinTransaction.
func Compose(rack, bin string) string {
	return rack + "-" + bin
}
