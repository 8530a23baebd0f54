package util

// Lerp realiza interpolação linear entre dois floats.
func Lerp(start, end, amount float32) float32 {
	return start + amount*(end-start)
}

// Clamp limita v ao intervalo [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapDeg normaliza um ângulo em graus para o intervalo [0, 360).
func WrapDeg(deg float32) float32 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}

// CompassPoint converte um yaw em graus no ponto cardeal mais próximo.
// Yaw 0 aponta para o norte (+Z) e cresce no sentido horário.
func CompassPoint(yawDeg float32) string {
	switch d := WrapDeg(yawDeg + 45); {
	case d < 90:
		return "N"
	case d < 180:
		return "L"
	case d < 270:
		return "S"
	default:
		return "O"
	}
}
