package maps

import "time"

// Параметры пульсации маркера отчета: радиус колеблется между
// минимумом и максимумом с фиксированным шагом и периодом.
const (
	pulseMinRadius = 20.0
	pulseMaxRadius = 50.0
	pulseStep      = 2.0
	pulseInterval  = 200 * time.Millisecond
)

// pulse - состояние пульсации одного маркера (треугольная волна)
type pulse struct {
	radius  float64
	growing bool
}

func newPulse() pulse {
	return pulse{radius: pulseMinRadius, growing: true}
}

// step делает один шаг колебания: радиус растет до максимума,
// затем убывает до минимума, на границах направление меняется.
func (p *pulse) step() {
	if p.growing {
		if p.radius < pulseMaxRadius {
			p.radius += pulseStep
		} else {
			p.growing = false
		}
	} else {
		if p.radius > pulseMinRadius {
			p.radius -= pulseStep
		} else {
			p.growing = true
		}
	}
}
