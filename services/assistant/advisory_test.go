package assistant

import (
	"testing"

	"commuterhub/models"

	"github.com/stretchr/testify/assert"
)

func TestAdvise(t *testing.T) {
	tests := []struct {
		name string
		cond models.CurrentConditions
		want string
	}{
		{"snow", models.CurrentConditions{TemperatureC: -1, ConditionCode: 71}, "pretty bad for biking"},
		{"cold rain counts as bad", models.CurrentConditions{TemperatureC: 3, ConditionCode: 63}, "pretty bad for biking"},
		{"mild rain", models.CurrentConditions{TemperatureC: 15, ConditionCode: 63}, "It is rainy"},
		{"nice and clear", models.CurrentConditions{TemperatureC: 15, ConditionCode: 0}, "nice for walking or biking"},
		{"freezing", models.CurrentConditions{TemperatureC: -5, ConditionCode: 3}, "It is very cold"},
		{"hot", models.CurrentConditions{TemperatureC: 30, ConditionCode: 0}, "It is quite hot"},
		{"unremarkable", models.CurrentConditions{TemperatureC: 15, ConditionCode: 3}, "Weather looks okay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advise("Boston", tt.cond)
			assert.Contains(t, got, tt.want)
			assert.Contains(t, got, "Right now in Boston")
		})
	}
}

func TestAdviseEmbedsRoundedTemperature(t *testing.T) {
	got := Advise("Boston", models.CurrentConditions{TemperatureC: 14.6, ConditionCode: 1})
	assert.Contains(t, got, "about 15°C")
	assert.Contains(t, got, "mainly clear")
}
