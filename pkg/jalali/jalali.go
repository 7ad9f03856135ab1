// Package jalali convierte fechas entre el calendario gregoriano y el
// calendario persa (jalali/shamsi), usado en los reportes para el cliente.
package jalali

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Format devuelve la fecha jalali en formato YYYY/MM/DD.
func Format(t time.Time) string {
	pt := ptime.New(t)
	return fmt.Sprintf("%04d/%02d/%02d", pt.Year(), int(pt.Month()), pt.Day())
}

// Parse convierte una fecha jalali YYYY/MM/DD a time.Time (medianoche, zona de Irán).
func Parse(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("jalali: formato esperado YYYY/MM/DD, recibido %q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("jalali: componente no numérico en %q", s)
		}
		nums[i] = n
	}
	year, month, day := nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("jalali: fecha fuera de rango %q", s)
	}
	pt := ptime.Date(year, ptime.Month(month), day, 0, 0, 0, 0, ptime.Iran())
	return pt.Time(), nil
}
