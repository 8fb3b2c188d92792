package view

import "time"

// Greeting returns the salutation for the hour of the reference time.
// Each boundary hour opens its bucket: 6 is already morning, 12 is
// already afternoon, and so on.
func Greeting(ref time.Time) string {
	switch hour := ref.Hour(); {
	case hour >= 6 && hour < 12:
		return "Доброе утро"
	case hour >= 12 && hour < 18:
		return "Добрый день"
	case hour >= 18 && hour < 22:
		return "Добрый вечер"
	default:
		return "Доброй ночи"
	}
}
