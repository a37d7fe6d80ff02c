package treatments

import "doctors-portal-service/internal/app/models"

var defaultSlots = []string{
	"08.00 AM - 08.30 AM",
	"08.30 AM - 09.00 AM",
	"09.00 AM - 09.30 AM",
	"09.30 AM - 10.00 AM",
	"10.00 AM - 10.30 AM",
	"10.30 AM - 11.00 AM",
	"11.00 AM - 11.30 AM",
	"11.30 AM - 12.00 PM",
	"5.00 PM - 5.30 PM",
	"5.30 PM - 6.00 PM",
}

// DefaultCatalog is what `portalctl seed` writes when no file is given.
func DefaultCatalog() []models.Service {
	names := []string{
		"Teeth Orthodontics",
		"Cosmetic Dentistry",
		"Teeth Cleaning",
		"Cavity Protection",
		"Pediatric Dental",
		"Oral Surgery",
	}

	services := make([]models.Service, len(names))
	for i, name := range names {
		slots := make([]string, len(defaultSlots))
		copy(slots, defaultSlots)
		services[i] = models.Service{Name: name, Slots: slots}
	}
	return services
}
