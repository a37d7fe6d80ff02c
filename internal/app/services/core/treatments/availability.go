package treatments

import (
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/responses"
)

// ComputeAvailability returns every service with the slots that no booking
// of the day has taken yet, in menu order. bookingsOnDate must already hold
// only bookings of the requested date; bookings are matched to services by
// treatment name and unknown treatments are ignored. Inputs are not mutated.
func ComputeAvailability(services []models.Service, bookingsOnDate []models.Booking) []responses.ServiceWithAvailability {
	usedSlots := make(map[string]map[string]struct{}, len(services))
	for _, booking := range bookingsOnDate {
		used, ok := usedSlots[booking.Treatment]
		if !ok {
			used = make(map[string]struct{})
			usedSlots[booking.Treatment] = used
		}
		used[booking.Slot] = struct{}{}
	}

	result := make([]responses.ServiceWithAvailability, 0, len(services))
	for _, service := range services {
		used := usedSlots[service.Name]

		slots := make([]string, len(service.Slots))
		copy(slots, service.Slots)

		available := make([]string, 0, len(service.Slots))
		for _, slot := range service.Slots {
			if _, taken := used[slot]; !taken {
				available = append(available, slot)
			}
		}

		result = append(result, responses.ServiceWithAvailability{
			ID:             service.ID,
			Name:           service.Name,
			Slots:          slots,
			AvailableSlots: available,
		})
	}
	return result
}
