package registry

import (
	"time"

	"github.com/okaya/airticket/internal/domain"
)

// Seed loads the demo schedule. Departures are anchored to tomorrow so
// they stay bookable no matter when the process starts.
func Seed(r *Registry) {
	base := time.Now().Truncate(24 * time.Hour).Add(24 * time.Hour)

	r.AddFlight(domain.NewFlight("THY", "Boeing", "737", "Istanbul", "Ankara", base.Add(10*time.Hour), 20, 35050))
	r.AddFlight(domain.NewFlight("Pegasus", "Airbus", "A320", "Istanbul", "Izmir", base.Add(14*time.Hour+30*time.Minute), 25, 30000))
	r.AddFlight(domain.NewFlight("SunExpress", "Embraer", "E190", "Antalya", "Istanbul", base.Add(24*time.Hour+18*time.Hour), 15, 28075))
	r.AddFlight(domain.NewFlight("Onur Air", "Boeing", "777", "Izmir", "Antalya", base.Add(48*time.Hour+9*time.Hour+30*time.Minute), 10, 45000))
	r.AddFlight(domain.NewFlight("AtlasGlobal", "Airbus", "A319", "Ankara", "Bodrum", base.Add(72*time.Hour+16*time.Hour+15*time.Minute), 12, 40000))
	r.AddFlight(domain.NewFlight("Corendon", "Boeing", "737", "Istanbul", "Trabzon", base.Add(96*time.Hour+13*time.Hour+45*time.Minute), 18, 32525))
	r.AddFlight(domain.NewFlight("Kaya Airlines", "Airbus", "A380", "Antalya", "London", base.Add(120*time.Hour+8*time.Hour), 30, 95000))
}
