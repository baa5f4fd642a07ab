package domain

// Worker represents a staff member of a vendor
type Worker struct {
	ID         string
	VendorID   string
	Name       string
	ServiceIDs []string
}

// OffersService returns true if the worker can perform the service
func (w *Worker) OffersService(serviceID string) bool {
	for _, id := range w.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// WorkerRef short worker representation used in slot listings
type WorkerRef struct {
	ID   string
	Name string
}
