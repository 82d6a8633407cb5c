package health

import "time"

// Status is the health payload.
type Status struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Service reports process health.
type Service struct {
	name    string
	version string
	now     func() time.Time
}

// NewService constructs a new health service. A nil now uses time.Now.
func NewService(name, version string, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{name: name, version: version, now: now}
}

// Status returns the current health payload.
func (s *Service) Status() Status {
	return Status{
		Status:    "healthy",
		Service:   s.name,
		Version:   s.version,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
}
