package domain

type ServiceType string

const (
	ServiceApp        ServiceType = "app"
	ServiceUpdater    ServiceType = "updater"
	ServiceSVN        ServiceType = "svn"
	ServiceCompletion ServiceType = "completion"
	ServiceBackend    ServiceType = "backend"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceApp, ServiceUpdater, ServiceSVN, ServiceCompletion, ServiceBackend:
		return true
	default:
		return false
	}
}

func (t ServiceType) String() string {
	return string(t)
}

// Service is the fixed-identity descriptor of a process service.
type Service struct {
	kind ServiceType
}

func NewServiceDescriptor(kind ServiceType) Service {
	return Service{kind: kind}
}

func (s Service) Type() ServiceType {
	return s.kind
}
