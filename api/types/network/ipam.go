package network

// IPAM is a network's address management configuration.
type IPAM struct {
	Driver  string            `json:"Driver,omitempty"`
	Config  []IPAMConfig      `json:"Config,omitempty"`
	Options map[string]string `json:"Options,omitempty"`
}

// NewIPAM returns an IPAM configuration using driver.
func NewIPAM(driver string) *IPAM {
	return &IPAM{Driver: driver}
}

// WithConfig adds an address pool. Repeated calls accumulate.
func (m *IPAM) WithConfig(config IPAMConfig) *IPAM {
	m.Config = append(m.Config, config)
	return m
}

// WithOption adds a driver option. Repeated calls accumulate.
func (m *IPAM) WithOption(key, value string) *IPAM {
	if m.Options == nil {
		m.Options = map[string]string{}
	}
	m.Options[key] = value
	return m
}

// IPAMConfig is one address pool of an IPAM configuration.
type IPAMConfig struct {
	Subnet     string            `json:"Subnet,omitempty"`
	IPRange    string            `json:"IPRange,omitempty"`
	Gateway    string            `json:"Gateway,omitempty"`
	AuxAddress map[string]string `json:"AuxiliaryAddresses,omitempty"`
}
