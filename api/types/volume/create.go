package volume

import "encoding/json"

type createJSON struct {
	Name       string            `json:"Name,omitempty"`
	Driver     string            `json:"Driver,omitempty"`
	DriverOpts map[string]string `json:"DriverOpts,omitempty"`
	Labels     map[string]string `json:"Labels,omitempty"`
}

// CreateRequest is a volume create payload, obtained through
// NewCreateBuilder.
type CreateRequest struct {
	w createJSON
}

// Name returns the requested volume name, or "" when the daemon should
// generate one.
func (r CreateRequest) Name() string { return r.w.Name }

// MarshalJSON encodes the request in the engine's wire shape.
func (r CreateRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.w)
}

// CreateBuilder accumulates a volume create payload. There are no required
// fields; the daemon names anonymous volumes, so Build cannot fail.
type CreateBuilder struct {
	w createJSON
}

// NewCreateBuilder returns an empty volume create builder.
func NewCreateBuilder() *CreateBuilder {
	return &CreateBuilder{}
}

// Name sets the volume name. When unset the daemon generates one.
func (b *CreateBuilder) Name(name string) *CreateBuilder {
	b.w.Name = name
	return b
}

// Driver sets the volume driver.
func (b *CreateBuilder) Driver(driver string) *CreateBuilder {
	b.w.Driver = driver
	return b
}

// DriverOpt adds a driver option. Repeated calls accumulate.
func (b *CreateBuilder) DriverOpt(key, value string) *CreateBuilder {
	if b.w.DriverOpts == nil {
		b.w.DriverOpts = map[string]string{}
	}
	b.w.DriverOpts[key] = value
	return b
}

// Label adds a label. Repeated calls accumulate.
func (b *CreateBuilder) Label(key, value string) *CreateBuilder {
	if b.w.Labels == nil {
		b.w.Labels = map[string]string{}
	}
	b.w.Labels[key] = value
	return b
}

// Build produces a CreateRequest that does not alias the builder.
func (b *CreateBuilder) Build() CreateRequest {
	w := b.w
	if w.DriverOpts != nil {
		opts := make(map[string]string, len(w.DriverOpts))
		for k, v := range w.DriverOpts {
			opts[k] = v
		}
		w.DriverOpts = opts
	}
	if w.Labels != nil {
		labels := make(map[string]string, len(w.Labels))
		for k, v := range w.Labels {
			labels[k] = v
		}
		w.Labels = labels
	}
	return CreateRequest{w: w}
}
