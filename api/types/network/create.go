package network

import (
	"encoding/json"
	"fmt"
)

// BuildError reports an incomplete builder state detected by a Build call.
type BuildError struct {
	Field string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

type createJSON struct {
	Name           string            `json:"Name"`
	CheckDuplicate bool              `json:"CheckDuplicate,omitempty"`
	Driver         string            `json:"Driver,omitempty"`
	Internal       bool              `json:"Internal,omitempty"`
	Attachable     bool              `json:"Attachable,omitempty"`
	Ingress        bool              `json:"Ingress,omitempty"`
	EnableIPv6     bool              `json:"EnableIPv6,omitempty"`
	IPAM           *IPAM             `json:"IPAM,omitempty"`
	Options        map[string]string `json:"Options,omitempty"`
	Labels         map[string]string `json:"Labels,omitempty"`
}

// CreateRequest is a validated network create payload, obtained through
// NewCreate.
type CreateRequest struct {
	w createJSON
}

// Name returns the network name.
func (r CreateRequest) Name() string { return r.w.Name }

// Driver returns the network driver.
func (r CreateRequest) Driver() string { return r.w.Driver }

// MarshalJSON encodes the request in the engine's wire shape.
func (r CreateRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.w)
}

// CreateBuilder accumulates a network create payload. Build is the single
// validation point; the name is required.
type CreateBuilder struct {
	w createJSON
}

// NewCreate returns a builder for a network named name, seeded with the
// engine defaults: duplicate-name checking on, the bridge driver and the
// default IPAM driver.
func NewCreate(name string) *CreateBuilder {
	return &CreateBuilder{w: createJSON{
		Name:           name,
		CheckDuplicate: true,
		Driver:         "bridge",
		IPAM:           &IPAM{Driver: "default"},
	}}
}

// Driver sets the network driver.
func (b *CreateBuilder) Driver(driver string) *CreateBuilder {
	b.w.Driver = driver
	return b
}

// Internal restricts external access to the network.
func (b *CreateBuilder) Internal(v bool) *CreateBuilder {
	b.w.Internal = v
	return b
}

// Attachable allows manual container attachment.
func (b *CreateBuilder) Attachable(v bool) *CreateBuilder {
	b.w.Attachable = v
	return b
}

// Ingress marks the network as the swarm routing-mesh network.
func (b *CreateBuilder) Ingress(v bool) *CreateBuilder {
	b.w.Ingress = v
	return b
}

// EnableIPv6 enables IPv6 on the network.
func (b *CreateBuilder) EnableIPv6(v bool) *CreateBuilder {
	b.w.EnableIPv6 = v
	return b
}

// IPAM replaces the network's address management configuration.
func (b *CreateBuilder) IPAM(ipam *IPAM) *CreateBuilder {
	b.w.IPAM = ipam
	return b
}

// Option adds a driver option. Repeated calls accumulate.
func (b *CreateBuilder) Option(key, value string) *CreateBuilder {
	if b.w.Options == nil {
		b.w.Options = map[string]string{}
	}
	b.w.Options[key] = value
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

// Build validates the accumulated state and produces a CreateRequest. It
// fails with a *BuildError when the name is empty.
func (b *CreateBuilder) Build() (CreateRequest, error) {
	if b.w.Name == "" {
		return CreateRequest{}, &BuildError{Field: "name"}
	}

	w := b.w
	if w.IPAM != nil {
		ipam := *w.IPAM
		ipam.Config = append([]IPAMConfig(nil), ipam.Config...)
		w.IPAM = &ipam
	}
	if w.Options != nil {
		options := make(map[string]string, len(w.Options))
		for k, v := range w.Options {
			options[k] = v
		}
		w.Options = options
	}
	if w.Labels != nil {
		labels := make(map[string]string, len(w.Labels))
		for k, v := range w.Labels {
			labels[k] = v
		}
		w.Labels = labels
	}
	return CreateRequest{w: w}, nil
}

// CreateResponse is the engine's answer to a network create call.
type CreateResponse struct {
	ID      string `json:"Id"`
	Warning string `json:"Warning"`
}
