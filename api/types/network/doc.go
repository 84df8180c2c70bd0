// Package network holds the request and response types of the engine's
// network endpoints. CreateRequest can only be obtained through the
// builder returned by NewCreate, whose Build method is the single
// validation point.
package network
